package framelog_test

import (
	"errors"
	"io"
	"testing"

	"pkt.systems/framelog"
)

func TestObservedWriterCountsFailures(t *testing.T) {
	fail := errors.New("broken pipe")
	var seen []framelog.WriteFailure
	w := framelog.NewObservedWriter(writerFunc(func(p []byte) (int, error) {
		return 0, fail
	}), func(f framelog.WriteFailure) {
		seen = append(seen, f)
	})

	if _, err := w.Write([]byte("payload")); !errors.Is(err, fail) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	stats := w.Stats()
	if stats.Failures != 1 {
		t.Fatalf("expected 1 failure, got %+v", stats)
	}
	if len(seen) != 1 || seen[0].Attempted != len("payload") || seen[0].Written != 0 {
		t.Fatalf("unexpected failure callback payload: %+v", seen)
	}
}

func TestObservedWriterCountsShortWrites(t *testing.T) {
	w := framelog.NewObservedWriter(writerFunc(func(p []byte) (int, error) {
		return len(p) - 1, nil
	}), nil)

	_, err := w.Write([]byte("abc"))
	if !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("expected ErrShortWrite, got %v", err)
	}
	stats := w.Stats()
	if stats.ShortWrites != 1 || stats.Failures != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestObservedWriterNilDestinationDiscards(t *testing.T) {
	w := framelog.NewObservedWriter(nil, nil)
	n, err := w.Write([]byte("gone"))
	if err != nil || n != len("gone") {
		t.Fatalf("discarding writer should succeed, got n=%d err=%v", n, err)
	}
	if stats := w.Stats(); stats.Failures != 0 {
		t.Fatalf("unexpected failures: %+v", stats)
	}
}
