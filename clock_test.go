package framelog

import (
	"testing"
	"time"
)

func TestSystemClockFormatsWithLayout(t *testing.T) {
	clock := SystemClock(time.RFC3339, false)
	value := clock.Now()
	if _, err := time.Parse(time.RFC3339, value); err != nil {
		t.Fatalf("system clock produced unparseable value %q: %v", value, err)
	}
}

func TestSystemClockDefaultsToDayDateTimeFormat(t *testing.T) {
	clock := SystemClock("", false)
	value := clock.Now()
	if _, err := time.Parse(DayDateTimeFormat, value); err != nil {
		t.Fatalf("default layout mismatch for %q: %v", value, err)
	}
}

func TestCachedClockCachesWithinTick(t *testing.T) {
	layout := time.RFC3339
	start := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	tickCh := make(chan time.Time, 1)

	clock := &CachedClock{
		layout:    layout,
		now:       func() time.Time { return start },
		newTicker: func(time.Duration) tickerControl { return tickerControl{C: tickCh} },
	}
	clock.start()
	t.Cleanup(clock.Stop)

	first := clock.Now()
	if want := start.Format(layout); first != want {
		t.Fatalf("initial cached value mismatch: got %q want %q", first, want)
	}

	// Without a tick the cached value must not move even though now changed.
	next := start.Add(500 * time.Millisecond)
	clock.now = func() time.Time { return next }
	if second := clock.Now(); second != first {
		t.Fatalf("cached value changed before tick: got %q want %q", second, first)
	}

	advance := start.Add(time.Second)
	clock.now = func() time.Time { return advance }
	tickCh <- advance

	want := advance.Format(layout)
	deadline := time.After(200 * time.Millisecond)
	for {
		if current := clock.Now(); current == want {
			break
		}
		select {
		case <-time.After(5 * time.Millisecond):
		case <-deadline:
			t.Fatalf("cache did not refresh after tick; last value %q, want %q", clock.Now(), want)
		}
	}
}

func TestCachedClockHonoursUTC(t *testing.T) {
	layout := time.RFC3339
	start := time.Date(2026, time.July, 4, 15, 30, 0, 0, time.FixedZone("PDT", -7*3600))
	tickCh := make(chan time.Time)

	clock := &CachedClock{
		layout:    layout,
		utc:       true,
		now:       func() time.Time { return start },
		newTicker: func(time.Duration) tickerControl { return tickerControl{C: tickCh} },
	}
	clock.start()
	t.Cleanup(clock.Stop)

	if got, want := clock.Now(), start.UTC().Format(layout); got != want {
		t.Fatalf("expected UTC formatting: got %q want %q", got, want)
	}
}

func TestCachedClockStopIsIdempotent(t *testing.T) {
	clock := NewCachedClock(time.RFC3339, false, time.Second)
	last := clock.Now()
	clock.Stop()
	clock.Stop()
	if clock.Now() != last {
		t.Fatalf("stopped clock should keep serving the last value")
	}
}

func TestCachedClockResolutionFloor(t *testing.T) {
	clock := NewCachedClock(time.RFC3339, false, time.Nanosecond)
	defer clock.Stop()
	if clock.resolution != time.Second {
		t.Fatalf("sub-millisecond resolution should be raised to one second, got %v", clock.resolution)
	}
}
