package framelog_test

import (
	"os"

	"pkt.systems/framelog"
	"pkt.systems/framelog/ansi"
)

type exampleClock struct{}

func (exampleClock) Now() string { return "Mon, Aug 24, 2026 2:04 PM" }

func Example() {
	logger := framelog.NewWithOptions(os.Stdout, framelog.Options{
		NoColor: true,
		Clock:   exampleClock{},
	})

	// Per-frame logging: CyclePrint stages this frame's messages and writes
	// the previous frame's batch.
	logger.Debug("player at", "12,40")
	logger.CyclePrint()
	logger.Info("level loaded")
	logger.CyclePrint()
	logger.Print()
	// Output:
	// [ Mon, Aug 24, 2026 2:04 PM - Debug ]: player at 12,40
	// [ Mon, Aug 24, 2026 2:04 PM - Info ]: level loaded
}

func ExampleLogger_Register() {
	logger := framelog.NewWithOptions(os.Stdout, framelog.Options{
		NoColor: true,
		Clock:   exampleClock{},
	})

	logger.Register("Net", 40, ansi.NewStyle(ansi.RGB(120, 220, 120), ansi.Bold), false)
	logger.Log("net", "peer connected")
	logger.Print()
	// Output:
	// [ Mon, Aug 24, 2026 2:04 PM - Net ]: peer connected
}
