package framelog

import (
	"sync"
	"sync/atomic"
	"time"
)

// DayDateTimeFormat is the default human-readable timestamp layout, e.g.
// "Mon, Aug 25, 2026 2:04 PM".
const DayDateTimeFormat = "Mon, Jan 2, 2006 3:04 PM"

// Clock supplies the formatted timestamp consumed once per queued message.
type Clock interface {
	Now() string
}

type systemClock struct {
	layout string
	utc    bool
}

// SystemClock returns a Clock that formats time.Now on every call. An empty
// layout means DayDateTimeFormat.
func SystemClock(layout string, utc bool) Clock {
	if layout == "" {
		layout = DayDateTimeFormat
	}
	return systemClock{layout: layout, utc: utc}
}

func (c systemClock) Now() string {
	now := time.Now()
	if c.utc {
		now = now.UTC()
	}
	return now.Format(c.layout)
}

// CachedClock serves a pre-formatted timestamp refreshed by a background
// ticker, so frame loops that log every frame never format time on the hot
// path. The served value is at most one resolution interval stale.
type CachedClock struct {
	layout string
	utc    bool
	value  atomic.Value

	now       func() time.Time
	newTicker func(time.Duration) tickerControl

	resolution time.Duration
	stopCh     chan struct{}
	doneCh     chan struct{}
	stopOnce   sync.Once
}

type tickerControl struct {
	C    <-chan time.Time
	Stop func()
}

func (t tickerControl) stop() {
	if t.Stop != nil {
		t.Stop()
	}
}

func defaultTicker(d time.Duration) tickerControl {
	ticker := time.NewTicker(d)
	return tickerControl{C: ticker.C, Stop: ticker.Stop}
}

// NewCachedClock starts a CachedClock with the given layout and refresh
// resolution. Resolution values below one millisecond are raised to one
// second. Callers stop the refresh goroutine with Stop.
func NewCachedClock(layout string, utc bool, resolution time.Duration) *CachedClock {
	if layout == "" {
		layout = DayDateTimeFormat
	}
	if resolution < time.Millisecond {
		resolution = time.Second
	}
	c := &CachedClock{
		layout:     layout,
		utc:        utc,
		now:        time.Now,
		newTicker:  defaultTicker,
		resolution: resolution,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
	c.start()
	return c
}

func (c *CachedClock) start() {
	if c.now == nil {
		c.now = time.Now
	}
	if c.newTicker == nil {
		c.newTicker = defaultTicker
	}
	if c.resolution <= 0 {
		c.resolution = time.Second
	}
	if c.stopCh == nil {
		c.stopCh = make(chan struct{})
	}
	if c.doneCh == nil {
		c.doneCh = make(chan struct{})
	}
	c.refresh()
	go c.run()
}

// Now returns the cached formatted timestamp.
func (c *CachedClock) Now() string {
	value, _ := c.value.Load().(string)
	return value
}

// Stop terminates the refresh goroutine. Idempotent; Now keeps returning the
// last cached value afterwards.
func (c *CachedClock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		<-c.doneCh
	})
}

func (c *CachedClock) run() {
	defer close(c.doneCh)
	ticker := c.newTicker(c.resolution)
	defer ticker.stop()
	for {
		select {
		case <-ticker.C:
			c.refresh()
		case <-c.stopCh:
			return
		}
	}
}

func (c *CachedClock) refresh() {
	now := c.now()
	if c.utc {
		now = now.UTC()
	}
	c.value.Store(now.Format(c.layout))
}
