// Package progress produces the human-readable captions shown while
// an analysis request is pending. The caption is a pure function of
// elapsed time; it says nothing about how far the server actually is.
package progress

import "time"

// CaptionInterval is how long each caption stays on screen.
const CaptionInterval = 2 * time.Second

var captions = []string{
	"Parsing resume",
	"Matching skills",
	"Generating roadmap",
}

// Caption returns the caption for a given elapsed wait time.
func Caption(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	return CaptionAt(int(elapsed / CaptionInterval))
}

// CaptionAt returns the caption for the n-th interval, wrapping
// around the cycle.
func CaptionAt(step int) string {
	if step < 0 {
		step = 0
	}
	return captions[step%len(captions)]
}

// Cycler invokes a callback with the current caption on every
// interval until stopped. Stop blocks until the goroutine exits, so
// the callback is never called after Stop returns.
type Cycler struct {
	stop chan struct{}
	done chan struct{}
}

func StartCycler(onCaption func(string)) *Cycler {
	c := &Cycler{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	start := time.Now()
	onCaption(Caption(0))

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(CaptionInterval)
		defer ticker.Stop()
		for {
			select {
			case <-c.stop:
				return
			case now := <-ticker.C:
				onCaption(Caption(now.Sub(start)))
			}
		}
	}()

	return c
}

func (c *Cycler) Stop() {
	close(c.stop)
	<-c.done
}
