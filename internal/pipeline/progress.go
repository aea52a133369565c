package pipeline

import (
	"sync"
	"time"
)

// a running cosmetic progress counter
type counter struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// advances progress by one per tick while phase is current, until the ceiling
func (c *Controller) startCounter(phase Phase) {
	ctr := &counter{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	c.mu.Lock()
	c.counter = ctr
	c.mu.Unlock()

	go func() {
		defer close(ctr.done)

		ticker := time.NewTicker(c.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctr.stop:
				return

			case <-ticker.C:
				capped := false

				c.update(func(s *State) bool {
					if s.Phase != phase || s.Progress >= c.ceiling {
						capped = true
						return false
					}

					s.Progress++
					return true
				})

				// hold at the ceiling until the call resolves
				if capped {
					return
				}
			}
		}
	}()
}

// stops the current counter and waits for its goroutine to exit
func (c *Controller) stopCounter() {
	c.mu.Lock()
	ctr := c.counter
	c.counter = nil
	c.mu.Unlock()

	if ctr == nil {
		return
	}

	ctr.stopOnce.Do(func() { close(ctr.stop) })
	<-ctr.done
}
