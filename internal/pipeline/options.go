package pipeline

import "time"

const (
	defaultTickInterval = 100 * time.Millisecond
	defaultCeiling      = 100
	defaultPhasePause   = 500 * time.Millisecond
)

type Option func(*Controller)

// how often the cosmetic progress counter advances
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.tickInterval = d
		}
	}
}

// value the cosmetic counter holds at while a call is still pending
func WithCeiling(n int) Option {
	return func(c *Controller) {
		if n > 0 && n <= 100 {
			c.ceiling = n
		}
	}
}

// delay between finishing code generation and showing the render step
func WithPhasePause(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.phasePause = d
		}
	}
}

// registers a callback receiving every state snapshot in order
func WithObserver(fn func(State)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}
