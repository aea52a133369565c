package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"codeberg.org/visualmath/server/internal/animation"
	"codeberg.org/visualmath/server/internal/logger"
)

var (
	ErrEmptyPrompt = errors.New("prompt is empty")
	ErrBusy        = errors.New("a request is already in progress")
)

// owns the pipeline state and drives the two-step sequence
type Controller struct {
	runner       Runner
	tickInterval time.Duration
	ceiling      int
	phasePause   time.Duration
	observers    []func(State)

	mu      sync.Mutex
	state   State
	counter *counter

	notifyMu  sync.Mutex
	delivered uint64
}

func NewController(runner Runner, opts ...Option) *Controller {
	c := &Controller{
		runner:       runner,
		tickInterval: defaultTickInterval,
		ceiling:      defaultCeiling,
		phasePause:   defaultPhasePause,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// returns the current snapshot
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// runs the pipeline for prompt and returns the final state.
// the returned error is the pipeline failure, already reflected in the state as PhaseFailed
func (c *Controller) Submit(ctx context.Context, prompt string) (State, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return c.State(), ErrEmptyPrompt
	}

	c.mu.Lock()
	if c.state.Busy() {
		snapshot := c.state
		c.mu.Unlock()
		return snapshot, ErrBusy
	}

	c.state = State{
		Phase:  PhaseGeneratingCode,
		Prompt: prompt,
		seq:    c.state.seq + 1,
	}
	snapshot := c.state
	c.mu.Unlock()

	c.publish(snapshot)
	c.startCounter(PhaseGeneratingCode)

	log := logger.FromContext(ctx)

	result, err := c.runner.Run(ctx, prompt, func(code string) {
		c.stopCounter()
		c.update(func(s *State) bool {
			s.Progress = 100
			s.Code = code
			return true
		})

		c.pause(ctx)

		c.update(func(s *State) bool {
			s.Phase = PhaseRendering
			s.Progress = 0
			return true
		})
		c.startCounter(PhaseRendering)
	})

	c.stopCounter()

	if err == nil && (result == nil || strings.TrimSpace(result.VideoURL) == "") {
		err = animation.NewRenderError(animation.MsgNoVideoURL, nil)
	}

	if err != nil {
		log.Warn("pipeline failed", "kind", animation.KindOf(err), "error", err)

		return c.update(func(s *State) bool {
			s.Phase = PhaseFailed
			s.Progress = 0
			s.VideoURL = ""
			s.Error = animation.UserMessage(err)
			s.Kind = animation.KindOf(err)
			return true
		}), err
	}

	log.Info("pipeline finished", "video_url", result.VideoURL)

	return c.update(func(s *State) bool {
		s.Phase = PhaseDone
		s.Progress = 100
		s.VideoURL = result.VideoURL
		if result.Code != "" {
			s.Code = result.Code
		}
		return true
	}), nil
}

// clears a failure alert
func (c *Controller) Dismiss() {
	c.update(func(s *State) bool {
		if s.Phase != PhaseFailed {
			return false
		}

		s.Phase = PhaseIdle
		s.Error = ""
		s.Kind = ""
		return true
	})
}

func (c *Controller) pause(ctx context.Context) {
	if c.phasePause <= 0 {
		return
	}

	timer := time.NewTimer(c.phasePause)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// applies fn to the state and publishes the result when fn reports a change
func (c *Controller) update(fn func(*State) bool) State {
	c.mu.Lock()
	if !fn(&c.state) {
		snapshot := c.state
		c.mu.Unlock()
		return snapshot
	}

	c.state.seq++
	snapshot := c.state
	c.mu.Unlock()

	c.publish(snapshot)

	return snapshot
}

// delivers snapshots in order; a snapshot older than one already delivered is dropped
func (c *Controller) publish(s State) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if s.seq <= c.delivered {
		return
	}

	c.delivered = s.seq

	for _, observer := range c.observers {
		observer(s)
	}
}
