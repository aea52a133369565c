package pipeline

import (
	"context"
	"strings"

	"codeberg.org/visualmath/server/internal/animation"
)

// stage of a pipeline run as shown to the user
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGeneratingCode
	PhaseRendering
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGeneratingCode:
		return "generating_code"
	case PhaseRendering:
		return "rendering"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// the two user-visible steps
const (
	StepCode   = 1
	StepRender = 2
)

// executes the generate → render sequence.
// onCode is called once generated code exists, before rendering starts
type Runner interface {
	Run(ctx context.Context, prompt string, onCode func(code string)) (*animation.Result, error)
}

// snapshot of everything the presentation layer shows.
// only the controller produces these, one phase at a time
type State struct {
	Phase    Phase
	Progress int // cosmetic progress of the current step, 0-100
	Prompt   string
	Code     string
	VideoURL string
	Error    string
	Kind     animation.Kind

	seq uint64
}

// true while a request is outstanding
func (s State) Busy() bool {
	return s.Phase == PhaseGeneratingCode || s.Phase == PhaseRendering
}

// whether the submit action is enabled for prompt
func (s State) CanSubmit(prompt string) bool {
	return strings.TrimSpace(prompt) != "" && !s.Busy()
}

// the step currently in flight, 0 when none
func (s State) ActiveStep() int {
	switch s.Phase {
	case PhaseGeneratingCode:
		return StepCode
	case PhaseRendering:
		return StepRender
	default:
		return 0
	}
}

// progress to draw for a step
func (s State) StepProgress(step int) int {
	switch step {
	case StepCode:
		if s.Phase == PhaseGeneratingCode {
			return s.Progress
		}

		if s.Code != "" {
			return 100
		}
	case StepRender:
		if s.Phase == PhaseRendering {
			return s.Progress
		}

		if s.Phase == PhaseDone {
			return 100
		}
	}

	return 0
}

// whether a step has finished
func (s State) StepComplete(step int) bool {
	switch step {
	case StepCode:
		return s.Code != "" && s.Phase != PhaseGeneratingCode
	case StepRender:
		return s.Phase == PhaseDone
	default:
		return false
	}
}

// whether s was produced after other
func (s State) Newer(other State) bool {
	return s.seq > other.seq
}
