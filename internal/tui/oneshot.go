package tui

import (
	"context"
	"fmt"
	"io"

	"codeberg.org/visualmath/server/internal/pipeline"
)

// runs a single submission without the interactive UI, writing phase lines,
// the video URL and the generated code to w
func RunOnce(ctx context.Context, runner pipeline.Runner, prompt string, w io.Writer, opts ...pipeline.Option) error {
	last := pipeline.PhaseIdle

	// observer calls are serialized by the controller
	observer := pipeline.WithObserver(func(s pipeline.State) {
		if s.Phase == last {
			return
		}

		last = s.Phase

		switch s.Phase {
		case pipeline.PhaseGeneratingCode:
			fmt.Fprintf(w, "Step %d: %s...\n", pipeline.StepCode, stepLabels[0]) //nolint:errcheck
		case pipeline.PhaseRendering:
			fmt.Fprintf(w, "Step %d: %s...\n", pipeline.StepRender, stepLabels[1]) //nolint:errcheck
		}
	})

	controller := pipeline.NewController(runner, append(opts, observer)...)

	state, err := controller.Submit(ctx, prompt)
	if err != nil {
		if state.Error != "" {
			fmt.Fprintf(w, "Error: %s\n", state.Error) //nolint:errcheck
		}

		return err
	}

	fmt.Fprintf(w, "Your Animation is ready!\n%s\n\n%s\n", state.VideoURL, state.Code) //nolint:errcheck

	return nil
}
