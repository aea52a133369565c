package animation

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"codeberg.org/visualmath/server/internal/logger"
	"codeberg.org/visualmath/server/internal/manim"
)

// runs the generate → render sequence against the external service
type Service struct {
	backend  Backend
	model    string
	randIntN func(n int) int
}

func NewService(backend Backend, model string) *Service {
	return &Service{
		backend:  backend,
		model:    model,
		randIntN: rand.IntN,
	}
}

// generates scene code for prompt, reports it through onCode, then renders it.
// the render call is only made once code generation has succeeded
func (s *Service) Run(ctx context.Context, prompt string, onCode func(code string)) (*Result, error) {
	log := logger.FromContext(ctx)

	log.Info("starting code generation", "model", s.model)

	codeResp, err := s.backend.GenerateCode(ctx, manim.CodeRequest{
		Prompt: DecoratePrompt(prompt),
		Model:  s.model,
	})
	if err != nil {
		if isStatusError(err) {
			return nil, NewGenerationError(MsgGenerationFailed, err)
		}

		return nil, NewUnexpectedError("", err)
	}

	code := SanitizeCode(codeResp.Code)
	if code == "" {
		return nil, NewGenerationError(MsgNoCode, nil)
	}

	if onCode != nil {
		onCode(code)
	}

	iteration := s.nextIteration()
	log.Info("starting video rendering", "iteration", iteration, "code_bytes", len(code))

	renderResp, err := s.backend.RenderVideo(ctx, manim.RenderRequest{
		Code:        code,
		FileName:    SceneFileName,
		FileClass:   SceneClassName,
		Iteration:   iteration,
		ProjectName: SceneProjectName,
	})
	if err != nil {
		if isStatusError(err) {
			return nil, NewRenderError(MsgRenderFailed, err)
		}

		// a body without a readable video_url is a missing result
		if isDecodeError(err) {
			return nil, NewRenderError(MsgNoVideoURL, err)
		}

		return nil, NewUnexpectedError("", err)
	}

	videoURL := strings.TrimSpace(renderResp.VideoURL)
	if videoURL == "" {
		return nil, NewRenderError(MsgNoVideoURL, nil)
	}

	return &Result{VideoURL: videoURL, Code: code}, nil
}

func (s *Service) nextIteration() int {
	return IterationBase + s.randIntN(IterationSpread)
}

func isStatusError(err error) bool {
	var statusErr *manim.StatusError
	return errors.As(err, &statusErr)
}

func isDecodeError(err error) bool {
	var decodeErr *manim.DecodeError
	return errors.As(err, &decodeErr)
}
