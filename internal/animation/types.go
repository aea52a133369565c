package animation

import (
	"context"

	"codeberg.org/visualmath/server/internal/manim"
)

// fixed metadata sent with every render request
const (
	SceneFileName    = "GenScene.py"
	SceneClassName   = "GenScene"
	SceneProjectName = "GenScene"

	// the service keys renders by iteration; base plus a random offset keeps them apart
	IterationBase   = 585337
	IterationSpread = 1000
)

// the external generation + rendering service
type Backend interface {
	GenerateCode(ctx context.Context, req manim.CodeRequest) (*manim.CodeResponse, error)
	RenderVideo(ctx context.Context, req manim.RenderRequest) (*manim.RenderResponse, error)
}

// outcome of a successful pipeline run
type Result struct {
	VideoURL string `json:"videoUrl"`
	Code     string `json:"code"`
}
