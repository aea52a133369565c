package animation

import (
	"context"
	"net/http"
	"strings"

	domain "codeberg.org/visualmath/server/internal/animation"
	"codeberg.org/visualmath/server/internal/errors"
	"codeberg.org/visualmath/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// runs the generate → render sequence
type Generator interface {
	Run(ctx context.Context, prompt string, onCode func(code string)) (*domain.Result, error)
}

// Handler godoc
// @Summary Generate an animation from a prompt
// @Description Generates scene code for the prompt, renders it, and returns the video URL with the code.
// @Tags animation
// @Accept json
// @Produce json
// @Param request body Request true "Prompt describing the animation"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 405 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/generateAnimation [post]
func Handler(generator Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		prompt := strings.TrimSpace(req.Prompt)
		if prompt == "" {
			errors.BadRequest(c, "prompt is required", nil)
			return
		}

		ctx := c.Request.Context()

		result, err := generator.Run(ctx, prompt, func(code string) {
			logger.FromContext(ctx).Debug("code generated", "code_bytes", len(code))
		})
		if err != nil {
			errors.PipelineFailed(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			VideoURL: result.VideoURL,
			Code:     result.Code,
		})
	}
}

// answers every method other than POST
func MethodNotAllowedHandler(c *gin.Context) {
	errors.MethodNotAllowed(c, http.MethodPost)
}
