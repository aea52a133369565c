package health

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// Handler godoc
// @Summary Health check
// @Description Reports whether the external generation service is configured.
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func Handler(apiBaseURL, model string) gin.HandlerFunc {
	upstream := Upstream{
		Configured: strings.TrimSpace(apiBaseURL) != "",
		Model:      model,
	}

	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if !upstream.Configured {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, Response{
			Status:   status,
			Service:  "visualmath",
			Version:  Version,
			Upstream: upstream,
		})
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
