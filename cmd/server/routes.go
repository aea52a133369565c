package main

import (
	"net/http"

	"codeberg.org/visualmath/server/api/rest/animation"
	"codeberg.org/visualmath/server/api/rest/health"
	"codeberg.org/visualmath/server/internal/errors"
	"codeberg.org/visualmath/server/web"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	_ "codeberg.org/visualmath/server/docs"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware())

	router.NoRoute(func(c *gin.Context) {
		errors.NotFound(c, "")
	})

	router.GET("/", indexHandler)
	router.GET("/health", health.Handler(server.config.APIBaseURL, server.config.GeneratorModel))
	router.GET("/swagger/doc.json", swaggerHandler)

	api := router.Group("/api")

	{
		api.GET("/ping", health.PingHandler)

		animation.RegisterRoutes(api, server.services.Animation, CORSMiddleware(server.config.FrontendURL))
	}
}

func indexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", web.NewPage("VisualMath AI", "/api/generateAnimation"))
}

// serves the registered OpenAPI document
func swaggerHandler(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		errors.InternalError(c, "failed to read API docs", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
