package main

import (
	"fmt"

	"codeberg.org/visualmath/server/internal/config"
	"codeberg.org/visualmath/server/web"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)

	server := &Server{
		config:   cfg,
		services: InitializeServices(cfg),
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
