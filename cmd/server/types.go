package main

import (
	"codeberg.org/visualmath/server/internal/animation"
	"codeberg.org/visualmath/server/internal/config"
	"codeberg.org/visualmath/server/internal/manim"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds the external service clients
type Services struct {
	Manim     *manim.Client
	Animation *animation.Service
}
