package main

import (
	"codeberg.org/visualmath/server/internal/animation"
	"codeberg.org/visualmath/server/internal/config"
	"codeberg.org/visualmath/server/internal/manim"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) *Services {
	manimClient := manim.NewClient(cfg.APIBaseURL, nil)

	return &Services{
		Manim:     manimClient,
		Animation: animation.NewService(manimClient, cfg.GeneratorModel),
	}
}
