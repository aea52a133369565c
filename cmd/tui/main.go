package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"codeberg.org/visualmath/server/internal/config"
	"codeberg.org/visualmath/server/internal/logger"
	"codeberg.org/visualmath/server/internal/tui"
)

func main() {
	flags, err := config.ParseClientFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := tui.NewGatewayClient(flags.Endpoint)

	if !flags.Interactive || !term.IsTerminal(os.Stdout.Fd()) {
		logger.SetDefault(logger.New(env, os.Stderr))

		if flags.Prompt == "" {
			fmt.Fprintln(os.Stderr, "error: -prompt is required when stdout is not a terminal")
			os.Exit(2)
		}

		if err := tui.RunOnce(ctx, client, flags.Prompt, os.Stdout); err != nil {
			os.Exit(1)
		}

		return
	}

	// the alt screen owns stdout; logs go to a file only when debugging
	logOutput := io.Discard
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("visualmath-debug.log", "visualmath")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close() //nolint:errcheck

		logOutput = f
	}

	logger.SetDefault(logger.New(env, logOutput))

	app := tui.NewApp(ctx, client)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running visualmath: %v\n", err)
		os.Exit(1)
	}
}
