package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"codeberg.org/visualmath/server/internal/pipeline"
)

// main TUI application model
type Model struct {
	ctx        context.Context
	controller *pipeline.Controller
	client     *GatewayClient
	updates    chan pipeline.State

	state   pipeline.State
	pending bool // submitted, first snapshot not seen yet

	composer *Composer
	steps    [2]progress.Model
	spinner  spinner.Model

	codeView        viewport.Model
	glamourRenderer *glamour.TermRenderer
	renderedCode    string

	downloading  bool
	downloadPath string
	downloadErr  error

	width  int
	height int
}

// prompt input plus example cycling
type Composer struct {
	input   textarea.Model
	example int // index of the next example, -1 before the first tab
}

// carries a controller snapshot into the update loop
type StateMsg struct {
	state pipeline.State
}

// sent when Submit returns
type FinishedMsg struct {
	state pipeline.State
	err   error
}

// sent when the video has been saved
type DownloadedMsg struct {
	path string
}

// sent when the download failed
type DownloadErrorMsg struct {
	err error
}
