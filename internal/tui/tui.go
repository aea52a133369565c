package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/visualmath/server/internal/logger"
	"codeberg.org/visualmath/server/internal/pipeline"
	"codeberg.org/visualmath/server/web"
)

const (
	defaultWidth  = 80
	stepBarWidth  = 40
	codeMinHeight = 5
)

var stepLabels = [2]string{
	"Creating the animation script",
	"Rendering Animation",
}

func NewApp(ctx context.Context, client *GatewayClient, opts ...pipeline.Option) *Model {
	updates := make(chan pipeline.State, 64)

	// snapshots are dropped when the loop lags; the final one also arrives via FinishedMsg
	observer := pipeline.WithObserver(func(s pipeline.State) {
		select {
		case updates <- s:
		default:
		}
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorViolet)

	m := &Model{
		ctx:        ctx,
		client:     client,
		controller: pipeline.NewController(client, append(opts, observer)...),
		updates:    updates,
		composer:   NewComposer(),
		spinner:    s,
		codeView:   viewport.New(defaultWidth-4, codeMinHeight),
		width:      defaultWidth,
	}

	for i := range m.steps {
		m.steps[i] = progress.New(progress.WithDefaultGradient(), progress.WithWidth(stepBarWidth))
	}

	m.state = m.controller.State()
	m.glamourRenderer = newCodeRenderer(defaultWidth - 8)

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.composer.Focus(), m.spinner.Tick, m.waitForState())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case StateMsg:
		m.apply(msg.state)
		return m, m.waitForState()

	case FinishedMsg:
		m.pending = false
		m.apply(msg.state)

		if msg.err != nil && !errors.Is(msg.err, pipeline.ErrBusy) {
			logger.Debug("submission ended with error", "error", msg.err)
		}

		return m, m.composer.Focus()

	case DownloadedMsg:
		m.downloading = false
		m.downloadPath = msg.path
		m.downloadErr = nil
		return m, nil

	case DownloadErrorMsg:
		m.downloading = false
		m.downloadErr = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.busy() {
		return m, nil
	}

	return m, m.composer.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.state.Phase == pipeline.PhaseFailed {
			m.controller.Dismiss()
			m.apply(m.controller.State())
		}
		return m, nil

	case "enter", "ctrl+s":
		return m, m.submit()

	case "tab":
		if !m.busy() {
			m.composer.NextExample()
		}
		return m, nil

	case "ctrl+d":
		return m, m.download()

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.codeView, cmd = m.codeView.Update(msg)
		return m, cmd
	}

	if m.busy() {
		return m, nil
	}

	return m, m.composer.Update(msg)
}

// starts a run unless the action is disabled
func (m *Model) submit() tea.Cmd {
	prompt := m.composer.Value()
	if m.pending || !m.state.CanSubmit(prompt) {
		return nil
	}

	m.pending = true
	m.downloadPath = ""
	m.downloadErr = nil
	m.composer.Blur()

	ctx, controller := m.ctx, m.controller

	return func() tea.Msg {
		state, err := controller.Submit(ctx, prompt)
		return FinishedMsg{state: state, err: err}
	}
}

func (m *Model) download() tea.Cmd {
	if m.state.Phase != pipeline.PhaseDone || m.downloading {
		return nil
	}

	m.downloading = true
	m.downloadErr = nil

	return m.client.DownloadCmd(m.state.VideoURL)
}

func (m *Model) waitForState() tea.Cmd {
	updates := m.updates

	return func() tea.Msg {
		return StateMsg{state: <-updates}
	}
}

// takes a snapshot if it is newer than the one shown
func (m *Model) apply(s pipeline.State) {
	if !s.Newer(m.state) {
		return
	}

	if s.Phase != pipeline.PhaseIdle {
		m.pending = false
	}

	if s.Code != m.state.Code {
		m.renderCode(s.Code)
	}

	m.state = s
}

func (m *Model) busy() bool {
	return m.pending || m.state.Busy()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.composer.SetWidth(max(20, width-6))

	for i := range m.steps {
		m.steps[i].Width = min(stepBarWidth, max(10, width-10))
	}

	m.codeView.Width = max(20, width-4)
	m.codeView.Height = max(codeMinHeight, height-24)

	m.glamourRenderer = newCodeRenderer(max(20, width-8))
	m.renderCode(m.state.Code)
}

func (m *Model) renderCode(code string) {
	if code == "" {
		m.renderedCode = ""
		m.codeView.SetContent("")
		return
	}

	rendered := code
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render("```python\n" + code + "\n```"); err == nil {
			rendered = out
		}
	}

	m.renderedCode = rendered
	m.codeView.SetContent(rendered)
	m.codeView.GotoTop()
}

func newCodeRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logger.Warn("failed to create code renderer", "error", err)
		return nil
	}

	return r
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("VisualMath AI"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("English to Math Animations"))
	b.WriteString("\n")

	b.WriteString(m.examplesView())
	b.WriteString("\n")
	b.WriteString(m.composer.View())
	b.WriteString("\n")
	b.WriteString(m.buttonView())
	b.WriteString("\n\n")

	if m.busy() || m.state.Phase == pipeline.PhaseDone {
		b.WriteString(m.stepsView())
		b.WriteString("\n")
	}

	if m.state.Phase == pipeline.PhaseFailed {
		b.WriteString(alertStyle.Render(fmt.Sprintf("✗ %s", m.state.Error)))
		b.WriteString("\n")
	}

	if m.state.Phase == pipeline.PhaseDone {
		b.WriteString(m.resultView())
	}

	b.WriteString(helpStyle.Render(m.helpText()))

	return b.String()
}

func (m *Model) examplesView() string {
	examples := make([]string, 0, len(web.ExamplePrompts))
	for _, p := range web.ExamplePrompts {
		examples = append(examples, exampleStyle.Render(p))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, append([]string{infoStyle.Render("Try: ")}, examples...)...)
}

func (m *Model) buttonView() string {
	if m.busy() {
		return buttonDisabledStyle.Render(m.spinner.View() + " Processing...")
	}

	if !m.state.CanSubmit(m.composer.Value()) {
		return buttonDisabledStyle.Render("Generate")
	}

	return buttonStyle.Render("Generate")
}

func (m *Model) stepsView() string {
	views := make([]string, 0, len(stepLabels))

	for i, label := range stepLabels {
		step := i + 1
		style := stepStyle
		marker := " "

		switch {
		case m.state.StepComplete(step):
			style = stepCompleteStyle
			marker = "✓"
		case m.state.ActiveStep() == step:
			style = stepActiveStyle
			marker = m.spinner.View()
		}

		percent := float64(m.state.StepProgress(step)) / 100
		content := fmt.Sprintf("%s Step %d: %s\n%s", marker, step, label, m.steps[i].ViewAs(percent))
		views = append(views, style.Render(content))
	}

	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (m *Model) resultView() string {
	var b strings.Builder

	b.WriteString(successStyle.Render("Your Animation is ready!"))
	b.WriteString("\n")
	b.WriteString(m.state.VideoURL)
	b.WriteString("\n")

	switch {
	case m.downloading:
		b.WriteString(infoStyle.Render("downloading..."))
		b.WriteString("\n")
	case m.downloadErr != nil:
		b.WriteString(alertStyle.Render(fmt.Sprintf("✗ %v", m.downloadErr)))
		b.WriteString("\n")
	case m.downloadPath != "":
		b.WriteString(infoStyle.Render("saved to " + m.downloadPath))
		b.WriteString("\n")
	}

	if m.renderedCode != "" {
		b.WriteString(m.codeView.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) helpText() string {
	switch m.state.Phase {
	case pipeline.PhaseFailed:
		return "esc: dismiss • enter: generate • ctrl+c: quit"
	case pipeline.PhaseDone:
		return "enter: generate • ctrl+d: download video • pgup/pgdown: scroll code • ctrl+c: quit"
	default:
		return "enter: generate • tab: example prompt • ctrl+c: quit"
	}
}
