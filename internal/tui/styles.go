package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorViolet    = lipgloss.Color("#8B5CF6")
	colorIndigo    = lipgloss.Color("#6366F1")
	colorRed       = lipgloss.Color("#F87171")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorViolet).
			MarginTop(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			MarginBottom(1)

	exampleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorDarkGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorDarkGray).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorIndigo).
			Padding(0, 2)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				Background(colorDarkGray).
				Padding(0, 2)

	stepStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorDarkGray).
			Foreground(colorGray).
			Padding(0, 1)

	stepActiveStyle = stepStyle.
			BorderForeground(colorViolet).
			Foreground(colorViolet)

	stepCompleteStyle = stepStyle.
				Foreground(colorLightGray)

	alertStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorRed).
			Foreground(colorRed).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(colorViolet).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)
