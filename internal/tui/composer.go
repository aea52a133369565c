package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/visualmath/server/web"
)

func NewComposer() *Composer {
	ta := textarea.New()
	ta.Placeholder = "Describe the math concept to animate..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(3)
	ta.SetWidth(60)
	ta.Focus()

	return &Composer{
		input:   ta,
		example: -1,
	}
}

func (c *Composer) Value() string {
	return c.input.Value()
}

// fills the input with the next example prompt
func (c *Composer) NextExample() {
	c.example = (c.example + 1) % len(web.ExamplePrompts)
	c.input.SetValue(web.ExamplePrompts[c.example])
	c.input.CursorEnd()
}

func (c *Composer) SetWidth(width int) {
	c.input.SetWidth(width)
}

func (c *Composer) Focus() tea.Cmd {
	return c.input.Focus()
}

func (c *Composer) Blur() {
	c.input.Blur()
}

func (c *Composer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)

	return cmd
}

func (c *Composer) View() string {
	return inputBoxStyle.Render(c.input.View())
}
