package web

import (
	"embed"
	"html/template"

	"codeberg.org/visualmath/server/internal/animation"
)

//go:embed templates
var templatesFS embed.FS

// prompts offered as one-click examples
var ExamplePrompts = []string{
	"red rotating 3d cube",
	"sine wave with amplitude 1 and frequency 2",
}

// parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// data rendered into index.html
type Page struct {
	Title    string
	Examples []string
	Endpoint string
	Messages Messages
}

// failure texts the page shows when the gateway response carries none
type Messages struct {
	NoVideoURL string
	Unexpected string
}

// builds the page for the given endpoint
func NewPage(title, endpoint string) Page {
	return Page{
		Title:    title,
		Examples: ExamplePrompts,
		Endpoint: endpoint,
		Messages: Messages{
			NoVideoURL: animation.MsgNoVideoURL,
			Unexpected: animation.MsgUnexpected,
		},
	}
}
