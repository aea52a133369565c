package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

// parses CLI flags for the terminal client
func ParseClientFlags(args []string) (Flags, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // .env is optional for the client too
	}

	endpoint := os.Getenv("VISUALMATH_API_ENDPOINT")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	fs := flag.NewFlagSet("visualmath", flag.ContinueOnError)
	fs.StringVar(&endpoint, "endpoint", endpoint, "gateway base URL")
	prompt := fs.String("prompt", "", "run a single prompt without the interactive UI")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}

	return Flags{
		Endpoint:    endpoint,
		Prompt:      *prompt,
		Interactive: *prompt == "",
	}, nil
}
