package config

// server configuration
type Config struct {
	APIBaseURL     string
	FrontendURL    string
	GeneratorModel string
	Port           string
	Environment    string
}

// terminal client configuration
type Flags struct {
	Endpoint    string
	Prompt      string
	Interactive bool
}
