package manim

import "fmt"

// body of POST {base}/code/generation
type CodeRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

type CodeResponse struct {
	Code string `json:"code"`
}

// body of POST {base}/video/rendering
type RenderRequest struct {
	Code        string `json:"code"`
	FileName    string `json:"file_name"`
	FileClass   string `json:"file_class"`
	Iteration   int    `json:"iteration"`
	ProjectName string `json:"project_name"`
}

type RenderResponse struct {
	VideoURL string `json:"video_url"`
}

// returned when the service answers with a non-2xx status
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// returned when a 2xx body does not match the expected response shape
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
