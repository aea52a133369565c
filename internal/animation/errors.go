package animation

import "errors"

// classifies pipeline failures
type Kind string

const (
	KindGeneration Kind = "generation_failed"
	KindRender     Kind = "render_failed"
	KindUnexpected Kind = "unexpected_error"
)

// user-facing messages
const (
	MsgGenerationFailed = "Failed to generate code. Please try again."
	MsgNoCode           = "No code received from the server."
	MsgRenderFailed     = "Failed to render video. Please try again."
	MsgNoVideoURL       = "No video URL received from the server."
	MsgUnexpected       = "An unexpected error occurred. Please try again."
)

// a pipeline failure: Message is what the user sees, Err is the cause for logs
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// the generation call answered with a non-success response
func NewGenerationError(message string, err error) *Error {
	if message == "" {
		message = MsgGenerationFailed
	}

	return &Error{Kind: KindGeneration, Message: message, Err: err}
}

// the render call failed or returned no video URL
func NewRenderError(message string, err error) *Error {
	if message == "" {
		message = MsgRenderFailed
	}

	return &Error{Kind: KindRender, Message: message, Err: err}
}

// anything else, network failures included
func NewUnexpectedError(message string, err error) *Error {
	if message == "" {
		message = MsgUnexpected
	}

	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// returns the failure kind of err; unknown errors are unexpected
func KindOf(err error) Kind {
	var pipelineErr *Error
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Kind
	}

	return KindUnexpected
}

// returns the single human-readable message shown for err
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var pipelineErr *Error
	if errors.As(err, &pipelineErr) && pipelineErr.Message != "" {
		return pipelineErr.Message
	}

	return MsgUnexpected
}
