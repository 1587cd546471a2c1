package interfaces

import "context"

// ImagePayload is an opaque binary+mime-type pair at the service boundary.
// Reading/encoding files is the caller's concern.
type ImagePayload struct {
	Data     []byte
	MimeType string
}

// GenerationRequest carries everything a single model call needs.
//
// EnableSearch asks the provider to ground pricing on web search results.
// JSONMode requests strict JSON output instead of free text.
type GenerationRequest struct {
	Prompt            string
	SystemInstruction string
	Images            []ImagePayload
	EnableSearch      bool
	JSONMode          bool
}

// IGenerativeClient abstracts the external generative model service so the
// parsing and shape-validation logic stays testable without a live network
// dependency. Implementations issue exactly one call per invocation, no
// retries, and return the model's raw text output.
type IGenerativeClient interface {
	CompleteStructured(ctx context.Context, req GenerationRequest) (string, error)
}
