package advisor

import "context"

// AIClient defines the interface for the external language-model service.
// This abstraction allows the normalization logic to be tested independently
// of external API calls and provides flexibility in choosing AI providers.
// Transport, authentication and model selection are the implementation's
// concern; the advisor only needs a configured check and a call that may fail.
type AIClient interface {
	// Configured reports whether the service can be reached at all
	// (a credential is present). When false the advisor must not issue
	// any call and falls back to its fixed instructional responses.
	Configured() bool

	// GenerateText sends a single prompt and returns the model's text
	// response, or an error if the request fails for any reason.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
