package port

import "context"

// ExtractInput carries a validated document and the caller-supplied
// provider credential for one extraction attempt.
type ExtractInput struct {
	FileBytes   []byte
	ContentType string
	Credential  string
}

// DocumentExtractor abstracts the external multimodal model provider.
// Extract performs exactly one outbound call and returns the model's raw
// text answer; it never retries.
type DocumentExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (string, error)
}
