package driven

import "context"

// AnalysisRequest carries everything the oracle needs for one review call.
type AnalysisRequest struct {
	// Context is the retrieval context block (relevant reference passages),
	// empty when the corpus is unavailable.
	Context string

	// Documents maps file name to extracted document text, already capped
	// to the per-file prompt budget by the caller.
	Documents map[string]string

	// DocumentOrder fixes the order documents appear in the prompt so
	// identical inputs produce identical prompts.
	DocumentOrder []string
}

// Oracle is the external compliance-analysis service boundary. The reply is
// opaque free text; the core applies its own parsing policy to extract a
// structured issue list from it.
//
// Implementations may include:
//   - Gemini (Google Generative Language API)
//   - OpenAI (chat completions)
//   - Simulated (offline rule-based checks)
//   - NoOp (AI stage disabled)
type Oracle interface {
	// Analyze sends the request and returns the raw oracle reply.
	Analyze(ctx context.Context, req AnalysisRequest) (string, error)

	// Name returns the provider name for display.
	Name() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to the AI stage.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
