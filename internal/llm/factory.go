package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/speechdrill/internal/logger"
	"github.com/abhisek/speechdrill/internal/store"
)

// NewProvider builds the configured provider wrapped as
// caller → retry → recording → backend, so every attempt is recorded.
// events may be nil.
func NewProvider(ctx context.Context, cfg Config, events store.LLMEventRepo, log *logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initialize %s provider: %w", cfg.Provider, err)
	}

	log.Debug("llm provider ready", "provider", base.Name(), "model", base.ModelID())
	return WithRetry(WithRecording(base, events, log), cfg.Retry, log), nil
}
