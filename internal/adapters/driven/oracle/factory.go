// Package oracle provides factory functions for creating oracle adapters.
package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/oracle/gemini"
	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/oracle/noop"
	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/oracle/openai"
	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/oracle/simulated"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// Known provider names.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderSimulated = "simulated"
	ProviderNone      = "none"
)

// Settings selects and configures an oracle provider. The API key is an
// explicit value carried here, never read from ambient process state by
// the adapters themselves.
type Settings struct {
	// Provider is one of gemini, openai, simulated, none.
	Provider string

	// APIKey is the provider credential (remote providers only).
	APIKey string

	// Model overrides the provider's default model.
	Model string

	// BaseURL overrides the provider's API endpoint.
	BaseURL string
}

// Create builds the oracle for the given settings without validating
// connectivity. A remote provider with no API key returns
// domain.ErrOracleUnavailable so callers can degrade to a keyless run.
func Create(settings Settings) (driven.Oracle, error) {
	switch settings.Provider {
	case ProviderGemini, "":
		if settings.APIKey == "" {
			return nil, fmt.Errorf("%w: gemini API key not configured", domain.ErrOracleUnavailable)
		}
		return gemini.New(gemini.Config{
			APIKey:  settings.APIKey,
			Model:   settings.Model,
			BaseURL: settings.BaseURL,
		})
	case ProviderOpenAI:
		if settings.APIKey == "" {
			return nil, fmt.Errorf("%w: openai API key not configured", domain.ErrOracleUnavailable)
		}
		return openai.New(openai.Config{
			APIKey:  settings.APIKey,
			Model:   settings.Model,
			BaseURL: settings.BaseURL,
		})
	case ProviderSimulated:
		return simulated.New(), nil
	case ProviderNone:
		return noop.New(), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", domain.ErrOracleUnavailable, settings.Provider)
	}
}

// CreateAndValidate builds the oracle and validates connectivity with a
// short ping. Remote providers that cannot be reached are closed and
// reported as unavailable.
func CreateAndValidate(settings Settings) (driven.Oracle, error) {
	o, err := Create(settings)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := o.Ping(ctx); err != nil {
		o.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
	}
	return o, nil
}
