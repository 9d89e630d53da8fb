package driven

import (
	"context"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

// SettingsStore persists user configuration.
type SettingsStore interface {
	// Load reads the current settings, falling back to defaults when
	// no configuration exists.
	Load(ctx context.Context) (domain.Settings, error)

	// Save writes the settings.
	Save(ctx context.Context, settings domain.Settings) error

	// Watch invokes onChange with fresh settings whenever the backing
	// configuration changes. It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func(domain.Settings)) error
}
