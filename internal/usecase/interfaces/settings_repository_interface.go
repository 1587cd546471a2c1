package interfaces

import (
	"context"

	"orcaobra/internal/domain/entities"
)

// ISettingsRepository abstracts persistence of the settings singleton.
// The record is overwritten wholesale on save.
type ISettingsRepository interface {
	Load(ctx context.Context) (entities.UserSettings, error)
	Store(ctx context.Context, settings entities.UserSettings) error
}
