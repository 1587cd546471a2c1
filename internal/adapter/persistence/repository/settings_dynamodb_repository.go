package repository

import (
	"context"
	"encoding/json"

	"orcaobra/internal/domain/entities"
	"orcaobra/internal/usecase/interfaces"
)

// SettingsDynamoRepository persists the company settings singleton as one
// JSON document, overwritten wholesale on save.
type SettingsDynamoRepository struct {
	docs *DocumentDynamoRepository
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(docs *DocumentDynamoRepository) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{docs: docs}
}

func (r *SettingsDynamoRepository) Load(ctx context.Context) (entities.UserSettings, error) {
	blob, err := r.docs.Get(ctx, DocumentKeySettings)
	if err != nil {
		return entities.UserSettings{}, err
	}
	if len(blob) == 0 {
		return entities.UserSettings{}, nil
	}

	var settings entities.UserSettings
	if err := json.Unmarshal(blob, &settings); err != nil {
		return entities.UserSettings{}, err
	}
	return settings, nil
}

func (r *SettingsDynamoRepository) Store(ctx context.Context, settings entities.UserSettings) error {
	blob, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return r.docs.Put(ctx, DocumentKeySettings, blob)
}
