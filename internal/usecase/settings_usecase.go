package usecase

import (
	"context"
	"errors"
	"strings"

	"orcaobra/internal/domain/entities"
	"orcaobra/internal/usecase/interfaces"
)

var ErrInvalidSettings = errors.New("invalid settings")

// ISettingsUseCase exposes the company-profile singleton. Saves overwrite the
// whole record.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.UserSettings, error)
	Save(ctx context.Context, settings entities.UserSettings) (entities.UserSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.UserSettings, error) {
	return u.repo.Load(ctx)
}

func (u *SettingsUseCase) Save(ctx context.Context, settings entities.UserSettings) (entities.UserSettings, error) {
	if strings.TrimSpace(settings.CompanyName) == "" {
		return entities.UserSettings{}, ErrInvalidSettings
	}
	if err := u.repo.Store(ctx, settings); err != nil {
		return entities.UserSettings{}, err
	}
	return settings, nil
}
