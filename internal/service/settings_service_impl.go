package service

import (
	"context"
	"fmt"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/khancreations/shootsync/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.AppSettings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings *domain.AppSettings) error {
	switch settings.Language {
	case domain.LangEnglish, domain.LangBengali:
	default:
		return fmt.Errorf("%w: unknown language %q", ErrValidation, settings.Language)
	}
	switch settings.InvoiceTheme {
	case domain.InvoiceClassic, domain.InvoiceMinimal:
	default:
		return fmt.Errorf("%w: unknown invoice theme %q", ErrValidation, settings.InvoiceTheme)
	}
	if settings.CompanyName == "" {
		return fmt.Errorf("%w: company name is required", ErrValidation)
	}
	return s.settings.Update(ctx, settings)
}
