package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"orcaobra/internal/domain/entities"
	"orcaobra/internal/observability"
	"orcaobra/internal/usecase/interfaces"
)

var ErrInvalidReportQuote = errors.New("invalid quote for report generation")

// GenerateReportInput reuses the quote the user generated (or edited) plus the
// same photo batch, in the same order, so photo_index values line up.
type GenerateReportInput struct {
	Quote  entities.Quote
	Images []interfaces.ImagePayload
}

// IReportUseCase exposes technical-report operations. Reports are ephemeral:
// generated, rendered or exported, never persisted.
type IReportUseCase interface {
	Generate(ctx context.Context, in GenerateReportInput) (entities.TechnicalReport, error)
	ExportPDF(ctx context.Context, report entities.TechnicalReport) ([]byte, error)
}

type ReportUseCase struct {
	settingsRepo interfaces.ISettingsRepository
	ai           interfaces.IGenerativeClient
	exporter     interfaces.IDocumentExporter
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	settingsRepo interfaces.ISettingsRepository,
	ai interfaces.IGenerativeClient,
	exporter interfaces.IDocumentExporter,
) *ReportUseCase {
	return &ReportUseCase{settingsRepo: settingsRepo, ai: ai, exporter: exporter}
}

// Generate issues a single strict-JSON model call embedding the quote context
// and parses the result. Out-of-range photo_index values are not validated
// here; the renderer guards them.
func (u *ReportUseCase) Generate(ctx context.Context, in GenerateReportInput) (entities.TechnicalReport, error) {
	if strings.TrimSpace(in.Quote.Title) == "" && len(in.Quote.Steps) == 0 {
		return entities.TechnicalReport{}, ErrInvalidReportQuote
	}
	if u.ai == nil {
		return entities.TechnicalReport{}, ErrAINotConfigured
	}

	settings, err := u.settingsRepo.Load(ctx)
	if err != nil {
		return entities.TechnicalReport{}, err
	}

	slog.Info("generating report", "component", "report", "client", in.Quote.ClientName, "images", len(in.Images))

	started := time.Now()
	raw, err := u.ai.CompleteStructured(ctx, interfaces.GenerationRequest{
		Prompt:            buildReportPrompt(in.Quote, settings.CompanyName, len(in.Images)),
		SystemInstruction: reportSystemInstruction,
		Images:            in.Images,
		JSONMode:          true,
	})
	observability.ModelCallDuration.WithLabelValues("report").Observe(time.Since(started).Seconds())
	if err != nil {
		observability.ReportGenerations.WithLabelValues("error").Inc()
		slog.Error("report model call failed", "component", "report", "error", err)
		return entities.TechnicalReport{}, err
	}

	report, err := ParseReportPayload(raw)
	if err != nil {
		observability.ReportGenerations.WithLabelValues("parse_error").Inc()
		slog.Warn("report response rejected", "component", "report", "error", err)
		return entities.TechnicalReport{}, err
	}

	observability.ReportGenerations.WithLabelValues("ok").Inc()
	return report, nil
}

// ExportPDF renders the in-memory report with the current company settings.
func (u *ReportUseCase) ExportPDF(ctx context.Context, report entities.TechnicalReport) ([]byte, error) {
	settings, err := u.settingsRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return u.exporter.ReportPDF(report, settings)
}
