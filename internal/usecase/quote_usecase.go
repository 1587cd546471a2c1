package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"orcaobra/internal/domain/entities"
	"orcaobra/internal/observability"
	"orcaobra/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidDescription = errors.New("invalid job description")
	ErrInvalidCurrency    = errors.New("invalid currency")
	ErrAINotConfigured    = errors.New("generative client not configured")
)

const (
	defaultExecutionTime = "to be defined"
	defaultPaymentTerms  = "to be negotiated"
)

// GenerateQuoteInput carries the form inputs for a generation call.
type GenerateQuoteInput struct {
	Description string
	City        string
	ClientName  string
	Currency    entities.Currency
	Images      []interfaces.ImagePayload
}

// IQuoteUseCase exposes the quote operations behind the HTTP surface.
//
// Generate issues exactly one model call; save/update/delete/list work against
// the whole-document quotes collection held by the repository.
type IQuoteUseCase interface {
	Generate(ctx context.Context, in GenerateQuoteInput) (entities.Quote, error)
	Save(ctx context.Context, quote entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, quote entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ExportPDF(ctx context.Context, id string) ([]byte, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	settingsRepo interfaces.ISettingsRepository
	ai           interfaces.IGenerativeClient
	exporter     interfaces.IDocumentExporter
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	settingsRepo interfaces.ISettingsRepository,
	ai interfaces.IGenerativeClient,
	exporter interfaces.IDocumentExporter,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, settingsRepo: settingsRepo, ai: ai, exporter: exporter}
}

// Generate builds the prompt from the form inputs, issues a single model call
// and parses the response into an unsaved quote. The returned quote has no ID
// yet; it is assigned on explicit save.
func (u *QuoteUseCase) Generate(ctx context.Context, in GenerateQuoteInput) (entities.Quote, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return entities.Quote{}, ErrInvalidDescription
	}
	if !in.Currency.Valid() {
		return entities.Quote{}, ErrInvalidCurrency
	}
	if u.ai == nil {
		return entities.Quote{}, ErrAINotConfigured
	}

	clientName := strings.TrimSpace(in.ClientName)
	city := strings.TrimSpace(in.City)

	slog.Info("generating quote", "component", "quote", "city", city, "currency", in.Currency, "images", len(in.Images))

	started := time.Now()
	raw, err := u.ai.CompleteStructured(ctx, interfaces.GenerationRequest{
		Prompt:            buildQuotePrompt(clientName, description, city, in.Currency),
		SystemInstruction: quoteSystemInstruction,
		Images:            in.Images,
		EnableSearch:      true,
	})
	observability.ModelCallDuration.WithLabelValues("quote").Observe(time.Since(started).Seconds())
	if err != nil {
		observability.QuoteGenerations.WithLabelValues("error").Inc()
		slog.Error("quote model call failed", "component", "quote", "error", err)
		return entities.Quote{}, err
	}

	quote, err := ParseQuotePayload(raw)
	if err != nil {
		observability.QuoteGenerations.WithLabelValues("parse_error").Inc()
		slog.Warn("quote response rejected", "component", "quote", "error", err)
		return entities.Quote{}, err
	}

	if strings.TrimSpace(quote.ExecutionTime) == "" {
		quote.ExecutionTime = defaultExecutionTime
	}
	if strings.TrimSpace(quote.PaymentTerms) == "" {
		quote.PaymentTerms = defaultPaymentTerms
	}
	quote.ClientName = clientName
	quote.City = city
	quote.Currency = in.Currency
	quote.Date = time.Now().UTC().Format(time.RFC3339)

	observability.QuoteGenerations.WithLabelValues("ok").Inc()
	slog.Info("quote generated", "component", "quote", "steps", len(quote.Steps))
	return quote, nil
}

// Save persists the quote. A quote without an ID gets a permanent
// timestamp-derived ID and a fresh date; a quote with an ID replaces the
// stored record with the same ID, or is appended when no match exists.
func (u *QuoteUseCase) Save(ctx context.Context, quote entities.Quote) (entities.Quote, error) {
	if quote.ID == "" {
		quote.ID = newQuoteID()
		quote.Date = time.Now().UTC().Format(time.RFC3339)
	}

	quotes, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	replaced := false
	for i := range quotes {
		if quotes[i].ID == quote.ID {
			quotes[i] = quote
			replaced = true
			break
		}
	}
	if !replaced {
		quotes = append(quotes, quote)
	}

	if err := u.repo.Store(ctx, quotes); err != nil {
		return entities.Quote{}, err
	}
	slog.Info("quote saved", "component", "quote", "quote_id", quote.ID, "replaced", replaced)
	return quote, nil
}

// Update re-persists an already-saved quote by ID match.
func (u *QuoteUseCase) Update(ctx context.Context, quote entities.Quote) (entities.Quote, error) {
	if strings.TrimSpace(quote.ID) == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	quotes, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	for i := range quotes {
		if quotes[i].ID == quote.ID {
			quotes[i] = quote
			if err := u.repo.Store(ctx, quotes); err != nil {
				return entities.Quote{}, err
			}
			return quote, nil
		}
	}
	return entities.Quote{}, ErrQuoteNotFound
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	quotes, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}

	kept := quotes[:0]
	found := false
	for _, q := range quotes {
		if q.ID == id {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	if !found {
		return ErrQuoteNotFound
	}
	return u.repo.Store(ctx, kept)
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.Load(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	quotes, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quote{}, ErrQuoteNotFound
}

// ExportPDF renders a saved quote with the current company settings.
func (u *QuoteUseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	quote, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	settings, err := u.settingsRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return u.exporter.QuotePDF(quote, settings)
}

func newQuoteID() string {
	return strconv.FormatInt(time.Now().UTC().UnixMilli(), 10)
}
