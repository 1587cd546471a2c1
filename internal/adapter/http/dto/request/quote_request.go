package request

import (
	"errors"

	"orcaobra/internal/domain/entities"
)

var ErrInvalidCurrencyValue = errors.New("invalid currency value")

type QuoteStepRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SuggestedPrice float64  `json:"suggested_price"`
	SuggestedUnit  string   `json:"suggested_unit"`
	Quantity       *float64 `json:"quantity"`
	UserPrice      float64  `json:"user_price"`
	TaxRate        float64  `json:"tax_rate"`
}

// SaveQuoteRequest is the payload for saving or updating a quote. The ID is
// empty on first save and set on re-saves.
type SaveQuoteRequest struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	ClientName    string             `json:"client_name"`
	ClientAddress string             `json:"client_address"`
	ClientContact string             `json:"client_contact"`
	Title         string             `json:"title" binding:"required"`
	Summary       string             `json:"summary"`
	ExecutionTime string             `json:"execution_time"`
	PaymentTerms  string             `json:"payment_terms"`
	Steps         []QuoteStepRequest `json:"steps"`
	Currency      string             `json:"currency" binding:"required"`
	City          string             `json:"city"`
}

// ToEntity validates the currency and applies the canonical quantity default
// (missing quantity means a single-instance task).
func (r SaveQuoteRequest) ToEntity() (entities.Quote, error) {
	currency := entities.Currency(r.Currency)
	if !currency.Valid() {
		return entities.Quote{}, ErrInvalidCurrencyValue
	}

	steps := make([]entities.QuoteStep, 0, len(r.Steps))
	for _, s := range r.Steps {
		quantity := 1.0
		if s.Quantity != nil {
			quantity = *s.Quantity
		}
		if quantity < 0 {
			quantity = 0
		}
		steps = append(steps, entities.QuoteStep{
			Title:          s.Title,
			Description:    s.Description,
			SuggestedPrice: s.SuggestedPrice,
			SuggestedUnit:  s.SuggestedUnit,
			Quantity:       quantity,
			UserPrice:      s.UserPrice,
			TaxRate:        s.TaxRate,
		})
	}

	return entities.Quote{
		ID:            r.ID,
		Date:          r.Date,
		ClientName:    r.ClientName,
		ClientAddress: r.ClientAddress,
		ClientContact: r.ClientContact,
		Title:         r.Title,
		Summary:       r.Summary,
		ExecutionTime: r.ExecutionTime,
		PaymentTerms:  r.PaymentTerms,
		Steps:         steps,
		Currency:      currency,
		City:          r.City,
	}, nil
}
