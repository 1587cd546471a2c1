package response

import "orcaobra/internal/domain/entities"

type QuoteStepResponse struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	SuggestedPrice   float64 `json:"suggested_price"`
	SuggestedUnit    string  `json:"suggested_unit,omitempty"`
	Quantity         float64 `json:"quantity"`
	UserPrice        float64 `json:"user_price"`
	TaxRate          float64 `json:"tax_rate"`
	LineTotal        float64 `json:"line_total"`
	LineTotalWithTax float64 `json:"line_total_with_tax"`
}

// QuoteResponse mirrors the quote entity and adds the derived totals so
// clients never compute money themselves.
type QuoteResponse struct {
	ID            string              `json:"id"`
	Date          string              `json:"date"`
	ClientName    string              `json:"client_name"`
	ClientAddress string              `json:"client_address"`
	ClientContact string              `json:"client_contact"`
	Title         string              `json:"title"`
	Summary       string              `json:"summary"`
	ExecutionTime string              `json:"execution_time"`
	PaymentTerms  string              `json:"payment_terms"`
	Steps         []QuoteStepResponse `json:"steps"`
	Currency      string              `json:"currency"`
	City          string              `json:"city"`
	Subtotal      float64             `json:"subtotal"`
	TotalTax      float64             `json:"total_tax"`
	GrandTotal    float64             `json:"grand_total"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	steps := make([]QuoteStepResponse, 0, len(q.Steps))
	for _, s := range q.Steps {
		steps = append(steps, QuoteStepResponse{
			Title:            s.Title,
			Description:      s.Description,
			SuggestedPrice:   s.SuggestedPrice,
			SuggestedUnit:    s.SuggestedUnit,
			Quantity:         s.Quantity,
			UserPrice:        s.UserPrice,
			TaxRate:          s.TaxRate,
			LineTotal:        s.LineTotal(),
			LineTotalWithTax: s.LineTotalWithTax(),
		})
	}
	return QuoteResponse{
		ID:            q.ID,
		Date:          q.Date,
		ClientName:    q.ClientName,
		ClientAddress: q.ClientAddress,
		ClientContact: q.ClientContact,
		Title:         q.Title,
		Summary:       q.Summary,
		ExecutionTime: q.ExecutionTime,
		PaymentTerms:  q.PaymentTerms,
		Steps:         steps,
		Currency:      string(q.Currency),
		City:          q.City,
		Subtotal:      q.Subtotal(),
		TotalTax:      q.TotalTax(),
		GrandTotal:    q.GrandTotal(),
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
