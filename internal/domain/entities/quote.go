package entities

import "encoding/json"

// Currency identifies the currency a quote is priced in. Formatting only;
// the service never converts between currencies.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyEUR, CurrencyBRL, CurrencyUSD:
		return true
	}
	return false
}

// QuoteStep is one line item of a quote.
//
// SuggestedPrice and SuggestedUnit are the immutable AI suggestions kept for
// reference next to the user-editable fields. UserPrice starts equal to
// SuggestedPrice and diverges as the user edits.
type QuoteStep struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	SuggestedPrice float64 `json:"suggested_price"`
	SuggestedUnit  string  `json:"suggested_unit,omitempty"`
	Quantity       float64 `json:"quantity"`
	UserPrice      float64 `json:"user_price"`
	TaxRate        float64 `json:"tax_rate"`
}

// UnmarshalJSON applies the canonical quantity default: a step without a
// stated quantity is a single-instance task. Records saved before the
// quantity field existed decode the same way as fresh ones.
func (s *QuoteStep) UnmarshalJSON(data []byte) error {
	type alias QuoteStep
	aux := struct {
		Quantity *float64 `json:"quantity"`
		*alias
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Quantity == nil {
		s.Quantity = 1
	} else {
		s.Quantity = *aux.Quantity
	}
	if s.Quantity < 0 {
		s.Quantity = 0
	}
	return nil
}

// LineTotal is the price of the step before tax.
func (s QuoteStep) LineTotal() float64 {
	return s.UserPrice * s.Quantity
}

// LineTax is the tax amount charged on top of LineTotal.
func (s QuoteStep) LineTax() float64 {
	return s.LineTotal() * s.TaxRate / 100
}

// LineTotalWithTax is LineTotal plus LineTax.
func (s QuoteStep) LineTotalWithTax() float64 {
	return s.LineTotal() + s.LineTax()
}

// Quote is the structured estimate built from a generation call and edited by
// the user.
//
// Lifecycle:
//   - created in memory after a generation call (empty ID)
//   - mutated by user edits
//   - assigned a permanent timestamp-derived ID and date on explicit save
//   - re-persisted by ID match on later edits
type Quote struct {
	ID            string      `json:"id"`
	Date          string      `json:"date"`
	ClientName    string      `json:"client_name"`
	ClientAddress string      `json:"client_address"`
	ClientContact string      `json:"client_contact"`
	Title         string      `json:"title"`
	Summary       string      `json:"summary"`
	ExecutionTime string      `json:"execution_time"`
	PaymentTerms  string      `json:"payment_terms"`
	Steps         []QuoteStep `json:"steps"`
	Currency      Currency    `json:"currency"`
	City          string      `json:"city"`
}

// Subtotal sums the pre-tax line totals of every step.
func (q Quote) Subtotal() float64 {
	var total float64
	for _, s := range q.Steps {
		total += s.LineTotal()
	}
	return total
}

// TotalTax sums the tax amounts of every step.
func (q Quote) TotalTax() float64 {
	var total float64
	for _, s := range q.Steps {
		total += s.LineTax()
	}
	return total
}

// GrandTotal is Subtotal plus TotalTax.
func (q Quote) GrandTotal() float64 {
	return q.Subtotal() + q.TotalTax()
}
