package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"orcaobra/internal/domain/entities"
)

// Model output is free text that usually carries a JSON payload, often inside
// a markdown fence. The parser extracts the candidate payload, validates it
// and normalizes it into typed records.

var (
	// ErrMalformedAIResponse means the model output is not parseable as JSON
	// after fence-stripping.
	ErrMalformedAIResponse = errors.New("ai response is not valid json")
	// ErrUnexpectedAIShape means the JSON parsed but lacks the required
	// quote fields.
	ErrUnexpectedAIShape = errors.New("ai response did not match the expected format")
)

var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// extractJSONCandidate returns the inner content of the first fenced code
// block, or the trimmed raw text when no fence is present.
func extractJSONCandidate(raw string) string {
	if m := fencedBlockPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// rawQuotePayload mirrors the schema the system instruction asks the model
// for. Field types stay loose: models occasionally return numbers as strings
// or flatten the suggestedPrice object.
type rawQuotePayload struct {
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	ExecutionTime string         `json:"executionTime"`
	PaymentTerms  string         `json:"paymentTerms"`
	Steps         *[]rawQuoteStep `json:"steps"`
}

type rawQuoteStep struct {
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	SuggestedQuantity any             `json:"suggestedQuantity"`
	SuggestedPrice    json.RawMessage `json:"suggestedPrice"`
}

// ParseQuotePayload extracts and normalizes a quote fragment from raw model
// text. Identity, date and client contact fields are attached by the caller.
//
// Returns ErrMalformedAIResponse when the candidate is not JSON at all, and
// ErrUnexpectedAIShape when it parses but lacks a non-empty title or a steps
// array.
func ParseQuotePayload(raw string) (entities.Quote, error) {
	candidate := extractJSONCandidate(raw)

	var probe any
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrMalformedAIResponse, err)
	}

	var payload rawQuotePayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrUnexpectedAIShape, err)
	}
	if strings.TrimSpace(payload.Title) == "" || payload.Steps == nil {
		return entities.Quote{}, ErrUnexpectedAIShape
	}

	steps := make([]entities.QuoteStep, 0, len(*payload.Steps))
	for _, rs := range *payload.Steps {
		unitPrice, unit := resolveSuggestedPrice(rs.SuggestedPrice)

		quantity := 1.0
		if rs.SuggestedQuantity != nil {
			quantity = toNumber(rs.SuggestedQuantity)
		}
		if quantity < 0 {
			quantity = 0
		}

		steps = append(steps, entities.QuoteStep{
			Title:          rs.Title,
			Description:    rs.Description,
			SuggestedPrice: unitPrice,
			SuggestedUnit:  unit,
			Quantity:       quantity,
			UserPrice:      unitPrice,
			TaxRate:        0,
		})
	}

	return entities.Quote{
		Title:         payload.Title,
		Summary:       payload.Summary,
		ExecutionTime: payload.ExecutionTime,
		PaymentTerms:  payload.PaymentTerms,
		Steps:         steps,
	}, nil
}

// ParseReportPayload parses raw model text into a technical report. The
// report call runs in strict JSON mode, so only syntax-level failures are
// checked; no deep shape validation.
func ParseReportPayload(raw string) (entities.TechnicalReport, error) {
	candidate := extractJSONCandidate(raw)

	var report entities.TechnicalReport
	if err := json.Unmarshal([]byte(candidate), &report); err != nil {
		return entities.TechnicalReport{}, fmt.Errorf("%w: %v", ErrMalformedAIResponse, err)
	}
	return report, nil
}

// resolveSuggestedPrice reads the unit price from a nested
// {unitPrice, unit} object when present, else from a flat numeric value,
// else defaults to 0.
func resolveSuggestedPrice(raw json.RawMessage) (unitPrice float64, unit string) {
	if len(raw) == 0 {
		return 0, ""
	}

	var nested struct {
		UnitPrice any    `json:"unitPrice"`
		Unit      string `json:"unit"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		return toNumber(nested.UnitPrice), nested.Unit
	}

	var flat any
	if err := json.Unmarshal(raw, &flat); err == nil {
		return toNumber(flat), ""
	}
	return 0, ""
}

// toNumber coerces a decoded JSON value to float64, mapping anything
// non-numeric to 0.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
