package request

import (
	"errors"
	"testing"

	"orcaobra/internal/domain/entities"
)

func TestSaveQuoteRequest_ToEntity(t *testing.T) {
	t.Run("invalid currency", func(t *testing.T) {
		r := SaveQuoteRequest{Title: "Roof repair", Currency: "GBP"}
		if _, err := r.ToEntity(); !errors.Is(err, ErrInvalidCurrencyValue) {
			t.Fatalf("expected ErrInvalidCurrencyValue, got %v", err)
		}
	})

	t.Run("missing quantity defaults to one", func(t *testing.T) {
		r := SaveQuoteRequest{
			Title:    "Roof repair",
			Currency: "EUR",
			Steps:    []QuoteStepRequest{{Title: "Tiles", UserPrice: 10}},
		}
		quote, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Steps[0].Quantity != 1 {
			t.Fatalf("expected quantity 1, got %v", quote.Steps[0].Quantity)
		}
	})

	t.Run("explicit zero quantity is kept", func(t *testing.T) {
		zero := 0.0
		r := SaveQuoteRequest{
			Title:    "Roof repair",
			Currency: "EUR",
			Steps:    []QuoteStepRequest{{Title: "Tiles", Quantity: &zero, UserPrice: 10}},
		}
		quote, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Steps[0].Quantity != 0 {
			t.Fatalf("expected quantity 0, got %v", quote.Steps[0].Quantity)
		}
	})

	t.Run("negative quantity clamps to zero", func(t *testing.T) {
		neg := -3.0
		r := SaveQuoteRequest{
			Title:    "Roof repair",
			Currency: "EUR",
			Steps:    []QuoteStepRequest{{Title: "Tiles", Quantity: &neg, UserPrice: 10}},
		}
		quote, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Steps[0].Quantity != 0 {
			t.Fatalf("expected quantity 0, got %v", quote.Steps[0].Quantity)
		}
	})

	t.Run("all fields mapped", func(t *testing.T) {
		qty := 2.0
		r := SaveQuoteRequest{
			ID:            "1000",
			Date:          "2026-08-27T10:00:00Z",
			ClientName:    "Maria",
			ClientAddress: "Rua A 1",
			Title:         "Roof repair",
			Summary:       "Replace tiles",
			ExecutionTime: "3 days",
			PaymentTerms:  "50% upfront",
			Currency:      "BRL",
			City:          "Recife",
			Steps:         []QuoteStepRequest{{Title: "Tiles", Quantity: &qty, UserPrice: 100, TaxRate: 23}},
		}
		quote, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.ID != "1000" || quote.Currency != entities.CurrencyBRL || quote.City != "Recife" {
			t.Fatalf("unexpected quote: %+v", quote)
		}
		if got := quote.GrandTotal(); got != 246 {
			t.Fatalf("expected grand total 246, got %v", got)
		}
	})
}

func TestDecodeImages(t *testing.T) {
	t.Run("plain base64", func(t *testing.T) {
		payloads, err := decodeImages([]ImageRequest{{Data: "aGVsbG8=", MimeType: "image/jpeg"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(payloads[0].Data) != "hello" || payloads[0].MimeType != "image/jpeg" {
			t.Fatalf("unexpected payload: %+v", payloads[0])
		}
	})

	t.Run("data url prefix stripped", func(t *testing.T) {
		payloads, err := decodeImages([]ImageRequest{{Data: "data:image/png;base64,aGVsbG8=", MimeType: "image/png"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(payloads[0].Data) != "hello" {
			t.Fatalf("unexpected payload: %q", payloads[0].Data)
		}
	})

	t.Run("invalid base64", func(t *testing.T) {
		if _, err := decodeImages([]ImageRequest{{Data: "%%%", MimeType: "image/png"}}); !errors.Is(err, ErrInvalidImagePayload) {
			t.Fatalf("expected ErrInvalidImagePayload, got %v", err)
		}
	})

	t.Run("missing mime type", func(t *testing.T) {
		if _, err := decodeImages([]ImageRequest{{Data: "aGVsbG8=", MimeType: "  "}}); !errors.Is(err, ErrInvalidImagePayload) {
			t.Fatalf("expected ErrInvalidImagePayload, got %v", err)
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		payloads, err := decodeImages([]ImageRequest{
			{Data: "Zmlyc3Q=", MimeType: "image/jpeg"},
			{Data: "c2Vjb25k", MimeType: "image/png"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(payloads[0].Data) != "first" || string(payloads[1].Data) != "second" {
			t.Fatalf("order not preserved: %q, %q", payloads[0].Data, payloads[1].Data)
		}
	})
}
