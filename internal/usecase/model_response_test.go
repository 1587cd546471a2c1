package usecase

import (
	"errors"
	"testing"
)

func TestParseQuotePayload(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		q, err := ParseQuotePayload(`{"title":"Telhado","summary":"Reparo","steps":[{"title":"Calhas","description":"Troca","suggestedQuantity":2,"suggestedPrice":{"unitPrice":150,"unit":"m"}}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Title != "Telhado" || len(q.Steps) != 1 {
			t.Fatalf("unexpected quote: %+v", q)
		}
		s := q.Steps[0]
		if s.SuggestedPrice != 150 || s.SuggestedUnit != "m" {
			t.Fatalf("unexpected suggested price: %+v", s)
		}
		if s.UserPrice != 150 {
			t.Fatalf("expected user price initialized to suggested, got %v", s.UserPrice)
		}
		if s.Quantity != 2 || s.TaxRate != 0 {
			t.Fatalf("unexpected quantity/tax: %+v", s)
		}
	})

	t.Run("fenced json equals unwrapped", func(t *testing.T) {
		plain := `{"title":"T","steps":[]}`
		fenced := "Here you go:\n```json\n" + plain + "\n```\nLet me know."

		a, err := ParseQuotePayload(plain)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := ParseQuotePayload(fenced)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Title != b.Title || len(a.Steps) != len(b.Steps) {
			t.Fatalf("fenced and plain results differ: %+v vs %+v", a, b)
		}
	})

	t.Run("fence without language tag", func(t *testing.T) {
		q, err := ParseQuotePayload("```\n{\"title\":\"T\",\"steps\":[]}\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Title != "T" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("flat suggested price", func(t *testing.T) {
		q, err := ParseQuotePayload(`{"title":"T","steps":[{"title":"S","suggestedPrice":99.5}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Steps[0].SuggestedPrice != 99.5 || q.Steps[0].UserPrice != 99.5 {
			t.Fatalf("unexpected price: %+v", q.Steps[0])
		}
		if q.Steps[0].SuggestedUnit != "" {
			t.Fatalf("expected empty unit, got %q", q.Steps[0].SuggestedUnit)
		}
	})

	t.Run("missing price defaults to zero", func(t *testing.T) {
		q, err := ParseQuotePayload(`{"title":"T","steps":[{"title":"S"}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Steps[0].SuggestedPrice != 0 || q.Steps[0].UserPrice != 0 {
			t.Fatalf("expected zero prices: %+v", q.Steps[0])
		}
	})

	t.Run("missing quantity defaults to one", func(t *testing.T) {
		q, err := ParseQuotePayload(`{"title":"T","steps":[{"title":"S","suggestedPrice":10}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Steps[0].Quantity != 1 {
			t.Fatalf("expected quantity 1, got %v", q.Steps[0].Quantity)
		}
	})

	t.Run("string numerics are coerced", func(t *testing.T) {
		q, err := ParseQuotePayload(`{"title":"T","steps":[{"title":"S","suggestedQuantity":"3","suggestedPrice":{"unitPrice":"25.5","unit":"h"}}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Steps[0].Quantity != 3 || q.Steps[0].UserPrice != 25.5 {
			t.Fatalf("unexpected coercion: %+v", q.Steps[0])
		}
	})

	t.Run("garbage quantity coerces to zero", func(t *testing.T) {
		q, err := ParseQuotePayload(`{"title":"T","steps":[{"title":"S","suggestedQuantity":"a few","suggestedPrice":10}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Steps[0].Quantity != 0 {
			t.Fatalf("expected quantity 0, got %v", q.Steps[0].Quantity)
		}
	})

	t.Run("step list keeps input length", func(t *testing.T) {
		q, err := ParseQuotePayload(`{"title":"T","steps":[{"title":"A","suggestedPrice":1},{"title":"B","suggestedPrice":2},{"title":"C","suggestedPrice":3}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Steps) != 3 {
			t.Fatalf("expected 3 steps, got %d", len(q.Steps))
		}
		for i, want := range []float64{1, 2, 3} {
			if q.Steps[i].UserPrice != want {
				t.Fatalf("step %d: expected user price %v, got %v", i, want, q.Steps[i].UserPrice)
			}
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseQuotePayload(`the roof needs fixing, roughly 500`)
		if !errors.Is(err, ErrMalformedAIResponse) {
			t.Fatalf("expected ErrMalformedAIResponse, got %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := ParseQuotePayload(`{"steps":[]}`)
		if !errors.Is(err, ErrUnexpectedAIShape) {
			t.Fatalf("expected ErrUnexpectedAIShape, got %v", err)
		}
	})

	t.Run("missing steps", func(t *testing.T) {
		_, err := ParseQuotePayload(`{"title":"T"}`)
		if !errors.Is(err, ErrUnexpectedAIShape) {
			t.Fatalf("expected ErrUnexpectedAIShape, got %v", err)
		}
	})

	t.Run("steps wrong type", func(t *testing.T) {
		_, err := ParseQuotePayload(`{"title":"T","steps":"none"}`)
		if !errors.Is(err, ErrUnexpectedAIShape) {
			t.Fatalf("expected ErrUnexpectedAIShape, got %v", err)
		}
	})
}

func TestParseReportPayload(t *testing.T) {
	t.Run("valid report", func(t *testing.T) {
		r, err := ParseReportPayload(`{"objective":"Inspecionar infiltração","methodology":["visita","fotos"],"conclusion":{"diagnosis":"infiltração","active_leak":true},"photo_analyses":[{"photo_index":0,"legend":"Parede"}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Objective == "" || len(r.Methodology) != 2 {
			t.Fatalf("unexpected report: %+v", r)
		}
		if !r.Conclusion.ActiveLeak {
			t.Fatalf("expected active leak")
		}
		if r.PhotoAnalyses[0].PhotoIndex != 0 {
			t.Fatalf("unexpected photo index: %+v", r.PhotoAnalyses[0])
		}
	})

	t.Run("no deep shape checking", func(t *testing.T) {
		if _, err := ParseReportPayload(`{}`); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseReportPayload(`not a report`)
		if !errors.Is(err, ErrMalformedAIResponse) {
			t.Fatalf("expected ErrMalformedAIResponse, got %v", err)
		}
	})
}

func TestExtractJSONCandidate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", "  {\"a\":1}  ", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with prose around", "sure:\n```json\n{\"a\":1}\n```\nthanks", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSONCandidate(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
