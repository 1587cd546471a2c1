package usecase

import (
	"fmt"
	"strings"

	"orcaobra/internal/domain/entities"
)

// System instructions are fixed per operation; only the user prompt varies.

const quoteSystemInstruction = `You are an estimating assistant for construction and repair professionals.
Use your web search capability to ground unit prices on current market rates for the city you are given.
Analyze any attached photos to refine the scope of work.

Respond with a SINGLE JSON object and nothing else, matching exactly this schema:
{
  "title": "short title for the job",
  "summary": "one-paragraph description of the proposed work",
  "executionTime": "estimated execution time, e.g. '5 business days'",
  "paymentTerms": "suggested payment terms",
  "steps": [
    {
      "title": "task name",
      "description": "what will be done",
      "suggestedQuantity": 1,
      "suggestedPrice": { "unitPrice": 0.0, "unit": "unit label, e.g. 'm2', 'h', 'unit'" }
    }
  ]
}
Prices are unit prices in the requested currency. Do not include totals, ids or dates.`

const reportSystemInstruction = `You are a senior building inspector writing a formal technical inspection report.
Write in a formal technical register. Never directly assign fault; when discussing causes, state only the "probable origin" of each issue.
photo_index values are zero-based positions in the photo array you were given.

Respond with a SINGLE JSON object matching exactly this schema:
{
  "client_info": { "name": "", "address": "", "date": "" },
  "objective": "purpose of the inspection",
  "methodology": ["method used", "..."],
  "development": [ { "title": "section title", "content": "section text" } ],
  "photo_analyses": [ { "photo_index": 0, "legend": "", "description": "" } ],
  "conclusion": { "diagnosis": "", "technical_proof": "", "consequences": "", "active_leak": false },
  "recommendations": { "repair_type": "", "materials": [""], "estimated_time": "", "notes": "" }
}`

// buildQuotePrompt embeds the form inputs into the generation prompt.
func buildQuotePrompt(clientName, description, city string, currency entities.Currency) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Prepare a price quote for client %q.\n", clientName)
	fmt.Fprintf(&b, "Job description: %s\n", description)
	fmt.Fprintf(&b, "City: %s\n", city)
	fmt.Fprintf(&b, "Currency: %s\n", currency)
	b.WriteString("Break the job into steps with market-rate unit prices for that city.")
	return b.String()
}

// buildReportPrompt embeds the quote context the report is grounded on.
func buildReportPrompt(quote entities.Quote, companyName string, imageCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a technical inspection report on behalf of %q.\n", companyName)
	fmt.Fprintf(&b, "Client: %s\n", quote.ClientName)
	fmt.Fprintf(&b, "Address: %s\n", quote.ClientAddress)
	fmt.Fprintf(&b, "Job summary: %s\n", quote.Summary)
	b.WriteString("Planned steps:\n")
	for i, s := range quote.Steps {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, s.Title, s.Description)
	}
	fmt.Fprintf(&b, "%d photos are attached; analyze each one.", imageCount)
	return b.String()
}
