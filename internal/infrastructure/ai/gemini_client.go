package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"orcaobra/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const (
	defaultGeminiModel   = "gemini-2.0-flash"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiRequestTimeout = 2 * time.Minute
)

// GeminiClient calls the Gemini generateContent REST API.
//
// One call per invocation, no retries: a failed or slow call is surfaced to
// the user, who may re-trigger generation manually.
type GeminiClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	mockMode   bool
}

var _ interfaces.IGenerativeClient = (*GeminiClient)(nil)

// NewGeminiClient builds the client. A missing API key is an error so the
// application can refuse to start instead of failing on first use.
// AI_GATEWAY_MOCK switches to canned responses for local development.
func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if isAIGatewayMockEnabled() {
		slog.Info("ai gateway mock mode enabled", "component", "ai")
		return &GeminiClient{mockMode: true}, nil
	}
	if apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiClient{
		httpClient: &http.Client{Timeout: geminiRequestTimeout},
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultGeminiBaseURL,
	}, nil
}

// Wire types for the generateContent endpoint.

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	Tools             []geminiTool            `json:"tools,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// CompleteStructured issues one generateContent call and returns the model's
// text output. Images are re-encoded as inline base64 payloads, preserving
// input order after the prompt text.
func (c *GeminiClient) CompleteStructured(ctx context.Context, req interfaces.GenerationRequest) (string, error) {
	if c.mockMode {
		return mockResponse(req), nil
	}

	parts := make([]geminiPart, 0, len(req.Images)+1)
	parts = append(parts, geminiPart{Text: req.Prompt})
	for _, img := range req.Images {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: img.MimeType,
			Data:     base64.StdEncoding.EncodeToString(img.Data),
		}})
	}

	body := generateContentRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemInstruction}}}
	}
	if req.EnableSearch {
		body.Tools = []geminiTool{{GoogleSearch: &struct{}{}}}
	}
	if req.JSONMode {
		body.GenerationConfig = &geminiGenerationConfig{ResponseMIMEType: "application/json"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	slog.Debug("model call start", "component", "ai", "model", c.model, "images", len(req.Images), "search", req.EnableSearch, "json_mode", req.JSONMode)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var out generateContentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("gemini: decoding response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", errors.New("gemini: empty response")
	}

	var text strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

// mockResponse fabricates payloads shaped like real model output, fence
// included for the free-text path, so the parser is exercised end to end.
func mockResponse(req interfaces.GenerationRequest) string {
	if req.JSONMode {
		return `{"client_info":{"name":"Mock Client","address":"Rua Exemplo 1","date":"2025-01-01"},` +
			`"objective":"Mock inspection","methodology":["site visit"],` +
			`"development":[{"title":"Findings","content":"Mock findings."}],` +
			`"photo_analyses":[],` +
			`"conclusion":{"diagnosis":"mock","technical_proof":"mock","consequences":"mock","active_leak":false},` +
			`"recommendations":{"repair_type":"mock","materials":["mock"],"estimated_time":"1 day","notes":""}}`
	}
	return "```json\n" +
		`{"title":"Mock job","summary":"Mock summary","executionTime":"3 business days","paymentTerms":"50% upfront",` +
		`"steps":[{"title":"Mock step","description":"Mock work","suggestedQuantity":1,"suggestedPrice":{"unitPrice":100,"unit":"unit"}}]}` +
		"\n```"
}

func isAIGatewayMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("AI_GATEWAY_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
