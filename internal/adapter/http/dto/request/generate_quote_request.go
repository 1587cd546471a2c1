package request

import (
	"encoding/base64"
	"errors"
	"strings"

	"orcaobra/internal/usecase/interfaces"
)

var ErrInvalidImagePayload = errors.New("invalid image payload")

// ImageRequest carries one photo as base64. Data URLs
// ("data:image/png;base64,....") are accepted and stripped.
type ImageRequest struct {
	Data     string `json:"data" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

// GenerateQuoteRequest is the form payload for a quote generation call.
type GenerateQuoteRequest struct {
	Description string         `json:"description" binding:"required"`
	City        string         `json:"city"`
	ClientName  string         `json:"client_name"`
	Currency    string         `json:"currency" binding:"required"`
	Images      []ImageRequest `json:"images"`
}

// ResolveImages decodes the image batch, preserving input order.
func (r GenerateQuoteRequest) ResolveImages() ([]interfaces.ImagePayload, error) {
	return decodeImages(r.Images)
}

func decodeImages(images []ImageRequest) ([]interfaces.ImagePayload, error) {
	payloads := make([]interfaces.ImagePayload, 0, len(images))
	for _, img := range images {
		data := img.Data
		if i := strings.Index(data, ";base64,"); i >= 0 && strings.HasPrefix(data, "data:") {
			data = data[i+len(";base64,"):]
		}
		raw, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, ErrInvalidImagePayload
		}
		if strings.TrimSpace(img.MimeType) == "" {
			return nil, ErrInvalidImagePayload
		}
		payloads = append(payloads, interfaces.ImagePayload{Data: raw, MimeType: img.MimeType})
	}
	return payloads, nil
}
