package request

import "orcaobra/internal/usecase/interfaces"

// GenerateReportRequest reuses the quote being viewed plus the same photo
// batch it was generated from, so photo indices stay aligned.
type GenerateReportRequest struct {
	Quote  SaveQuoteRequest `json:"quote" binding:"required"`
	Images []ImageRequest   `json:"images"`
}

func (r GenerateReportRequest) ResolveImages() ([]interfaces.ImagePayload, error) {
	return decodeImages(r.Images)
}
