package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	request "orcaobra/internal/adapter/http/dto/request"
	response "orcaobra/internal/adapter/http/dto/response"
	"orcaobra/internal/domain/entities"
	"orcaobra/internal/usecase"
	"orcaobra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quote generation and the saved-quote
// collection.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GenerateQuote runs one generation call from the form inputs and returns an
// unsaved quote.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	var payload request.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	images, err := payload.ResolveImages()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Generate(c.Request.Context(), usecase.GenerateQuoteInput{
		Description: payload.Description,
		City:        payload.City,
		ClientName:  payload.ClientName,
		Currency:    entities.Currency(payload.Currency),
		Images:      images,
	})
	if err != nil {
		appErr := mapGenerationError("Failed to generate quote", err)
		slog.Warn("generate quote failed", "component", "http", "code", appErr.Code, "error", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SaveQuote persists a new or edited quote. New quotes get their permanent ID
// here.
func (h *QuoteHandler) SaveQuote(c *gin.Context) {
	quote, ok := bindQuote(c)
	if !ok {
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), quote)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(saved))
}

// UpdateQuote re-persists a saved quote by ID match.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	quote, ok := bindQuote(c)
	if !ok {
		return
	}
	quote.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), quote)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportQuotePDF streams the rendered PDF of a saved quote.
func (h *QuoteHandler) ExportQuotePDF(c *gin.Context) {
	pdf, err := h.usecase.ExportPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="quote.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func bindQuote(c *gin.Context) (quote entities.Quote, ok bool) {
	var payload request.SaveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return quote, false
	}
	quote, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return quote, false
	}
	return quote, true
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidDescription), errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapGenerationError translates generation failures into the user-facing
// taxonomy: malformed AI output, unexpected shape, or an upstream failure
// wrapped with the originating operation.
func mapGenerationError(operation string, err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDescription), errors.Is(err, usecase.ErrInvalidCurrency), errors.Is(err, usecase.ErrInvalidReportQuote):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMalformedAIResponse):
		return pkg.NewDomainErrorSimple("AI_RESPONSE_INVALID", "The AI response was not in a valid format", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrUnexpectedAIShape):
		return pkg.NewDomainErrorSimple("AI_RESPONSE_UNEXPECTED", "The AI response did not match the expected format", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrAINotConfigured):
		return pkg.NewDomainErrorSimple("AI_NOT_CONFIGURED", "Generative model service is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("GENERATION_FAILED", operation, err, http.StatusBadGateway)
	}
}
