package interfaces

import "orcaobra/internal/domain/entities"

// IDocumentExporter renders a document to a multi-page, fixed-page-size PDF.
type IDocumentExporter interface {
	QuotePDF(quote entities.Quote, settings entities.UserSettings) ([]byte, error)
	ReportPDF(report entities.TechnicalReport, settings entities.UserSettings) ([]byte, error)
}
