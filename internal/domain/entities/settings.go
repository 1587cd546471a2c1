package entities

// UserSettings is the company profile stamped on exported documents.
// Persisted as a single record, loaded on demand, overwritten wholesale on
// save. CompanyLogo is a data URL or base64 payload supplied by the client.
type UserSettings struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyTaxID   string `json:"company_tax_id"`
	CompanyLogo    string `json:"company_logo,omitempty"`
}
