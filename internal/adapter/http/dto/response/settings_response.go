package response

import "orcaobra/internal/domain/entities"

type SettingsResponse struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyTaxID   string `json:"company_tax_id"`
	CompanyLogo    string `json:"company_logo,omitempty"`
}

func FromSettings(s entities.UserSettings) SettingsResponse {
	return SettingsResponse{
		CompanyName:    s.CompanyName,
		CompanyAddress: s.CompanyAddress,
		CompanyTaxID:   s.CompanyTaxID,
		CompanyLogo:    s.CompanyLogo,
	}
}
