package request

import "orcaobra/internal/domain/entities"

// SettingsRequest overwrites the company profile wholesale.
type SettingsRequest struct {
	CompanyName    string `json:"company_name" binding:"required"`
	CompanyAddress string `json:"company_address"`
	CompanyTaxID   string `json:"company_tax_id"`
	CompanyLogo    string `json:"company_logo"`
}

func (r SettingsRequest) ToEntity() entities.UserSettings {
	return entities.UserSettings{
		CompanyName:    r.CompanyName,
		CompanyAddress: r.CompanyAddress,
		CompanyTaxID:   r.CompanyTaxID,
		CompanyLogo:    r.CompanyLogo,
	}
}
