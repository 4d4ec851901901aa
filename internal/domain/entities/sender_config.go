package entities

import "time"

// SenderConfig is the merchant's declared shipping-origin identity, at most
// one per shop, replaced wholesale on every write.
type SenderConfig struct {
	ShopDomain         string    `json:"-"`
	IdentificationType string    `json:"identificationType"`
	SenderID           string    `json:"senderId"`
	SenderName         string    `json:"senderName"`
	SenderPhone        string    `json:"senderPhone"`
	SenderMail         string    `json:"senderMail"`
	ProvinceCode       string    `json:"provinceCode"`
	CantonCode         string    `json:"cantonCode"`
	DistrictCode       string    `json:"districtCode"`
	PostalCode         string    `json:"postalCode"`
	AddressLine        string    `json:"addressLine"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}

// ExtensionView is the whitelisted projection returned to the extension.
// Fields outside this set never leave the admin surface.
type ExtensionView struct {
	SenderName   string `json:"senderName"`
	SenderPhone  string `json:"senderPhone"`
	SenderMail   string `json:"senderMail"`
	ProvinceCode string `json:"provinceCode"`
	CantonCode   string `json:"cantonCode"`
	DistrictCode string `json:"districtCode"`
}

// ForExtension returns the whitelisted field projection.
func (c *SenderConfig) ForExtension() ExtensionView {
	return ExtensionView{
		SenderName:   c.SenderName,
		SenderPhone:  c.SenderPhone,
		SenderMail:   c.SenderMail,
		ProvinceCode: c.ProvinceCode,
		CantonCode:   c.CantonCode,
		DistrictCode: c.DistrictCode,
	}
}

// SenderConfigInput is the write payload accepted from the extension.
type SenderConfigInput struct {
	IdentificationType string `json:"identificationType"`
	SenderID           string `json:"senderId"`
	SenderName         string `json:"senderName"`
	SenderPhone        string `json:"senderPhone"`
	SenderMail         string `json:"senderMail"`
	ProvinceCode       string `json:"provinceCode"`
	CantonCode         string `json:"cantonCode"`
	DistrictCode       string `json:"districtCode"`
	PostalCode         string `json:"postalCode"`
	AddressLine        string `json:"addressLine"`
}
