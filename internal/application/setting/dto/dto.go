package dto

// DisplaySettingsDTO is the admin configuration screen.
type DisplaySettingsDTO struct {
	ShowAds bool `json:"show_ads"`
}

// UpdateDisplaySettingsRequest is the configuration form. A missing show_ads box means false.
type UpdateDisplaySettingsRequest struct {
	ShowAds bool `form:"show_ads" json:"show_ads"`
}
