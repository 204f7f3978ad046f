package model

type Settings struct {
	CompanyName        string `json:"companyName"`
	Timezone           string `json:"timezone"`
	Currency           string `json:"currency"`
	EmailNotifications bool   `json:"emailNotifications"`
}

// SettingsPatch is a shallow partial update; nil fields are left untouched.
type SettingsPatch struct {
	CompanyName        *string `json:"companyName"`
	Timezone           *string `json:"timezone"`
	Currency           *string `json:"currency"`
	EmailNotifications *bool   `json:"emailNotifications"`
}

func DefaultSettings() Settings {
	return Settings{
		CompanyName:        "DayFlow Inc.",
		Timezone:           "UTC",
		Currency:           "USD",
		EmailNotifications: true,
	}
}

// Apply returns s with every non-nil field of p copied over.
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.EmailNotifications != nil {
		s.EmailNotifications = *p.EmailNotifications
	}
	return s
}
