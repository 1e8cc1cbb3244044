package models

import "time"

// SettingsID keys the single settings document.
const SettingsID = "settings"

type Settings struct {
	ID           string    `bson:"_id" json:"id"`
	CompanyName  string    `bson:"company_name" json:"company_name"`
	PrimaryColor string    `bson:"primary_color" json:"primary_color"`
	LogoURL      string    `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

func (s Settings) DocID() string { return s.ID }

func DefaultSettings(now time.Time) Settings {
	return Settings{
		ID:           SettingsID,
		CompanyName:  "Malaysian Defensive Driving and Riding Centre",
		PrimaryColor: "#1e40af",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
