package model

import "time"

// SettingsID is the fixed key of the settings singleton row.
const SettingsID uint = 1

// Settings is a single persistent record read by both UIs at session start
// and replaced wholesale by the operator settings screen.
type Settings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessName   string `json:"businessName"`
	WelcomeMessage string `json:"welcomeMessage"`
	EventName      string `json:"eventName"`
	EventDate      string `json:"eventDate"`

	AIBackgroundsEnabled bool `json:"aiBackgroundsEnabled"`
	PrintsEnabled        bool `json:"printsEnabled"`
	EmailsEnabled        bool `json:"emailsEnabled"`

	AcceptCash  bool `json:"acceptCash"`
	AcceptCard  bool `json:"acceptCard"`
	AcceptVenmo bool `json:"acceptVenmo"`
	AcceptZelle bool `json:"acceptZelle"`
	AcceptOther bool `json:"acceptOther"`

	// Print price tiers by print count; orders of 8 or more prints are
	// priced at the tier-8 rate.
	PrintPrice1 float64 `json:"printPrice1"`
	PrintPrice2 float64 `json:"printPrice2"`
	PrintPrice3 float64 `json:"printPrice3"`
	PrintPrice4 float64 `json:"printPrice4"`
	PrintPrice5 float64 `json:"printPrice5"`
	PrintPrice6 float64 `json:"printPrice6"`
	PrintPrice7 float64 `json:"printPrice7"`
	PrintPrice8 float64 `json:"printPrice8"`

	EmailBasePrice  float64 `json:"emailBasePrice"`
	EmailExtraPrice float64 `json:"emailExtraPrice"`

	// Optional third-party credential for AI background generation.
	AIApiKey string `json:"aiApiKey"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// PrintPriceFor returns the tier price for the given print count.
func (s *Settings) PrintPriceFor(count int) float64 {
	tiers := []float64{
		s.PrintPrice1, s.PrintPrice2, s.PrintPrice3, s.PrintPrice4,
		s.PrintPrice5, s.PrintPrice6, s.PrintPrice7, s.PrintPrice8,
	}
	if count <= 0 {
		return 0
	}
	if count > len(tiers) {
		count = len(tiers)
	}
	return tiers[count-1]
}

// SettingsInput mirrors Settings for wholesale updates.
type SettingsInput struct {
	BusinessName   string `json:"businessName"`
	WelcomeMessage string `json:"welcomeMessage"`
	EventName      string `json:"eventName"`
	EventDate      string `json:"eventDate"`

	AIBackgroundsEnabled bool `json:"aiBackgroundsEnabled"`
	PrintsEnabled        bool `json:"printsEnabled"`
	EmailsEnabled        bool `json:"emailsEnabled"`

	AcceptCash  bool `json:"acceptCash"`
	AcceptCard  bool `json:"acceptCard"`
	AcceptVenmo bool `json:"acceptVenmo"`
	AcceptZelle bool `json:"acceptZelle"`
	AcceptOther bool `json:"acceptOther"`

	PrintPrice1 float64 `json:"printPrice1" validate:"min=0"`
	PrintPrice2 float64 `json:"printPrice2" validate:"min=0"`
	PrintPrice3 float64 `json:"printPrice3" validate:"min=0"`
	PrintPrice4 float64 `json:"printPrice4" validate:"min=0"`
	PrintPrice5 float64 `json:"printPrice5" validate:"min=0"`
	PrintPrice6 float64 `json:"printPrice6" validate:"min=0"`
	PrintPrice7 float64 `json:"printPrice7" validate:"min=0"`
	PrintPrice8 float64 `json:"printPrice8" validate:"min=0"`

	EmailBasePrice  float64 `json:"emailBasePrice" validate:"min=0"`
	EmailExtraPrice float64 `json:"emailExtraPrice" validate:"min=0"`

	AIApiKey string `json:"aiApiKey"`
}
