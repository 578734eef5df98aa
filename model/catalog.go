package model

import "time"

// Theme is a named category of background images shown as a kiosk tab.
// TabLabel doubles as the filename prefix matched by the import pass.
type Theme struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `json:"name"`
	TabLabel  string `gorm:"index" json:"tabLabel"`
	Enabled   bool   `json:"enabled"`
	SortOrder int    `json:"sortOrder"`

	Backgrounds []Background `gorm:"constraint:OnDelete:SET NULL" json:"backgrounds,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Background is an individual selectable image. The theme association is
// nullable: deleting a theme clears it, the background itself survives.
type Background struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ThemeID     *uint   `gorm:"index" json:"themeId"`
	Slug        string  `gorm:"uniqueIndex;size:64" json:"slug"` // external id used by the kiosk
	Filename    string  `gorm:"uniqueIndex" json:"filename"`
	DisplayName string  `json:"displayName"`
	Enabled     bool    `json:"enabled"`
	SortOrder   int     `json:"sortOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ThemeInput struct {
	Name      string `json:"name" validate:"required"`
	TabLabel  string `json:"tabLabel" validate:"required"`
	Enabled   *bool  `json:"enabled"`
	SortOrder int    `json:"sortOrder"`
}

type BackgroundInput struct {
	ThemeID     *uint  `json:"themeId"`
	Filename    string `json:"filename" validate:"required"`
	DisplayName string `json:"displayName"`
	Enabled     *bool  `json:"enabled"`
	SortOrder   int    `json:"sortOrder"`
}
