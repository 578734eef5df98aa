package model

import "time"

// Account is an operator dashboard login.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:64" json:"username"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenData struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

// PhotoUploadInput carries a base64-encoded customer photo from the kiosk.
type PhotoUploadInput struct {
	Data      string `json:"data" validate:"required"`
	Extension string `json:"extension"`
}

// EmailReceiptInput optionally overrides the recipients stored on the order.
type EmailReceiptInput struct {
	Recipients []string `json:"recipients" validate:"omitempty,dive,email"`
}
