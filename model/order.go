package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// BackgroundSelection is one photo slot's chosen background.
type BackgroundSelection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BackgroundList is stored as a JSON text column.
type BackgroundList []BackgroundSelection

func (l BackgroundList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *BackgroundList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return errors.New("unsupported type for BackgroundList")
	}
}

// StringList is stored as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// Order is one customer's complete kiosk transaction. All fields except the
// status flags, operator notes and UpdatedAt are fixed at creation.
// Timestamps are local wall-clock time so operator-facing times match the
// venue's clock; gorm's automatic stamping is disabled because the store
// controls both timestamps itself.
type Order struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	CustomerNumber string `gorm:"uniqueIndex;size:32" json:"customerNumber"`
	CustomerName   string `json:"customerName"`
	PartySize      int    `json:"partySize"`

	CustomerPhotoPath *string `json:"customerPhotoPath,omitempty"`

	PhotoQuantity     int            `json:"photoQuantity"`
	UseSameBackground bool           `json:"useSameBackground"`
	BackgroundID      string         `json:"backgroundId"`
	BackgroundName    string         `json:"backgroundName"`
	Backgrounds       BackgroundList `gorm:"type:text" json:"backgrounds,omitempty"`

	DeliveryMethod string     `json:"deliveryMethod"`
	PrintQuantity  int        `json:"printQuantity"`
	EmailAddresses StringList `gorm:"type:text" json:"emailAddresses,omitempty"`
	EmailCount     int        `json:"emailCount"`

	PaymentMethod string  `json:"paymentMethod"`
	TotalPrice    float64 `json:"totalPrice"`

	StatusPhotoTaken  bool `gorm:"column:status_photo_taken" json:"statusPhotoTaken"`
	StatusPaid        bool `gorm:"column:status_paid" json:"statusPaid"`
	StatusEmailsSent  bool `gorm:"column:status_emails_sent" json:"statusEmailsSent"`
	StatusPrintsReady bool `gorm:"column:status_prints_ready" json:"statusPrintsReady"`
	StatusPickedUp    bool `gorm:"column:status_picked_up;index" json:"statusPickedUp"`

	OperatorNotes *string `json:"operatorNotes,omitempty"`

	EventName string `json:"eventName"`
	EventDate string `json:"eventDate"`

	CreatedAt time.Time `gorm:"index;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// CreateOrderInput is the kiosk submission payload.
type CreateOrderInput struct {
	CustomerNumber      string         `json:"customerNumber"`
	CustomerName        string         `json:"customerName" validate:"required"`
	PartySize           int            `json:"partySize" validate:"required,min=1"`
	CustomerPhotoPath   string         `json:"customerPhotoPath"`
	PhotoQuantity       int            `json:"photoQuantity" validate:"omitempty,min=1"`
	UseSameBackground   bool           `json:"useSameBackground"`
	BackgroundID        string         `json:"backgroundId"`
	BackgroundName      string         `json:"backgroundName"`
	SelectedBackgrounds BackgroundList `json:"selectedBackgrounds"`
	AiPrompts           []string       `json:"aiPrompts"`
	DeliveryMethod      string         `json:"deliveryMethod" validate:"required,oneof=print email both"`
	PrintQuantity       int            `json:"printQuantity" validate:"min=0"`
	EmailAddresses      []string       `json:"emailAddresses" validate:"dive,email"`
	EmailCount          int            `json:"emailCount" validate:"min=0"`
	PaymentMethod       string         `json:"paymentMethod" validate:"required"`
	TotalPrice          float64        `json:"totalPrice" validate:"min=0"`
	CreatedAt           *time.Time     `json:"createdAt"` // backfill/seeding only
}

// StatusUpdateInput is the operator status toggle payload.
type StatusUpdateInput struct {
	Field string `json:"field" validate:"required"`
	Value bool   `json:"value"`
}

// NotesInput replaces the operator notes wholesale.
type NotesInput struct {
	Notes string `json:"notes"`
}
