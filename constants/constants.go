package constants

// Delivery methods
const (
	DELIVERY_PRINT = "print"
	DELIVERY_EMAIL = "email"
	DELIVERY_BOTH  = "both"
)

// Payment methods accepted at the kiosk
const (
	PAYMENT_CASH  = "cash"
	PAYMENT_CARD  = "card"
	PAYMENT_VENMO = "venmo"
	PAYMENT_ZELLE = "zelle"
	PAYMENT_OTHER = "other"
)

// Status flag field names accepted by the status update operation
const (
	STATUS_PHOTO_TAKEN  = "status_photo_taken"
	STATUS_PAID         = "status_paid"
	STATUS_EMAILS_SENT  = "status_emails_sent"
	STATUS_PRINTS_READY = "status_prints_ready"
	STATUS_PICKED_UP    = "status_picked_up"
)

// Sentinel background ids for custom / AI-generated backgrounds
const (
	BG_AI_CUSTOM   = "ai-custom"
	BG_MANUAL      = "custom"
	BG_MIXED       = "mixed-custom"
	BG_AI_NAME     = "AI Custom Background"
	BG_MANUAL_NAME = "Custom Background"
	BG_MIXED_NAME  = "Mixed Custom Backgrounds"
)

const ROLE_OPERATOR = "OPERATOR"

// Shared response messages
const (
	ERROR_INPUT     = "INVALID_INPUT"
	NOT_FOUND       = "NOT_FOUND"
	NOT_AUTHORIZED  = "NOT_AUTHORIZED"
	INTERNAL_ERROR  = "INTERNAL_ERROR"
	DUPLICATE_ORDER = "DUPLICATE_ORDER_NUMBER"
)

func DeliveryMethods() []string {
	return []string{DELIVERY_PRINT, DELIVERY_EMAIL, DELIVERY_BOTH}
}

func PaymentMethods() []string {
	return []string{PAYMENT_CASH, PAYMENT_CARD, PAYMENT_VENMO, PAYMENT_ZELLE, PAYMENT_OTHER}
}

func StatusFields() []string {
	return []string{STATUS_PHOTO_TAKEN, STATUS_PAID, STATUS_EMAILS_SENT, STATUS_PRINTS_READY, STATUS_PICKED_UP}
}
