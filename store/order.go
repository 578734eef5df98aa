package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// generateRetries bounds the regenerate-and-retry loop on customer number
// collisions before surfacing ErrGenerationExhausted.
const generateRetries = 5

// statusColumns maps the recognized status field names to their columns.
var statusColumns = map[string]string{
	constants.STATUS_PHOTO_TAKEN:  "status_photo_taken",
	constants.STATUS_PAID:         "status_paid",
	constants.STATUS_EMAILS_SENT:  "status_emails_sent",
	constants.STATUS_PRINTS_READY: "status_prints_ready",
	constants.STATUS_PICKED_UP:    "status_picked_up",
}

// OrderStore owns the durable record of every order. Mutations are
// serialized through the mutex: fiber handles requests on multiple
// goroutines while sqlite wants a single writer.
type OrderStore struct {
	db  *gorm.DB
	gen NumberGenerator
	mu  sync.Mutex
}

func NewOrderStore(db *gorm.DB, gen NumberGenerator) *OrderStore {
	return &OrderStore{db: db, gen: gen}
}

// Create validates the kiosk submission, derives operator notes from any
// per-photo custom prompts, assigns a unique customer number and persists
// the record atomically. eventName/eventDate are denormalized from the
// active settings so historical orders keep the event they were placed
// under.
func (s *OrderStore) Create(input model.CreateOrderInput, eventName, eventDate string) (*model.Order, error) {
	if input.PhotoQuantity < 1 {
		input.PhotoQuantity = 1
	}
	if err := validateOrderInput(&input); err != nil {
		return nil, err
	}

	now := time.Now().In(time.Local)
	if input.CreatedAt != nil {
		now = input.CreatedAt.In(time.Local)
	}

	var order model.Order
	if err := copier.Copy(&order, &input); err != nil {
		return nil, fmt.Errorf("map order input: %w", err)
	}
	order.ID = 0
	order.Backgrounds = input.SelectedBackgrounds
	order.EmailAddresses = model.StringList(input.EmailAddresses)
	order.CustomerPhotoPath = nil
	if input.CustomerPhotoPath != "" {
		order.CustomerPhotoPath = &input.CustomerPhotoPath
	}
	order.EventName = eventName
	order.EventDate = eventDate
	order.CreatedAt = now
	order.UpdatedAt = now

	applyCustomPrompts(&order, &input)

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.CustomerNumber != "" {
		order.CustomerNumber = input.CustomerNumber
		taken, err := s.numberExists(order.CustomerNumber)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateNumber
		}
		if err := s.insert(&order); err != nil {
			return nil, err
		}
		return &order, nil
	}

	if s.gen == nil {
		return nil, fmt.Errorf("%w: no customer number supplied and no generator configured", ErrInvalidInput)
	}
	for attempt := 0; attempt < generateRetries; attempt++ {
		candidate, err := s.gen.Next(now)
		if err != nil {
			return nil, err
		}
		taken, err := s.numberExists(candidate)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}
		order.CustomerNumber = candidate
		if err := s.insert(&order); err != nil {
			return nil, err
		}
		return &order, nil
	}
	return nil, ErrGenerationExhausted
}

func (s *OrderStore) insert(order *model.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (s *OrderStore) numberExists(number string) (bool, error) {
	var count int64
	if err := s.db.Model(&model.Order{}).
		Where("customer_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByNumber is the sole lookup used for status updates, notes and
// receipts.
func (s *OrderStore) GetByNumber(number string) (*model.Order, error) {
	var order model.Order
	if err := s.db.Where("customer_number = ?", number).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders newest first, optionally only those not yet picked up.
func (s *OrderStore) List(pendingOnly bool) ([]model.Order, error) {
	query := s.db.Model(&model.Order{}).Order("created_at desc")
	if pendingOnly {
		query = query.Where("status_picked_up = ?", false)
	}
	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SetStatus flips one of the five independent status flags. The store does
// not enforce an ordering among the flags so operators can correct
// mistakes. Setting a flag to its current value still stamps UpdatedAt.
func (s *OrderStore) SetStatus(number, field string, value bool) error {
	column, ok := statusColumns[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		if err := tx.Where("customer_number = ?", number).First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&order).Updates(map[string]interface{}{
			column:       value,
			"updated_at": time.Now().In(time.Local),
		}).Error
	})
}

// SetNotes replaces the operator notes wholesale.
func (s *OrderStore) SetNotes(number, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		if err := tx.Where("customer_number = ?", number).First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&order).Updates(map[string]interface{}{
			"operator_notes": notes,
			"updated_at":     time.Now().In(time.Local),
		}).Error
	})
}

func validateOrderInput(input *model.CreateOrderInput) error {
	if input.PartySize < 1 {
		return fmt.Errorf("%w: party size must be at least 1", ErrInvalidInput)
	}
	switch input.DeliveryMethod {
	case constants.DELIVERY_PRINT, constants.DELIVERY_EMAIL, constants.DELIVERY_BOTH:
	default:
		return fmt.Errorf("%w: unrecognized delivery method %q", ErrInvalidInput, input.DeliveryMethod)
	}
	if input.TotalPrice < 0 {
		return fmt.Errorf("%w: total price cannot be negative", ErrInvalidInput)
	}

	wantsPrint := input.DeliveryMethod != constants.DELIVERY_EMAIL
	wantsEmail := input.DeliveryMethod != constants.DELIVERY_PRINT
	if wantsPrint && input.PrintQuantity < 1 {
		return fmt.Errorf("%w: print delivery requires a print quantity", ErrInvalidInput)
	}
	if !wantsPrint && input.PrintQuantity != 0 {
		return fmt.Errorf("%w: print quantity must be 0 for email-only delivery", ErrInvalidInput)
	}
	if wantsEmail && len(input.EmailAddresses) == 0 {
		return fmt.Errorf("%w: email delivery requires at least one address", ErrInvalidInput)
	}
	if len(input.EmailAddresses) != input.EmailCount {
		return fmt.Errorf("%w: email count does not match address list", ErrInvalidInput)
	}

	if len(input.SelectedBackgrounds) > 0 {
		if len(input.SelectedBackgrounds) != input.PhotoQuantity {
			return fmt.Errorf("%w: background list length must equal photo quantity", ErrInvalidInput)
		}
		if input.PhotoQuantity > 1 && input.UseSameBackground {
			return fmt.Errorf("%w: per-photo backgrounds conflict with useSameBackground", ErrInvalidInput)
		}
	}
	return nil
}

// applyCustomPrompts derives operator notes from the per-photo prompts and,
// when every photo slot carries a prompt, collapses the primary background
// fields to the matching synthetic value. Runs once at creation and is never
// re-evaluated.
func applyCustomPrompts(order *model.Order, input *model.CreateOrderInput) {
	lines := make([]string, 0, input.PhotoQuantity)
	prompted := 0
	allAI, allManual := true, true

	for i := 1; i <= input.PhotoQuantity; i++ {
		bgID := slotBackgroundID(input, i)
		if bgID != constants.BG_AI_CUSTOM {
			allAI = false
		}
		if bgID != constants.BG_MANUAL {
			allManual = false
		}

		prompt := ""
		if i-1 < len(input.AiPrompts) {
			prompt = strings.TrimSpace(input.AiPrompts[i-1])
		}
		if prompt == "" {
			continue
		}
		prompted++

		kind := "Custom"
		switch bgID {
		case constants.BG_AI_CUSTOM:
			kind = "AI Custom"
		case constants.BG_MANUAL:
			kind = "Manual Custom"
		}
		lines = append(lines, fmt.Sprintf("Photo %d (%s): %s", i, kind, prompt))
	}

	if len(lines) > 0 {
		notes := strings.Join(lines, "\n")
		order.OperatorNotes = &notes
	}

	if prompted != input.PhotoQuantity {
		return
	}
	switch {
	case allAI:
		order.BackgroundID = constants.BG_AI_CUSTOM
		order.BackgroundName = constants.BG_AI_NAME
	case allManual:
		order.BackgroundID = constants.BG_MANUAL
		order.BackgroundName = constants.BG_MANUAL_NAME
	default:
		order.BackgroundID = constants.BG_MIXED
		order.BackgroundName = constants.BG_MIXED_NAME
	}
}

func slotBackgroundID(input *model.CreateOrderInput, slot int) string {
	if slot-1 < len(input.SelectedBackgrounds) {
		return input.SelectedBackgrounds[slot-1].ID
	}
	return input.BackgroundID
}
