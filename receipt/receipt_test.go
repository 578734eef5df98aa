package receipt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"greenscreen_kiosk/model"
	"greenscreen_kiosk/utils"

	"github.com/stretchr/testify/assert"
)

func sampleOrder() *model.Order {
	return &model.Order{
		CustomerNumber: "GS-20260418-ABCD",
		CustomerName:   "Test Customer",
		PartySize:      2,
		PhotoQuantity:  1,
		BackgroundName: "Beach Sunset",
		DeliveryMethod: "both",
		PrintQuantity:  2,
		EmailAddresses: model.StringList{"test@example.com"},
		EmailCount:     1,
		PaymentMethod:  "card",
		TotalPrice:     25,
		EventName:      "Spring Gala",
		CreatedAt:      time.Date(2026, 4, 18, 14, 30, 0, 0, time.Local),
		StatusPaid:     true,
	}
}

func TestRenderCustomerCopy(t *testing.T) {
	order := sampleOrder()

	html, err := Render(order, "Greenscreen Photo Booth", AudienceCustomer)
	assert.NoError(t, err)

	assert.Contains(t, html, "Greenscreen Photo Booth")
	assert.Contains(t, html, "GS-20260418-ABCD")
	assert.Contains(t, html, "Test Customer")
	assert.Contains(t, html, "Beach Sunset")
	assert.Contains(t, html, "$25.00")
	assert.Contains(t, html, "Customer copy")
	assert.Contains(t, html, "04/18/2026 2:30 PM")
	assert.NotContains(t, html, "Operator copy")
	assert.NotContains(t, html, "[x] Paid")
}

func TestRenderOperatorCopy(t *testing.T) {
	order := sampleOrder()
	order.OperatorNotes = utils.StringPtr("Photo 1 (AI Custom): dragon over a castle\nreprint requested")

	html, err := Render(order, "Greenscreen Photo Booth", AudienceOperator)
	assert.NoError(t, err)

	assert.Contains(t, html, "Operator copy")
	assert.Contains(t, html, "[x] Paid")
	assert.Contains(t, html, "[ ] Picked up")
	assert.Contains(t, html, "dragon over a castle")
	assert.Contains(t, html, "reprint requested")
}

func TestRenderBothHasCutLine(t *testing.T) {
	order := sampleOrder()

	html, err := Render(order, "Booth", AudienceBoth)
	assert.NoError(t, err)

	assert.Contains(t, html, `<hr class="cut-line"/>`)
	assert.Equal(t, 1, strings.Count(html, "Customer copy"))
	assert.Equal(t, 1, strings.Count(html, "Operator copy"))
	assert.Less(t, strings.Index(html, "Customer copy"), strings.Index(html, "Operator copy"))
}

func TestRenderPerPhotoBackgrounds(t *testing.T) {
	order := sampleOrder()
	order.PhotoQuantity = 2
	order.Backgrounds = model.BackgroundList{
		{ID: "bg-001", Name: "Beach Sunset"},
		{ID: "bg-002", Name: "City Lights"},
	}

	html, err := Render(order, "Booth", AudienceCustomer)
	assert.NoError(t, err)
	assert.Contains(t, html, "Background 1")
	assert.Contains(t, html, "City Lights")
}

func TestRenderUnknownAudience(t *testing.T) {
	_, err := Render(sampleOrder(), "Booth", Audience("wallet"))
	assert.True(t, errors.Is(err, ErrUnknownAudience))
}

func TestRenderDoesNotMutateOrder(t *testing.T) {
	order := sampleOrder()
	before := *order

	_, err := Render(order, "Booth", AudienceBoth)
	assert.NoError(t, err)
	assert.Equal(t, before.CustomerNumber, order.CustomerNumber)
	assert.Equal(t, before.TotalPrice, order.TotalPrice)
	assert.Nil(t, order.OperatorNotes)
}
