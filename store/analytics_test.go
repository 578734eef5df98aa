package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/model"

	"github.com/stretchr/testify/assert"
)

func seedOrder(t *testing.T, s *OrderStore, number string, createdAt time.Time, price float64, prints, emails int) {
	t.Helper()

	addresses := make([]string, emails)
	for i := range addresses {
		addresses[i] = fmt.Sprintf("seed%d@example.com", i)
	}
	input := model.CreateOrderInput{
		CustomerNumber: number,
		CustomerName:   "Analytics Seed",
		PartySize:      1,
		DeliveryMethod: constants.DELIVERY_BOTH,
		PrintQuantity:  prints,
		EmailAddresses: addresses,
		EmailCount:     emails,
		PaymentMethod:  constants.PAYMENT_CASH,
		TotalPrice:     price,
		CreatedAt:      &createdAt,
	}
	_, err := s.Create(input, "", "")
	assert.NoError(t, err)
}

func TestOrdersByHourEmptyDate(t *testing.T) {
	a := NewAnalytics(testDB(t))

	hours, err := a.OrdersByHour("2026-04-18")
	assert.NoError(t, err)
	assert.Len(t, hours, 24)
	for _, count := range hours {
		assert.Zero(t, count)
	}
}

func TestOrdersByHourBuckets(t *testing.T) {
	db := testDB(t)
	s := NewOrderStore(db, nil)
	a := NewAnalytics(db)

	day := time.Date(2026, 4, 18, 0, 0, 0, 0, time.Local)
	seedOrder(t, s, "H1", day.Add(9*time.Hour), 15, 1, 1)
	seedOrder(t, s, "H2", day.Add(9*time.Hour+30*time.Minute), 15, 1, 1)
	seedOrder(t, s, "H3", day.Add(17*time.Hour), 15, 1, 1)
	// Previous day must not leak in.
	seedOrder(t, s, "H4", day.Add(-2*time.Hour), 15, 1, 1)

	hours, err := a.OrdersByHour("2026-04-18")
	assert.NoError(t, err)
	assert.Equal(t, 2, hours[9])
	assert.Equal(t, 1, hours[17])
	assert.Equal(t, 0, hours[22])
}

func TestOrdersByHourBadDate(t *testing.T) {
	a := NewAnalytics(testDB(t))

	_, err := a.OrdersByHour("18-04-2026")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestDailySummaryZeroes(t *testing.T) {
	a := NewAnalytics(testDB(t))

	summary, err := a.DailySummary("2026-04-18")
	assert.NoError(t, err)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalPrints)
	assert.Zero(t, summary.TotalEmails)
	assert.Zero(t, summary.CompletedOrders)
}

func TestDailySummaryAggregates(t *testing.T) {
	db := testDB(t)
	s := NewOrderStore(db, nil)
	a := NewAnalytics(db)

	day := time.Date(2026, 4, 18, 10, 0, 0, 0, time.Local)
	seedOrder(t, s, "D1", day, 25, 2, 1)
	seedOrder(t, s, "D2", day.Add(time.Hour), 40, 3, 2)
	seedOrder(t, s, "D3", day.AddDate(0, 0, 1), 99, 8, 4)

	assert.NoError(t, s.SetStatus("D1", constants.STATUS_PICKED_UP, true))

	summary, err := a.DailySummary("2026-04-18")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, 65.0, summary.TotalRevenue)
	assert.Equal(t, int64(5), summary.TotalPrints)
	assert.Equal(t, int64(3), summary.TotalEmails)
	assert.Equal(t, int64(1), summary.CompletedOrders)
}

func TestStatistics(t *testing.T) {
	db := testDB(t)
	s := NewOrderStore(db, nil)
	a := NewAnalytics(db)

	now := time.Now().In(time.Local)
	seedOrder(t, s, "S1", now, 25, 2, 1)
	seedOrder(t, s, "S2", now.AddDate(0, 0, -1), 40, 3, 2)

	assert.NoError(t, s.SetStatus("S1", constants.STATUS_PICKED_UP, true))

	stats, err := a.Statistics()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, 65.0, stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.TodayOrders)
}
