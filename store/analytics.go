package store

import (
	"fmt"
	"time"

	"greenscreen_kiosk/model"

	"gorm.io/gorm"
)

// Analytics computes read-only projections over the orders table. Safe to
// call at arbitrary frequency, no side effects.
type Analytics struct {
	db *gorm.DB
}

func NewAnalytics(db *gorm.DB) *Analytics {
	return &Analytics{db: db}
}

type Statistics struct {
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingOrders int64   `json:"pendingOrders"`
	TodayOrders   int64   `json:"todayOrders"`
}

type DailySummary struct {
	TotalOrders     int64   `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalPrints     int64   `json:"totalPrints"`
	TotalEmails     int64   `json:"totalEmails"`
	CompletedOrders int64   `json:"completedOrders"`
}

// Statistics counts and sums over all orders. "Pending" means not yet
// picked up; "today" is the venue's local date.
func (a *Analytics) Statistics() (*Statistics, error) {
	var stats Statistics

	if err := a.db.Model(&model.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := a.db.Raw(`SELECT COALESCE(SUM(total_price), 0) FROM orders`).
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := a.db.Model(&model.Order{}).
		Where("status_picked_up = ?", false).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}

	start, end := localDayBounds(time.Now().In(time.Local))
	if err := a.db.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&stats.TodayOrders).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// OrdersByHour returns a 24-slot count of orders created on the given local
// date (YYYY-MM-DD). All slots are present even when zero.
func (a *Analytics) OrdersByHour(date string) ([24]int, error) {
	var hours [24]int
	start, end, err := parseLocalDate(date)
	if err != nil {
		return hours, err
	}

	var created []time.Time
	if err := a.db.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Pluck("created_at", &created).Error; err != nil {
		return hours, err
	}
	for _, t := range created {
		hours[t.In(time.Local).Hour()]++
	}
	return hours, nil
}

// DailySummary aggregates one local date. Every numeric field defaults to
// zero when no orders match.
func (a *Analytics) DailySummary(date string) (*DailySummary, error) {
	start, end, err := parseLocalDate(date)
	if err != nil {
		return nil, err
	}

	var summary DailySummary
	if err := a.db.Raw(`
        SELECT
            COUNT(*) AS total_orders,
            COALESCE(SUM(total_price), 0) AS total_revenue,
            COALESCE(SUM(print_quantity), 0) AS total_prints,
            COALESCE(SUM(email_count), 0) AS total_emails,
            COALESCE(SUM(CASE WHEN status_picked_up THEN 1 ELSE 0 END), 0) AS completed_orders
        FROM orders
        WHERE created_at >= ? AND created_at < ?
    `, start, end).Scan(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

func parseLocalDate(date string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	start, end := localDayBounds(t)
	return start, end, nil
}

func localDayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}
