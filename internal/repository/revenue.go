// internal/repository/revenue.go
package repository

import (
	"fmt"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"gorm.io/gorm"
)

// sumRevenue totals completed-payment amounts (paise) for any payable model.
func sumRevenue(db *gorm.DB, payable interface{}) (int64, error) {
	var total int64
	err := db.Model(payable).
		Where("payment_status = ?", model.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

type dayRevenue struct {
	Day   string
	Total int64
}

// revenueByDay buckets completed-payment amounts by calendar day of payment.
// Days with no revenue are absent; the caller zero-fills.
func revenueByDay(db *gorm.DB, payable interface{}, since time.Time) (map[string]int64, error) {
	var rows []dayRevenue
	err := db.Model(payable).
		Where("payment_status = ? AND paid_at >= ?", model.PaymentCompleted, since).
		Select("to_char(paid_at, 'YYYY-MM-DD') AS day, SUM(amount) AS total").
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to bucket revenue by day: %w", err)
	}

	buckets := make(map[string]int64, len(rows))
	for _, row := range rows {
		buckets[row.Day] = row.Total
	}
	return buckets, nil
}
