package service

import (
	"time"

	"gorm.io/gorm"

	"afa_backend/internals/features/finance/fees/model"
)

// MarkOverduePayments flips pending payments past their due date to overdue.
// Returns the number of rows touched.
func MarkOverduePayments(db *gorm.DB) (int64, error) {
	res := db.Model(&model.PaymentModel{}).
		Where("payment_status = ? AND payment_due_date IS NOT NULL AND payment_due_date < ?",
			model.PaymentStatusPending, time.Now()).
		Update("payment_status", model.PaymentStatusOverdue)
	return res.RowsAffected, res.Error
}
