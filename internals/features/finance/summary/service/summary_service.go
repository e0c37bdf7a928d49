package service

import (
	"gorm.io/gorm"

	feeModel "afa_backend/internals/features/finance/fees/model"
	inscriptionModel "afa_backend/internals/features/inscriptions/model"
	shopModel "afa_backend/internals/features/shop/model"
	userModel "afa_backend/internals/features/users/auth/model"
)

// PaymentBucket aggregates payments sharing one status.
type PaymentBucket struct {
	Status      string `json:"status"`
	Count       int64  `json:"count"`
	AmountCents int64  `json:"amount_cents"`
}

// Summary is the admin dashboard payload.
type Summary struct {
	InscriptionsTotal  int64 `json:"inscriptions_total"`
	InscriptionsActive int64 `json:"inscriptions_active"`
	InscriptionsBaja   int64 `json:"inscriptions_baja"`
	StudentsTotal      int64 `json:"students_total"`

	Payments           []PaymentBucket `json:"payments"`
	CollectedCents     int64           `json:"collected_cents"`
	OutstandingCents   int64           `json:"outstanding_cents"`
	OrdersPending      int64           `json:"orders_pending"`
	OrderRevenueCents  int64           `json:"order_revenue_cents"`
	MembersTotal       int64           `json:"members_total"`
	ActiveMembersTotal int64           `json:"active_members_total"`
}

// BuildSummary gathers the dashboard counters in one pass per table.
func BuildSummary(db *gorm.DB) (Summary, error) {
	var s Summary

	ins := db.Model(&inscriptionModel.InscriptionModel{})
	if err := ins.Count(&s.InscriptionsTotal).Error; err != nil {
		return s, err
	}
	if err := db.Model(&inscriptionModel.InscriptionModel{}).
		Where("inscription_status = ?", inscriptionModel.InscriptionStatusBaja).
		Count(&s.InscriptionsBaja).Error; err != nil {
		return s, err
	}
	s.InscriptionsActive = s.InscriptionsTotal - s.InscriptionsBaja

	if err := db.Model(&inscriptionModel.InscriptionStudentModel{}).
		Count(&s.StudentsTotal).Error; err != nil {
		return s, err
	}

	rows := []struct {
		Status string
		Count  int64
		Amount int64
	}{}
	if err := db.Model(&feeModel.PaymentModel{}).
		Select("payment_status AS status, COUNT(*) AS count, COALESCE(SUM(payment_amount_cents), 0) AS amount").
		Group("payment_status").
		Scan(&rows).Error; err != nil {
		return s, err
	}
	s.Payments = make([]PaymentBucket, 0, len(rows))
	for _, r := range rows {
		s.Payments = append(s.Payments, PaymentBucket{Status: r.Status, Count: r.Count, AmountCents: r.Amount})
		switch feeModel.PaymentStatus(r.Status) {
		case feeModel.PaymentStatusPaid:
			s.CollectedCents += r.Amount
		case feeModel.PaymentStatusPending, feeModel.PaymentStatusOverdue:
			s.OutstandingCents += r.Amount
		}
	}

	if err := db.Model(&shopModel.OrderModel{}).
		Where("order_status = ?", shopModel.OrderStatusPending).
		Count(&s.OrdersPending).Error; err != nil {
		return s, err
	}
	var revenue struct{ Total int64 }
	if err := db.Model(&shopModel.OrderModel{}).
		Select("COALESCE(SUM(order_total_cents), 0) AS total").
		Where("order_status IN ?", []shopModel.OrderStatus{shopModel.OrderStatusPaid, shopModel.OrderStatusDelivered}).
		Scan(&revenue).Error; err != nil {
		return s, err
	}
	s.OrderRevenueCents = revenue.Total

	if err := db.Model(&userModel.UserModel{}).Count(&s.MembersTotal).Error; err != nil {
		return s, err
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("user_is_active = ?", true).
		Count(&s.ActiveMembersTotal).Error; err != nil {
		return s, err
	}

	return s, nil
}
