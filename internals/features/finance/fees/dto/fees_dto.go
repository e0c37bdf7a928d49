package dto

import (
	"time"

	"github.com/google/uuid"

	"afa_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE TYPES
////////////////////////////////////////////////////////////////////////////////

type FeeTypeCreateDTO struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	AmountCents int     `json:"amount_cents" validate:"required,min=0"`
	Period      string  `json:"period" validate:"required,oneof=annual term monthly one_off"`
	Active      *bool   `json:"active,omitempty"`
}

type FeeTypeUpdateDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	AmountCents *int    `json:"amount_cents,omitempty" validate:"omitempty,min=0"`
	Period      *string `json:"period,omitempty" validate:"omitempty,oneof=annual term monthly one_off"`
	Active      *bool   `json:"active,omitempty"`
}

type FeeTypeResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	AmountCents int             `json:"amount_cents"`
	Period      model.FeePeriod `json:"period"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ToFeeTypeResponse(m model.FeeTypeModel) FeeTypeResponse {
	return FeeTypeResponse{
		ID:          m.FeeTypeID,
		Name:        m.FeeTypeName,
		Description: m.FeeTypeDescription,
		AmountCents: m.FeeTypeAmountCents,
		Period:      m.FeeTypePeriod,
		Active:      m.FeeTypeActive,
		CreatedAt:   m.FeeTypeCreatedAt,
	}
}

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS
////////////////////////////////////////////////////////////////////////////////

type PaymentCreateDTO struct {
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	StudentName   string     `json:"student_name" validate:"required,max=200"`
	Course        string     `json:"course" validate:"omitempty,oneof=I3 I4 I5 1r 2n 3r 4t 5è 6è"`
	Activities    []string   `json:"activities,omitempty" validate:"omitempty,dive,max=120"`
	FeeTypeID     *uuid.UUID `json:"fee_type_id,omitempty"`
	AmountCents   int        `json:"amount_cents" validate:"required,min=1"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	BankReference *string    `json:"bank_reference,omitempty" validate:"omitempty,max=60"`
	Notes         *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type PaymentUpdateDTO struct {
	StudentName   *string    `json:"student_name,omitempty" validate:"omitempty,max=200"`
	Course        *string    `json:"course,omitempty" validate:"omitempty,oneof=I3 I4 I5 1r 2n 3r 4t 5è 6è"`
	Activities    []string   `json:"activities,omitempty" validate:"omitempty,dive,max=120"`
	FeeTypeID     *uuid.UUID `json:"fee_type_id,omitempty"`
	AmountCents   *int       `json:"amount_cents,omitempty" validate:"omitempty,min=1"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=pending paid overdue cancelled"`
	BankReference *string    `json:"bank_reference,omitempty" validate:"omitempty,max=60"`
	Notes         *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type MarkPaidDTO struct {
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	BankReference *string    `json:"bank_reference,omitempty" validate:"omitempty,max=60"`
}

type PaymentResponse struct {
	ID            uuid.UUID           `json:"id"`
	UserID        *uuid.UUID          `json:"user_id,omitempty"`
	StudentName   string              `json:"student_name"`
	Course        string              `json:"course"`
	Activities    []string            `json:"activities"`
	FeeTypeID     *uuid.UUID          `json:"fee_type_id,omitempty"`
	FeeType       *FeeTypeResponse    `json:"fee_type,omitempty"`
	AmountCents   int                 `json:"amount_cents"`
	DueDate       *time.Time          `json:"due_date,omitempty"`
	Status        model.PaymentStatus `json:"status"`
	StatusLabel   string              `json:"status_label"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	BankReference *string             `json:"bank_reference,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	out := PaymentResponse{
		ID:            m.PaymentID,
		UserID:        m.PaymentUserID,
		StudentName:   m.PaymentStudentName,
		Course:        m.PaymentCourse,
		Activities:    m.PaymentActivities,
		FeeTypeID:     m.PaymentFeeTypeID,
		AmountCents:   m.PaymentAmountCents,
		DueDate:       m.PaymentDueDate,
		Status:        m.PaymentStatus,
		StatusLabel:   model.PaymentStatusLabels[m.PaymentStatus],
		PaidAt:        m.PaymentPaidAt,
		BankReference: m.PaymentBankReference,
		Notes:         m.PaymentNotes,
		CreatedAt:     m.PaymentCreatedAt,
	}
	if m.FeeType != nil {
		ft := ToFeeTypeResponse(*m.FeeType)
		out.FeeType = &ft
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////
// CHECKOUT / GATEWAY
////////////////////////////////////////////////////////////////////////////////

type CheckoutResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type GatewayNotificationDTO struct {
	OrderID           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
}
