package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// --- ENUM payment_status -----------------------------------------------------
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Catalan labels used by the CSV report and the dashboard.
var PaymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPending:   "Pendent",
	PaymentStatusPaid:      "Pagat",
	PaymentStatusOverdue:   "Vençut",
	PaymentStatusCancelled: "Anul·lat",
}

// --- MODEL payments ----------------------------------------------------------
type PaymentModel struct {
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Owner (nullable: payments can predate portal accounts)
	PaymentUserID *uuid.UUID `json:"payment_user_id,omitempty" gorm:"column:payment_user_id;type:uuid;index:idx_payments_user"`

	// Display fields denormalized at creation time
	PaymentStudentName string         `json:"payment_student_name" gorm:"column:payment_student_name;type:varchar(200);not null"`
	PaymentCourse      string         `json:"payment_course" gorm:"column:payment_course;type:varchar(5)"`
	PaymentActivities  pq.StringArray `json:"payment_activities" gorm:"column:payment_activities;type:text[]"`

	PaymentFeeTypeID *uuid.UUID    `json:"payment_fee_type_id,omitempty" gorm:"column:payment_fee_type_id;type:uuid;index:idx_payments_fee_type"`
	FeeType          *FeeTypeModel `json:"fee_type,omitempty" gorm:"foreignKey:PaymentFeeTypeID;references:FeeTypeID"`

	PaymentAmountCents int           `json:"payment_amount_cents" gorm:"column:payment_amount_cents;type:int;not null"`
	PaymentDueDate     *time.Time    `json:"payment_due_date,omitempty" gorm:"column:payment_due_date;type:date;index:idx_payments_due"`
	PaymentStatus      PaymentStatus `json:"payment_status" gorm:"column:payment_status;type:varchar(10);not null;default:'pending';index:idx_payments_status"`
	PaymentPaidAt      *time.Time    `json:"payment_paid_at,omitempty" gorm:"column:payment_paid_at;type:timestamptz"`

	PaymentBankReference *string `json:"payment_bank_reference,omitempty" gorm:"column:payment_bank_reference;type:varchar(60)"`
	PaymentNotes         *string `json:"payment_notes,omitempty" gorm:"column:payment_notes;type:text"`

	// Midtrans order id once a checkout was started
	PaymentExternalID *string `json:"payment_external_id,omitempty" gorm:"column:payment_external_id;type:varchar(64);uniqueIndex:uq_payments_external_id"`

	PaymentCreatedAt time.Time      `json:"payment_created_at" gorm:"column:payment_created_at;type:timestamptz;not null;autoCreateTime"`
	PaymentUpdatedAt time.Time      `json:"payment_updated_at" gorm:"column:payment_updated_at;type:timestamptz;not null;autoUpdateTime"`
	PaymentDeletedAt gorm.DeletedAt `json:"payment_deleted_at,omitempty" gorm:"column:payment_deleted_at;type:timestamptz;index"`
}

func (PaymentModel) TableName() string { return "payments" }
