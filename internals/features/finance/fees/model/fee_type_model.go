package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM fee_period ---------------------------------------------------------
type FeePeriod string

const (
	FeePeriodAnnual  FeePeriod = "annual"
	FeePeriodTerm    FeePeriod = "term"
	FeePeriodMonthly FeePeriod = "monthly"
	FeePeriodOneOff  FeePeriod = "one_off"
)

// --- MODEL fee_types ---------------------------------------------------------
type FeeTypeModel struct {
	FeeTypeID uuid.UUID `json:"fee_type_id" gorm:"column:fee_type_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FeeTypeName        string    `json:"fee_type_name" gorm:"column:fee_type_name;type:varchar(120);not null"`
	FeeTypeDescription *string   `json:"fee_type_description,omitempty" gorm:"column:fee_type_description;type:text"`
	FeeTypeAmountCents int       `json:"fee_type_amount_cents" gorm:"column:fee_type_amount_cents;type:int;not null"`
	FeeTypePeriod      FeePeriod `json:"fee_type_period" gorm:"column:fee_type_period;type:varchar(10);not null;default:'annual'"`
	FeeTypeActive      bool      `json:"fee_type_active" gorm:"column:fee_type_active;type:boolean;not null;default:true"`

	FeeTypeCreatedAt time.Time      `json:"fee_type_created_at" gorm:"column:fee_type_created_at;type:timestamptz;not null;autoCreateTime"`
	FeeTypeUpdatedAt time.Time      `json:"fee_type_updated_at" gorm:"column:fee_type_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FeeTypeDeletedAt gorm.DeletedAt `json:"fee_type_deleted_at,omitempty" gorm:"column:fee_type_deleted_at;type:timestamptz;index"`
}

func (FeeTypeModel) TableName() string { return "fee_types" }
