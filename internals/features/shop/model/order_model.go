package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is one purchased line, snapshotted at order time so later price
// or name edits do not rewrite history.
type OrderItem struct {
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	Size       string    `json:"size,omitempty"`
	Quantity   int       `json:"quantity"`
	PriceCents int       `json:"price_cents"`
}

// --- MODEL orders ------------------------------------------------------------
type OrderModel struct {
	OrderID uuid.UUID `json:"order_id" gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey"`

	OrderContactName  string `json:"order_contact_name" gorm:"column:order_contact_name;type:varchar(150);not null"`
	OrderContactEmail string `json:"order_contact_email" gorm:"column:order_contact_email;type:varchar(150);not null;index:idx_orders_contact_email"`
	OrderContactPhone string `json:"order_contact_phone" gorm:"column:order_contact_phone;type:varchar(30)"`

	OrderItems      datatypes.JSON `json:"order_items" gorm:"column:order_items;type:jsonb;not null"`
	OrderTotalCents int            `json:"order_total_cents" gorm:"column:order_total_cents;type:int;not null"`
	OrderStatus     OrderStatus    `json:"order_status" gorm:"column:order_status;type:varchar(20);not null;default:'pending';index:idx_orders_status"`
	OrderNotes      string         `json:"order_notes" gorm:"column:order_notes;type:text"`

	// gateway transaction reference, set when checkout starts
	OrderExternalID *string `json:"order_external_id,omitempty" gorm:"column:order_external_id;type:varchar(64);uniqueIndex:uq_orders_external_id"`

	OrderCreatedAt time.Time      `json:"order_created_at" gorm:"column:order_created_at;type:timestamptz;not null;autoCreateTime"`
	OrderUpdatedAt time.Time      `json:"order_updated_at" gorm:"column:order_updated_at;type:timestamptz;not null;autoUpdateTime"`
	OrderDeletedAt gorm.DeletedAt `json:"order_deleted_at,omitempty" gorm:"column:order_deleted_at;type:timestamptz;index"`
}

func (OrderModel) TableName() string { return "orders" }
