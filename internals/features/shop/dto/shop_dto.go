package dto

import (
	"time"

	"github.com/google/uuid"

	"afa_backend/internals/features/shop/model"
	helper "afa_backend/internals/helpers"
)

// ============================
// Product requests
// ============================

type CreateProductRequest struct {
	Name   string `json:"name" validate:"required,max=150"`
	NameCa string `json:"name_ca" validate:"omitempty,max=150"`
	NameEs string `json:"name_es" validate:"omitempty,max=150"`
	NameEn string `json:"name_en" validate:"omitempty,max=150"`

	Description   string `json:"description" validate:"omitempty,max=5000"`
	DescriptionCa string `json:"description_ca" validate:"omitempty,max=5000"`
	DescriptionEs string `json:"description_es" validate:"omitempty,max=5000"`
	DescriptionEn string `json:"description_en" validate:"omitempty,max=5000"`

	PriceCents int      `json:"price_cents" validate:"min=0"`
	Stock      int      `json:"stock" validate:"min=0"`
	Sizes      []string `json:"sizes" validate:"omitempty,dive,max=10"`
	Active     *bool    `json:"active,omitempty"`
}

type UpdateProductRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=150"`
	NameCa *string `json:"name_ca,omitempty" validate:"omitempty,max=150"`
	NameEs *string `json:"name_es,omitempty" validate:"omitempty,max=150"`
	NameEn *string `json:"name_en,omitempty" validate:"omitempty,max=150"`

	Description   *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	DescriptionCa *string `json:"description_ca,omitempty" validate:"omitempty,max=5000"`
	DescriptionEs *string `json:"description_es,omitempty" validate:"omitempty,max=5000"`
	DescriptionEn *string `json:"description_en,omitempty" validate:"omitempty,max=5000"`

	PriceCents *int     `json:"price_cents,omitempty" validate:"omitempty,min=0"`
	Stock      *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	Sizes      []string `json:"sizes,omitempty" validate:"omitempty,dive,max=10"`
	Active     *bool    `json:"active,omitempty"`
}

// ============================
// Order requests
// ============================

type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      string    `json:"size" validate:"omitempty,max=10"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=50"`
}

type PlaceOrderRequest struct {
	ContactName  string           `json:"contact_name" validate:"required,max=150"`
	ContactEmail string           `json:"contact_email" validate:"required,email,max=150"`
	ContactPhone string           `json:"contact_phone" validate:"omitempty,max=30"`
	Notes        string           `json:"notes" validate:"omitempty,max=2000"`
	Items        []OrderItemInput `json:"items" validate:"required,min=1,max=50,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid delivered cancelled"`
}

type CheckoutResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type GatewayNotificationDTO struct {
	OrderID           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
}

// ============================
// Responses
// ============================

type ProductPublicDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int       `json:"price_cents"`
	Stock       int       `json:"stock"`
	Sizes       []string  `json:"sizes"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

type ProductAdminDTO struct {
	ID uuid.UUID `json:"id"`

	Name   string `json:"name"`
	NameCa string `json:"name_ca"`
	NameEs string `json:"name_es"`
	NameEn string `json:"name_en"`

	Description   string `json:"description"`
	DescriptionCa string `json:"description_ca"`
	DescriptionEs string `json:"description_es"`
	DescriptionEn string `json:"description_en"`

	PriceCents int       `json:"price_cents"`
	Stock      int       `json:"stock"`
	Sizes      []string  `json:"sizes"`
	Active     bool      `json:"active"`
	ImageURL   *string   `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type OrderDTO struct {
	ID           uuid.UUID         `json:"id"`
	ContactName  string            `json:"contact_name"`
	ContactEmail string            `json:"contact_email"`
	ContactPhone string            `json:"contact_phone"`
	Items        []model.OrderItem `json:"items"`
	TotalCents   int               `json:"total_cents"`
	Status       string            `json:"status"`
	Notes        string            `json:"notes"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func ToProductPublicDTO(m model.ProductModel, lang string) ProductPublicDTO {
	fields := m.ContentFields()
	return ProductPublicDTO{
		ID:          m.ProductID,
		Name:        helper.ResolveContent(fields, "name", lang),
		Description: helper.ResolveContent(fields, "description", lang),
		PriceCents:  m.ProductPriceCents,
		Stock:       m.ProductStock,
		Sizes:       m.ProductSizes,
		ImageURL:    m.ProductImageURL,
	}
}

func ToProductAdminDTO(m model.ProductModel) ProductAdminDTO {
	return ProductAdminDTO{
		ID:            m.ProductID,
		Name:          m.ProductName,
		NameCa:        m.ProductNameCa,
		NameEs:        m.ProductNameEs,
		NameEn:        m.ProductNameEn,
		Description:   m.ProductDescription,
		DescriptionCa: m.ProductDescriptionCa,
		DescriptionEs: m.ProductDescriptionEs,
		DescriptionEn: m.ProductDescriptionEn,
		PriceCents:    m.ProductPriceCents,
		Stock:         m.ProductStock,
		Sizes:         m.ProductSizes,
		Active:        m.ProductActive,
		ImageURL:      m.ProductImageURL,
		CreatedAt:     m.ProductCreatedAt,
		UpdatedAt:     m.ProductUpdatedAt,
	}
}

func ToOrderDTO(m model.OrderModel, items []model.OrderItem) OrderDTO {
	return OrderDTO{
		ID:           m.OrderID,
		ContactName:  m.OrderContactName,
		ContactEmail: m.OrderContactEmail,
		ContactPhone: m.OrderContactPhone,
		Items:        items,
		TotalCents:   m.OrderTotalCents,
		Status:       string(m.OrderStatus),
		Notes:        m.OrderNotes,
		CreatedAt:    m.OrderCreatedAt,
		UpdatedAt:    m.OrderUpdatedAt,
	}
}
