package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// --- MODEL products ----------------------------------------------------------
// Merchandise sold by the association (shirts, smocks, books).
type ProductModel struct {
	ProductID uuid.UUID `json:"product_id" gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ProductName   string `json:"product_name" gorm:"column:product_name;type:varchar(150);not null"`
	ProductNameCa string `json:"product_name_ca" gorm:"column:product_name_ca;type:varchar(150)"`
	ProductNameEs string `json:"product_name_es" gorm:"column:product_name_es;type:varchar(150)"`
	ProductNameEn string `json:"product_name_en" gorm:"column:product_name_en;type:varchar(150)"`

	ProductDescription   string `json:"product_description" gorm:"column:product_description;type:text"`
	ProductDescriptionCa string `json:"product_description_ca" gorm:"column:product_description_ca;type:text"`
	ProductDescriptionEs string `json:"product_description_es" gorm:"column:product_description_es;type:text"`
	ProductDescriptionEn string `json:"product_description_en" gorm:"column:product_description_en;type:text"`

	ProductPriceCents int            `json:"product_price_cents" gorm:"column:product_price_cents;type:int;not null;default:0"`
	ProductStock      int            `json:"product_stock" gorm:"column:product_stock;type:int;not null;default:0"`
	ProductSizes      pq.StringArray `json:"product_sizes" gorm:"column:product_sizes;type:text[]"`
	ProductActive     bool           `json:"product_active" gorm:"column:product_active;type:boolean;not null;default:true;index:idx_products_active"`
	ProductImageURL   *string        `json:"product_image_url,omitempty" gorm:"column:product_image_url;type:text"`

	ProductCreatedAt time.Time      `json:"product_created_at" gorm:"column:product_created_at;type:timestamptz;not null;autoCreateTime"`
	ProductUpdatedAt time.Time      `json:"product_updated_at" gorm:"column:product_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ProductDeletedAt gorm.DeletedAt `json:"product_deleted_at,omitempty" gorm:"column:product_deleted_at;type:timestamptz;index"`
}

func (ProductModel) TableName() string { return "products" }

// ContentFields exposes the localized columns for the fallback resolver.
func (m ProductModel) ContentFields() map[string]string {
	return map[string]string{
		"name":           m.ProductName,
		"name_ca":        m.ProductNameCa,
		"name_es":        m.ProductNameEs,
		"name_en":        m.ProductNameEn,
		"description":    m.ProductDescription,
		"description_ca": m.ProductDescriptionCa,
		"description_es": m.ProductDescriptionEs,
		"description_en": m.ProductDescriptionEn,
	}
}
