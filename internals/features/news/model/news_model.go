package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL news --------------------------------------------------------------
type NewsModel struct {
	NewsID   uuid.UUID `json:"news_id" gorm:"column:news_id;type:uuid;default:gen_random_uuid();primaryKey"`
	NewsSlug string    `json:"news_slug" gorm:"column:news_slug;type:varchar(160);not null;uniqueIndex:uq_news_slug"`

	NewsTitle   string `json:"news_title" gorm:"column:news_title;type:varchar(200);not null"`
	NewsTitleCa string `json:"news_title_ca" gorm:"column:news_title_ca;type:varchar(200)"`
	NewsTitleEs string `json:"news_title_es" gorm:"column:news_title_es;type:varchar(200)"`
	NewsTitleEn string `json:"news_title_en" gorm:"column:news_title_en;type:varchar(200)"`

	NewsBody   string `json:"news_body" gorm:"column:news_body;type:text"`
	NewsBodyCa string `json:"news_body_ca" gorm:"column:news_body_ca;type:text"`
	NewsBodyEs string `json:"news_body_es" gorm:"column:news_body_es;type:text"`
	NewsBodyEn string `json:"news_body_en" gorm:"column:news_body_en;type:text"`

	NewsCoverURL    *string    `json:"news_cover_url,omitempty" gorm:"column:news_cover_url;type:text"`
	NewsPublished   bool       `json:"news_published" gorm:"column:news_published;type:boolean;not null;default:false;index:idx_news_published"`
	NewsPublishedAt *time.Time `json:"news_published_at,omitempty" gorm:"column:news_published_at;type:timestamptz"`

	NewsCreatedAt time.Time      `json:"news_created_at" gorm:"column:news_created_at;type:timestamptz;not null;autoCreateTime"`
	NewsUpdatedAt time.Time      `json:"news_updated_at" gorm:"column:news_updated_at;type:timestamptz;not null;autoUpdateTime"`
	NewsDeletedAt gorm.DeletedAt `json:"news_deleted_at,omitempty" gorm:"column:news_deleted_at;type:timestamptz;index"`
}

func (NewsModel) TableName() string { return "news" }

// ContentFields exposes the localized columns for the fallback resolver.
func (m NewsModel) ContentFields() map[string]string {
	return map[string]string{
		"title":    m.NewsTitle,
		"title_ca": m.NewsTitleCa,
		"title_es": m.NewsTitleEs,
		"title_en": m.NewsTitleEn,
		"body":     m.NewsBody,
		"body_ca":  m.NewsBodyCa,
		"body_es":  m.NewsBodyEs,
		"body_en":  m.NewsBodyEn,
	}
}
