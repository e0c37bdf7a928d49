package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventCategory groups calendar entries for front-end filtering.
type EventCategory string

const (
	EventCategoryGeneral  EventCategory = "general"
	EventCategoryMeeting  EventCategory = "meeting"
	EventCategoryActivity EventCategory = "activity"
	EventCategoryHoliday  EventCategory = "holiday"
)

// --- MODEL events ------------------------------------------------------------
type EventModel struct {
	EventID uuid.UUID `json:"event_id" gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey"`

	EventTitle   string `json:"event_title" gorm:"column:event_title;type:varchar(200);not null"`
	EventTitleCa string `json:"event_title_ca" gorm:"column:event_title_ca;type:varchar(200)"`
	EventTitleEs string `json:"event_title_es" gorm:"column:event_title_es;type:varchar(200)"`
	EventTitleEn string `json:"event_title_en" gorm:"column:event_title_en;type:varchar(200)"`

	EventDescription   string `json:"event_description" gorm:"column:event_description;type:text"`
	EventDescriptionCa string `json:"event_description_ca" gorm:"column:event_description_ca;type:text"`
	EventDescriptionEs string `json:"event_description_es" gorm:"column:event_description_es;type:text"`
	EventDescriptionEn string `json:"event_description_en" gorm:"column:event_description_en;type:text"`

	EventLocation string        `json:"event_location" gorm:"column:event_location;type:varchar(200)"`
	EventCategory EventCategory `json:"event_category" gorm:"column:event_category;type:varchar(20);not null;default:'general';index:idx_events_category"`

	EventStartsAt time.Time  `json:"event_starts_at" gorm:"column:event_starts_at;type:timestamptz;not null;index:idx_events_starts_at"`
	EventEndsAt   *time.Time `json:"event_ends_at,omitempty" gorm:"column:event_ends_at;type:timestamptz"`

	EventCreatedAt time.Time      `json:"event_created_at" gorm:"column:event_created_at;type:timestamptz;not null;autoCreateTime"`
	EventUpdatedAt time.Time      `json:"event_updated_at" gorm:"column:event_updated_at;type:timestamptz;not null;autoUpdateTime"`
	EventDeletedAt gorm.DeletedAt `json:"event_deleted_at,omitempty" gorm:"column:event_deleted_at;type:timestamptz;index"`
}

func (EventModel) TableName() string { return "events" }

// ContentFields exposes the localized columns for the fallback resolver.
func (m EventModel) ContentFields() map[string]string {
	return map[string]string{
		"title":          m.EventTitle,
		"title_ca":       m.EventTitleCa,
		"title_es":       m.EventTitleEs,
		"title_en":       m.EventTitleEn,
		"description":    m.EventDescription,
		"description_ca": m.EventDescriptionCa,
		"description_es": m.EventDescriptionEs,
		"description_en": m.EventDescriptionEn,
	}
}
