package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// --- MODEL activities --------------------------------------------------------
// Catalog entry for an extracurricular activity. Content fields exist per
// language plus the unsuffixed legacy column from before i18n.
type ActivityModel struct {
	ActivityID uuid.UUID `json:"activity_id" gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Legacy + localized names
	ActivityName   string `json:"activity_name" gorm:"column:activity_name;type:varchar(120);not null"`
	ActivityNameCa string `json:"activity_name_ca" gorm:"column:activity_name_ca;type:varchar(120)"`
	ActivityNameEs string `json:"activity_name_es" gorm:"column:activity_name_es;type:varchar(120)"`
	ActivityNameEn string `json:"activity_name_en" gorm:"column:activity_name_en;type:varchar(120)"`

	ActivityDescription   string `json:"activity_description" gorm:"column:activity_description;type:text"`
	ActivityDescriptionCa string `json:"activity_description_ca" gorm:"column:activity_description_ca;type:text"`
	ActivityDescriptionEs string `json:"activity_description_es" gorm:"column:activity_description_es;type:text"`
	ActivityDescriptionEn string `json:"activity_description_en" gorm:"column:activity_description_en;type:text"`

	ActivityScheduleText string         `json:"activity_schedule_text" gorm:"column:activity_schedule_text;type:varchar(200)"`
	ActivityCourses      pq.StringArray `json:"activity_courses" gorm:"column:activity_courses;type:text[]"`
	ActivityPriceCents   int            `json:"activity_price_cents" gorm:"column:activity_price_cents;type:int;not null;default:0"`
	ActivityActive       bool           `json:"activity_active" gorm:"column:activity_active;type:boolean;not null;default:true;index:idx_activities_active"`
	ActivityImageURL     *string        `json:"activity_image_url,omitempty" gorm:"column:activity_image_url;type:text"`

	ActivityCreatedAt time.Time      `json:"activity_created_at" gorm:"column:activity_created_at;type:timestamptz;not null;autoCreateTime"`
	ActivityUpdatedAt time.Time      `json:"activity_updated_at" gorm:"column:activity_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ActivityDeletedAt gorm.DeletedAt `json:"activity_deleted_at,omitempty" gorm:"column:activity_deleted_at;type:timestamptz;index"`
}

func (ActivityModel) TableName() string { return "activities" }

// ContentFields exposes the localized columns for the fallback resolver.
func (m ActivityModel) ContentFields() map[string]string {
	return map[string]string{
		"name":           m.ActivityName,
		"name_ca":        m.ActivityNameCa,
		"name_es":        m.ActivityNameEs,
		"name_en":        m.ActivityNameEn,
		"description":    m.ActivityDescription,
		"description_ca": m.ActivityDescriptionCa,
		"description_es": m.ActivityDescriptionEs,
		"description_en": m.ActivityDescriptionEn,
	}
}
