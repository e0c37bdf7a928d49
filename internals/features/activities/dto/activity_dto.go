package dto

import (
	"time"

	"github.com/google/uuid"

	"afa_backend/internals/features/activities/model"
	helper "afa_backend/internals/helpers"
)

// ============================
// Requests
// ============================

type CreateActivityRequest struct {
	Name   string `json:"name" validate:"required,max=120"`
	NameCa string `json:"name_ca" validate:"omitempty,max=120"`
	NameEs string `json:"name_es" validate:"omitempty,max=120"`
	NameEn string `json:"name_en" validate:"omitempty,max=120"`

	Description   string `json:"description" validate:"omitempty,max=5000"`
	DescriptionCa string `json:"description_ca" validate:"omitempty,max=5000"`
	DescriptionEs string `json:"description_es" validate:"omitempty,max=5000"`
	DescriptionEn string `json:"description_en" validate:"omitempty,max=5000"`

	ScheduleText string   `json:"schedule_text" validate:"omitempty,max=200"`
	Courses      []string `json:"courses" validate:"omitempty,dive,oneof=I3 I4 I5 1r 2n 3r 4t 5è 6è"`
	PriceCents   int      `json:"price_cents" validate:"min=0"`
	Active       *bool    `json:"active,omitempty"`
}

type UpdateActivityRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=120"`
	NameCa *string `json:"name_ca,omitempty" validate:"omitempty,max=120"`
	NameEs *string `json:"name_es,omitempty" validate:"omitempty,max=120"`
	NameEn *string `json:"name_en,omitempty" validate:"omitempty,max=120"`

	Description   *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	DescriptionCa *string `json:"description_ca,omitempty" validate:"omitempty,max=5000"`
	DescriptionEs *string `json:"description_es,omitempty" validate:"omitempty,max=5000"`
	DescriptionEn *string `json:"description_en,omitempty" validate:"omitempty,max=5000"`

	ScheduleText *string  `json:"schedule_text,omitempty" validate:"omitempty,max=200"`
	Courses      []string `json:"courses,omitempty" validate:"omitempty,dive,oneof=I3 I4 I5 1r 2n 3r 4t 5è 6è"`
	PriceCents   *int     `json:"price_cents,omitempty" validate:"omitempty,min=0"`
	Active       *bool    `json:"active,omitempty"`
}

// ============================
// Responses
// ============================

// ActivityPublicDTO carries content already resolved to one language.
type ActivityPublicDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ScheduleText string    `json:"schedule_text"`
	Courses      []string  `json:"courses"`
	PriceCents   int       `json:"price_cents"`
	ImageURL     *string   `json:"image_url,omitempty"`
}

// ActivityAdminDTO exposes every language column for editing.
type ActivityAdminDTO struct {
	ID uuid.UUID `json:"id"`

	Name   string `json:"name"`
	NameCa string `json:"name_ca"`
	NameEs string `json:"name_es"`
	NameEn string `json:"name_en"`

	Description   string `json:"description"`
	DescriptionCa string `json:"description_ca"`
	DescriptionEs string `json:"description_es"`
	DescriptionEn string `json:"description_en"`

	ScheduleText string    `json:"schedule_text"`
	Courses      []string  `json:"courses"`
	PriceCents   int       `json:"price_cents"`
	Active       bool      `json:"active"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToActivityPublicDTO(m model.ActivityModel, lang string) ActivityPublicDTO {
	fields := m.ContentFields()
	return ActivityPublicDTO{
		ID:           m.ActivityID,
		Name:         helper.ResolveContent(fields, "name", lang),
		Description:  helper.ResolveContent(fields, "description", lang),
		ScheduleText: m.ActivityScheduleText,
		Courses:      m.ActivityCourses,
		PriceCents:   m.ActivityPriceCents,
		ImageURL:     m.ActivityImageURL,
	}
}

func ToActivityAdminDTO(m model.ActivityModel) ActivityAdminDTO {
	return ActivityAdminDTO{
		ID:            m.ActivityID,
		Name:          m.ActivityName,
		NameCa:        m.ActivityNameCa,
		NameEs:        m.ActivityNameEs,
		NameEn:        m.ActivityNameEn,
		Description:   m.ActivityDescription,
		DescriptionCa: m.ActivityDescriptionCa,
		DescriptionEs: m.ActivityDescriptionEs,
		DescriptionEn: m.ActivityDescriptionEn,
		ScheduleText:  m.ActivityScheduleText,
		Courses:       m.ActivityCourses,
		PriceCents:    m.ActivityPriceCents,
		Active:        m.ActivityActive,
		ImageURL:      m.ActivityImageURL,
		CreatedAt:     m.ActivityCreatedAt,
		UpdatedAt:     m.ActivityUpdatedAt,
	}
}
