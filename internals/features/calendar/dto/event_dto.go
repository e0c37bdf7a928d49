package dto

import (
	"time"

	"github.com/google/uuid"

	"afa_backend/internals/features/calendar/model"
	helper "afa_backend/internals/helpers"
)

// ============================
// Requests
// ============================

type CreateEventRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	TitleCa string `json:"title_ca" validate:"omitempty,max=200"`
	TitleEs string `json:"title_es" validate:"omitempty,max=200"`
	TitleEn string `json:"title_en" validate:"omitempty,max=200"`

	Description   string `json:"description" validate:"omitempty,max=5000"`
	DescriptionCa string `json:"description_ca" validate:"omitempty,max=5000"`
	DescriptionEs string `json:"description_es" validate:"omitempty,max=5000"`
	DescriptionEn string `json:"description_en" validate:"omitempty,max=5000"`

	Location string     `json:"location" validate:"omitempty,max=200"`
	Category string     `json:"category" validate:"omitempty,oneof=general meeting activity holiday"`
	StartsAt time.Time  `json:"starts_at" validate:"required"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

type UpdateEventRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=200"`
	TitleCa *string `json:"title_ca,omitempty" validate:"omitempty,max=200"`
	TitleEs *string `json:"title_es,omitempty" validate:"omitempty,max=200"`
	TitleEn *string `json:"title_en,omitempty" validate:"omitempty,max=200"`

	Description   *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	DescriptionCa *string `json:"description_ca,omitempty" validate:"omitempty,max=5000"`
	DescriptionEs *string `json:"description_es,omitempty" validate:"omitempty,max=5000"`
	DescriptionEn *string `json:"description_en,omitempty" validate:"omitempty,max=5000"`

	Location *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	Category *string    `json:"category,omitempty" validate:"omitempty,oneof=general meeting activity holiday"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// ============================
// Responses
// ============================

type EventPublicDTO struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Category    string     `json:"category"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

type EventAdminDTO struct {
	ID uuid.UUID `json:"id"`

	Title   string `json:"title"`
	TitleCa string `json:"title_ca"`
	TitleEs string `json:"title_es"`
	TitleEn string `json:"title_en"`

	Description   string `json:"description"`
	DescriptionCa string `json:"description_ca"`
	DescriptionEs string `json:"description_es"`
	DescriptionEn string `json:"description_en"`

	Location  string     `json:"location"`
	Category  string     `json:"category"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToEventPublicDTO(m model.EventModel, lang string) EventPublicDTO {
	fields := m.ContentFields()
	return EventPublicDTO{
		ID:          m.EventID,
		Title:       helper.ResolveContent(fields, "title", lang),
		Description: helper.ResolveContent(fields, "description", lang),
		Location:    m.EventLocation,
		Category:    string(m.EventCategory),
		StartsAt:    m.EventStartsAt,
		EndsAt:      m.EventEndsAt,
	}
}

func ToEventAdminDTO(m model.EventModel) EventAdminDTO {
	return EventAdminDTO{
		ID:            m.EventID,
		Title:         m.EventTitle,
		TitleCa:       m.EventTitleCa,
		TitleEs:       m.EventTitleEs,
		TitleEn:       m.EventTitleEn,
		Description:   m.EventDescription,
		DescriptionCa: m.EventDescriptionCa,
		DescriptionEs: m.EventDescriptionEs,
		DescriptionEn: m.EventDescriptionEn,
		Location:      m.EventLocation,
		Category:      string(m.EventCategory),
		StartsAt:      m.EventStartsAt,
		EndsAt:        m.EventEndsAt,
		CreatedAt:     m.EventCreatedAt,
		UpdatedAt:     m.EventUpdatedAt,
	}
}
