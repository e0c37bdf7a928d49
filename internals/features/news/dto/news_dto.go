package dto

import (
	"time"

	"github.com/google/uuid"

	"afa_backend/internals/features/news/model"
	helper "afa_backend/internals/helpers"
)

// ============================
// Requests
// ============================

type CreateNewsRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	TitleCa string `json:"title_ca" validate:"omitempty,max=200"`
	TitleEs string `json:"title_es" validate:"omitempty,max=200"`
	TitleEn string `json:"title_en" validate:"omitempty,max=200"`

	Body   string `json:"body" validate:"omitempty,max=50000"`
	BodyCa string `json:"body_ca" validate:"omitempty,max=50000"`
	BodyEs string `json:"body_es" validate:"omitempty,max=50000"`
	BodyEn string `json:"body_en" validate:"omitempty,max=50000"`

	Published bool `json:"published"`
}

type UpdateNewsRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=200"`
	TitleCa *string `json:"title_ca,omitempty" validate:"omitempty,max=200"`
	TitleEs *string `json:"title_es,omitempty" validate:"omitempty,max=200"`
	TitleEn *string `json:"title_en,omitempty" validate:"omitempty,max=200"`

	Body   *string `json:"body,omitempty" validate:"omitempty,max=50000"`
	BodyCa *string `json:"body_ca,omitempty" validate:"omitempty,max=50000"`
	BodyEs *string `json:"body_es,omitempty" validate:"omitempty,max=50000"`
	BodyEn *string `json:"body_en,omitempty" validate:"omitempty,max=50000"`

	Published *bool `json:"published,omitempty"`
}

// ============================
// Responses
// ============================

// NewsPublicDTO carries content already resolved to one language.
type NewsPublicDTO struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	CoverURL    *string    `json:"cover_url,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type NewsAdminDTO struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`

	Title   string `json:"title"`
	TitleCa string `json:"title_ca"`
	TitleEs string `json:"title_es"`
	TitleEn string `json:"title_en"`

	Body   string `json:"body"`
	BodyCa string `json:"body_ca"`
	BodyEs string `json:"body_es"`
	BodyEn string `json:"body_en"`

	CoverURL    *string    `json:"cover_url,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToNewsPublicDTO(m model.NewsModel, lang string) NewsPublicDTO {
	fields := m.ContentFields()
	return NewsPublicDTO{
		ID:          m.NewsID,
		Slug:        m.NewsSlug,
		Title:       helper.ResolveContent(fields, "title", lang),
		Body:        helper.ResolveContent(fields, "body", lang),
		CoverURL:    m.NewsCoverURL,
		PublishedAt: m.NewsPublishedAt,
	}
}

func ToNewsAdminDTO(m model.NewsModel) NewsAdminDTO {
	return NewsAdminDTO{
		ID:          m.NewsID,
		Slug:        m.NewsSlug,
		Title:       m.NewsTitle,
		TitleCa:     m.NewsTitleCa,
		TitleEs:     m.NewsTitleEs,
		TitleEn:     m.NewsTitleEn,
		Body:        m.NewsBody,
		BodyCa:      m.NewsBodyCa,
		BodyEs:      m.NewsBodyEs,
		BodyEn:      m.NewsBodyEn,
		CoverURL:    m.NewsCoverURL,
		Published:   m.NewsPublished,
		PublishedAt: m.NewsPublishedAt,
		CreatedAt:   m.NewsCreatedAt,
		UpdatedAt:   m.NewsUpdatedAt,
	}
}
