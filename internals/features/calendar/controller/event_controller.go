package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"afa_backend/internals/features/calendar/dto"
	"afa_backend/internals/features/calendar/model"
	helper "afa_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

var validateEvents = validator.New()

// =============================
// 🌍 Public
// =============================

// GetUpcomingEvents lists events starting from now (or ?from / ?to bounds).
func (ctrl *EventController) GetUpcomingEvents(c *fiber.Ctx) error {
	lang := helper.NormalizeLang(c.Query("lang"))

	from := time.Now()
	if raw := c.Query("from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			from = t
		}
	}

	q := ctrl.DB.Where("event_starts_at >= ?", from)
	if raw := c.Query("to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			q = q.Where("event_starts_at < ?", t.AddDate(0, 0, 1))
		}
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("event_category = ?", cat)
	}

	var events []model.EventModel
	if err := q.Order("event_starts_at ASC").Limit(200).Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	out := make([]dto.EventPublicDTO, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToEventPublicDTO(e, lang))
	}
	return helper.Success(c, "Events fetched successfully", out)
}

// =============================
// 🔐 Admin
// =============================

func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.Order("event_starts_at DESC").Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	out := make([]dto.EventAdminDTO, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToEventAdminDTO(e))
	}
	return helper.Success(c, "Events fetched successfully", out)
}

func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvents.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.EndsAt != nil && body.EndsAt.Before(body.StartsAt) {
		return helper.Error(c, fiber.StatusBadRequest, "Event cannot end before it starts")
	}

	category := model.EventCategoryGeneral
	if body.Category != "" {
		category = model.EventCategory(body.Category)
	}

	event := model.EventModel{
		EventTitle:         body.Title,
		EventTitleCa:       body.TitleCa,
		EventTitleEs:       body.TitleEs,
		EventTitleEn:       body.TitleEn,
		EventDescription:   body.Description,
		EventDescriptionCa: body.DescriptionCa,
		EventDescriptionEs: body.DescriptionEs,
		EventDescriptionEn: body.DescriptionEn,
		EventLocation:      body.Location,
		EventCategory:      category,
		EventStartsAt:      body.StartsAt,
		EventEndsAt:        body.EndsAt,
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created successfully", dto.ToEventAdminDTO(event))
}

func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvents.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	if body.Title != nil {
		event.EventTitle = *body.Title
	}
	if body.TitleCa != nil {
		event.EventTitleCa = *body.TitleCa
	}
	if body.TitleEs != nil {
		event.EventTitleEs = *body.TitleEs
	}
	if body.TitleEn != nil {
		event.EventTitleEn = *body.TitleEn
	}
	if body.Description != nil {
		event.EventDescription = *body.Description
	}
	if body.DescriptionCa != nil {
		event.EventDescriptionCa = *body.DescriptionCa
	}
	if body.DescriptionEs != nil {
		event.EventDescriptionEs = *body.DescriptionEs
	}
	if body.DescriptionEn != nil {
		event.EventDescriptionEn = *body.DescriptionEn
	}
	if body.Location != nil {
		event.EventLocation = *body.Location
	}
	if body.Category != nil {
		event.EventCategory = model.EventCategory(*body.Category)
	}
	if body.StartsAt != nil {
		event.EventStartsAt = *body.StartsAt
	}
	if body.EndsAt != nil {
		event.EventEndsAt = body.EndsAt
	}
	if event.EventEndsAt != nil && event.EventEndsAt.Before(event.EventStartsAt) {
		return helper.Error(c, fiber.StatusBadRequest, "Event cannot end before it starts")
	}

	if err := ctrl.DB.Save(&event).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.Success(c, "Event updated successfully", dto.ToEventAdminDTO(event))
}

func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	res := ctrl.DB.Where("event_id = ?", id).Delete(&model.EventModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	return helper.Success(c, "Event deleted successfully", nil)
}
