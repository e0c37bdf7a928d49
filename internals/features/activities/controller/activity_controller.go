package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"afa_backend/internals/configs"
	"afa_backend/internals/features/activities/dto"
	"afa_backend/internals/features/activities/model"
	helper "afa_backend/internals/helpers"
)

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

var validateActivities = validator.New()

// =============================
// 🌍 Public
// =============================

// GetPublicActivities lists active activities with content resolved to ?lang.
func (ctrl *ActivityController) GetPublicActivities(c *fiber.Ctx) error {
	lang := helper.NormalizeLang(c.Query("lang"))

	var activities []model.ActivityModel
	if err := ctrl.DB.
		Where("activity_active = ?", true).
		Order("activity_name ASC").
		Find(&activities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}

	out := make([]dto.ActivityPublicDTO, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ToActivityPublicDTO(a, lang))
	}
	return helper.Success(c, "Activities fetched successfully", out)
}

// GetPublicActivityByID returns one active activity resolved to ?lang.
func (ctrl *ActivityController) GetPublicActivityByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activity ID")
	}
	lang := helper.NormalizeLang(c.Query("lang"))

	var activity model.ActivityModel
	if err := ctrl.DB.
		Where("activity_id = ? AND activity_active = ?", id, true).
		First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Activity not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	return helper.Success(c, "Activity fetched successfully", dto.ToActivityPublicDTO(activity, lang))
}

// =============================
// 🔐 Admin
// =============================

func (ctrl *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	var activities []model.ActivityModel
	if err := ctrl.DB.Order("activity_name ASC").Find(&activities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}

	out := make([]dto.ActivityAdminDTO, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ToActivityAdminDTO(a))
	}
	return helper.Success(c, "Activities fetched successfully", out)
}

func (ctrl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	var body dto.CreateActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateActivities.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	activity := model.ActivityModel{
		ActivityName:          body.Name,
		ActivityNameCa:        body.NameCa,
		ActivityNameEs:        body.NameEs,
		ActivityNameEn:        body.NameEn,
		ActivityDescription:   body.Description,
		ActivityDescriptionCa: body.DescriptionCa,
		ActivityDescriptionEs: body.DescriptionEs,
		ActivityDescriptionEn: body.DescriptionEn,
		ActivityScheduleText:  body.ScheduleText,
		ActivityCourses:       body.Courses,
		ActivityPriceCents:    body.PriceCents,
		ActivityActive:        true,
	}
	if body.Active != nil {
		activity.ActivityActive = *body.Active
	}

	if err := ctrl.DB.Create(&activity).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create activity")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Activity created successfully", dto.ToActivityAdminDTO(activity))
}

func (ctrl *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activity ID")
	}

	var body dto.UpdateActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateActivities.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var activity model.ActivityModel
	if err := ctrl.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Activity not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	if body.Name != nil {
		activity.ActivityName = *body.Name
	}
	if body.NameCa != nil {
		activity.ActivityNameCa = *body.NameCa
	}
	if body.NameEs != nil {
		activity.ActivityNameEs = *body.NameEs
	}
	if body.NameEn != nil {
		activity.ActivityNameEn = *body.NameEn
	}
	if body.Description != nil {
		activity.ActivityDescription = *body.Description
	}
	if body.DescriptionCa != nil {
		activity.ActivityDescriptionCa = *body.DescriptionCa
	}
	if body.DescriptionEs != nil {
		activity.ActivityDescriptionEs = *body.DescriptionEs
	}
	if body.DescriptionEn != nil {
		activity.ActivityDescriptionEn = *body.DescriptionEn
	}
	if body.ScheduleText != nil {
		activity.ActivityScheduleText = *body.ScheduleText
	}
	if body.Courses != nil {
		activity.ActivityCourses = body.Courses
	}
	if body.PriceCents != nil {
		activity.ActivityPriceCents = *body.PriceCents
	}
	if body.Active != nil {
		activity.ActivityActive = *body.Active
	}

	if err := ctrl.DB.Save(&activity).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update activity")
	}

	return helper.Success(c, "Activity updated successfully", dto.ToActivityAdminDTO(activity))
}

// UploadActivityImage stores the file as webp and replaces the previous one.
func (ctrl *ActivityController) UploadActivityImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activity ID")
	}

	var activity model.ActivityModel
	if err := ctrl.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Activity not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Image file is required")
	}

	publicPath, err := helper.SaveImageAsWebP(configs.UploadDir, "activities", fileHeader)
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Failed to process image")
	}

	old := activity.ActivityImageURL
	activity.ActivityImageURL = &publicPath
	if err := ctrl.DB.Save(&activity).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update activity")
	}
	if old != nil {
		_ = helper.DeleteUpload(configs.UploadDir, *old)
	}

	return helper.Success(c, "Activity image updated successfully", dto.ToActivityAdminDTO(activity))
}

func (ctrl *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activity ID")
	}

	res := ctrl.DB.Where("activity_id = ?", id).Delete(&model.ActivityModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Activity not found")
	}

	return helper.Success(c, "Activity deleted successfully", nil)
}
