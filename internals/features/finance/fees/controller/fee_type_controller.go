package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/finance/fees/dto"
	"afa_backend/internals/features/finance/fees/model"
	helper "afa_backend/internals/helpers"
)

var validateFees = validator.New()

type FeeTypeController struct {
	DB *gorm.DB
}

func NewFeeTypeController(db *gorm.DB) *FeeTypeController {
	return &FeeTypeController{DB: db}
}

// =============================
// ➕ Create Fee Type
// =============================
func (ctrl *FeeTypeController) CreateFeeType(c *fiber.Ctx) error {
	var body dto.FeeTypeCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFees.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ft := model.FeeTypeModel{
		FeeTypeName:        body.Name,
		FeeTypeDescription: body.Description,
		FeeTypeAmountCents: body.AmountCents,
		FeeTypePeriod:      model.FeePeriod(body.Period),
		FeeTypeActive:      true,
	}
	if body.Active != nil {
		ft.FeeTypeActive = *body.Active
	}

	if err := ctrl.DB.Create(&ft).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee type")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fee type created", dto.ToFeeTypeResponse(ft))
}

// =============================
// 📄 Get All Fee Types
// =============================
func (ctrl *FeeTypeController) GetAllFeeTypes(c *fiber.Ctx) error {
	q := ctrl.DB.Order("fee_type_created_at ASC")
	if c.QueryBool("active_only", false) {
		q = q.Where("fee_type_active = true")
	}

	var types []model.FeeTypeModel
	if err := q.Find(&types).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve fee types")
	}

	out := make([]dto.FeeTypeResponse, 0, len(types))
	for _, ft := range types {
		out = append(out, dto.ToFeeTypeResponse(ft))
	}
	return helper.Success(c, "OK", out)
}

// =============================
// 🔄 Update Fee Type
// =============================
func (ctrl *FeeTypeController) UpdateFeeType(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.FeeTypeUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFees.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ft model.FeeTypeModel
	if err := ctrl.DB.First(&ft, "fee_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee type not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve fee type")
	}

	if body.Name != nil {
		ft.FeeTypeName = *body.Name
	}
	if body.Description != nil {
		ft.FeeTypeDescription = body.Description
	}
	if body.AmountCents != nil {
		ft.FeeTypeAmountCents = *body.AmountCents
	}
	if body.Period != nil {
		ft.FeeTypePeriod = model.FeePeriod(*body.Period)
	}
	if body.Active != nil {
		ft.FeeTypeActive = *body.Active
	}

	if err := ctrl.DB.Save(&ft).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee type")
	}

	return helper.Success(c, "Fee type updated", dto.ToFeeTypeResponse(ft))
}

// =============================
// 🗑️ Delete Fee Type (soft)
// =============================
func (ctrl *FeeTypeController) DeleteFeeType(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.FeeTypeModel{}, "fee_type_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee type")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
