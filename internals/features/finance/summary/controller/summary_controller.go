package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/finance/summary/service"
	helper "afa_backend/internals/helpers"
)

type SummaryController struct {
	DB *gorm.DB
}

func NewSummaryController(db *gorm.DB) *SummaryController {
	return &SummaryController{DB: db}
}

// GetSummary returns the admin dashboard counters.
func (ctrl *SummaryController) GetSummary(c *fiber.Ctx) error {
	summary, err := service.BuildSummary(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build summary")
	}
	return helper.Success(c, "Summary fetched successfully", summary)
}
