package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/inscriptions/model"
	"afa_backend/internals/features/inscriptions/service"
	helper "afa_backend/internals/helpers"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// =============================
// 📊 Export XLSX (?mode=compact|full)
// =============================
func (ctrl *ExportController) ExportXLSX(c *fiber.Ctx) error {
	mode := service.ExportMode(c.Query("mode", string(service.ExportModeCompact)))
	if mode != service.ExportModeCompact && mode != service.ExportModeFull {
		return fiber.NewError(fiber.StatusBadRequest, "mode must be compact or full")
	}

	raw, err := ctrl.fetchAll(c)
	if err != nil {
		return err
	}

	// Compact sheets group per activity, the full dump keeps one row per
	// student with activities joined.
	rows := service.GetFlattenedData(raw, mode == service.ExportModeCompact)

	data, err := service.BuildWorkbook(rows, mode)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build workbook")
	}

	name := helper.AttachmentName("inscripcions", string(mode), "xlsx")
	return helper.SendDownload(c, name, xlsxContentType, data)
}

// =============================
// 📑 Export PDF (?mode=full|list)
// =============================
func (ctrl *ExportController) ExportPDF(c *fiber.Ctx) error {
	mode := service.ExportMode(c.Query("mode", string(service.ExportModeFull)))
	if mode != service.ExportModeFull && mode != service.ExportModeList {
		return fiber.NewError(fiber.StatusBadRequest, "mode must be full or list")
	}

	raw, err := ctrl.fetchAll(c)
	if err != nil {
		return err
	}

	rows := service.GetFlattenedData(raw, mode == service.ExportModeList)

	data, err := service.BuildPDF(rows, mode)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build PDF")
	}

	name := helper.AttachmentName("inscripcions", string(mode), "pdf")
	return helper.SendDownload(c, name, pdfContentType, data)
}

func (ctrl *ExportController) fetchAll(c *fiber.Ctx) ([]model.InscriptionModel, error) {
	params := helper.ParsePaginationWith(c, "created_at", "asc", helper.ExportOpts)

	var raw []model.InscriptionModel
	err := ctrl.DB.
		Preload("Students", func(db *gorm.DB) *gorm.DB {
			return db.Order("inscription_student_position ASC")
		}).
		Order("inscription_created_at ASC").
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&raw).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve inscriptions")
	}
	return raw, nil
}
