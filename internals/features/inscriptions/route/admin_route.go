package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/inscriptions/controller"
)

func InscriptionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInscriptionController(db)
	exportCtrl := controller.NewExportController(db)

	ins := api.Group("/inscriptions")
	ins.Get("/", ctrl.GetAllInscriptions)          // 📄 flattened + filtered rows
	ins.Get("/export/xlsx", exportCtrl.ExportXLSX) // 📊 spreadsheet download
	ins.Get("/export/pdf", exportCtrl.ExportPDF)   // 📑 PDF download
	ins.Get("/:id", ctrl.GetInscriptionByID)
	ins.Put("/:id", ctrl.UpdateInscription)
	ins.Patch("/:id/status", ctrl.UpdateInscriptionStatus)
	ins.Patch("/:id/students/:student_id/suspend", ctrl.SuspendStudent)
	ins.Delete("/:id", ctrl.DeleteInscription) // 🗑️ permanent removal
}
