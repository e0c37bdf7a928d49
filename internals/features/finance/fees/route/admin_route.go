package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/finance/fees/controller"
)

func FeesAdminRoutes(api fiber.Router, db *gorm.DB) {
	feeTypeCtrl := controller.NewFeeTypeController(db)
	paymentCtrl := controller.NewPaymentController(db)

	feeTypes := api.Group("/fee-types")
	feeTypes.Post("/", feeTypeCtrl.CreateFeeType)
	feeTypes.Get("/", feeTypeCtrl.GetAllFeeTypes)
	feeTypes.Put("/:id", feeTypeCtrl.UpdateFeeType)
	feeTypes.Delete("/:id", feeTypeCtrl.DeleteFeeType)

	payments := api.Group("/payments")
	payments.Post("/", paymentCtrl.CreatePayment)
	payments.Get("/", paymentCtrl.GetAllPayments)
	payments.Get("/export/csv", paymentCtrl.ExportCSV) // 📎 payment report
	payments.Put("/:id", paymentCtrl.UpdatePayment)
	payments.Patch("/:id/paid", paymentCtrl.MarkPaid)
	payments.Delete("/:id", paymentCtrl.DeletePayment)
}
