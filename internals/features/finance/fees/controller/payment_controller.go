package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/finance/fees/dto"
	"afa_backend/internals/features/finance/fees/model"
	"afa_backend/internals/features/finance/fees/service"
	userModel "afa_backend/internals/features/users/auth/model"
	helper "afa_backend/internals/helpers"
	authmw "afa_backend/internals/middlewares/auth"
)

const csvContentType = "text/csv; charset=utf-8"

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// =============================
// ➕ Create Payment
// =============================
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var body dto.PaymentCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFees.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	p := model.PaymentModel{
		PaymentUserID:        body.UserID,
		PaymentStudentName:   body.StudentName,
		PaymentCourse:        body.Course,
		PaymentActivities:    body.Activities,
		PaymentFeeTypeID:     body.FeeTypeID,
		PaymentAmountCents:   body.AmountCents,
		PaymentDueDate:       body.DueDate,
		PaymentStatus:        model.PaymentStatusPending,
		PaymentBankReference: body.BankReference,
		PaymentNotes:         body.Notes,
	}

	if err := ctrl.DB.Create(&p).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create payment")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment created", dto.ToPaymentResponse(p))
}

// =============================
// 📄 Get All Payments (admin, paginated + status filter)
// =============================
// paymentSortColumns whitelists what ?sort_by= may order on.
var paymentSortColumns = map[string]string{
	"created_at": "payment_created_at",
	"due_date":   "payment_due_date",
	"amount":     "payment_amount_cents",
	"status":     "payment_status",
	"student":    "payment_student_name",
}

func (ctrl *PaymentController) GetAllPayments(c *fiber.Ctx) error {
	params := helper.ParsePaginationWith(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.PaymentModel{}).Preload("FeeType")
	if status := c.Query("status"); status != "" && status != "all" {
		q = q.Where("payment_status = ?", status)
	}
	if course := c.Query("course"); course != "" {
		q = q.Where("payment_course = ?", course)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count payments")
	}

	order, err := params.SafeOrderClause(paymentSortColumns, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	var payments []model.PaymentModel
	err = q.Order(order).
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&payments).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.ToPaymentResponse(p))
	}

	return helper.Success(c, "OK", fiber.Map{
		"data":        out,
		"total":       total,
		"page":        params.Page,
		"per_page":    params.PerPage,
		"total_pages": helper.TotalPages(total, params.PerPage),
	})
}

// =============================
// 📄 Get My Payments (member portal)
// =============================
func (ctrl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var payments []model.PaymentModel
	err = ctrl.DB.Preload("FeeType").
		Where("payment_user_id = ?", userID).
		Order("payment_created_at DESC").
		Find(&payments).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.ToPaymentResponse(p))
	}
	return helper.Success(c, "OK", out)
}

// =============================
// 🔄 Update Payment (partial)
// =============================
func (ctrl *PaymentController) UpdatePayment(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.PaymentUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFees.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var p model.PaymentModel
	if err := ctrl.DB.First(&p, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve payment")
	}

	if body.StudentName != nil {
		p.PaymentStudentName = *body.StudentName
	}
	if body.Course != nil {
		p.PaymentCourse = *body.Course
	}
	if body.Activities != nil {
		p.PaymentActivities = body.Activities
	}
	if body.FeeTypeID != nil {
		p.PaymentFeeTypeID = body.FeeTypeID
	}
	if body.AmountCents != nil {
		p.PaymentAmountCents = *body.AmountCents
	}
	if body.DueDate != nil {
		p.PaymentDueDate = body.DueDate
	}
	if body.Status != nil {
		p.PaymentStatus = model.PaymentStatus(*body.Status)
	}
	if body.BankReference != nil {
		p.PaymentBankReference = body.BankReference
	}
	if body.Notes != nil {
		p.PaymentNotes = body.Notes
	}

	if err := ctrl.DB.Save(&p).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update payment")
	}

	return helper.Success(c, "Payment updated", dto.ToPaymentResponse(p))
}

// =============================
// ✅ Mark Paid
// =============================
func (ctrl *PaymentController) MarkPaid(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.MarkPaidDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFees.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	paidAt := time.Now()
	if body.PaidAt != nil {
		paidAt = *body.PaidAt
	}

	updates := map[string]any{
		"payment_status":  model.PaymentStatusPaid,
		"payment_paid_at": paidAt,
	}
	if body.BankReference != nil {
		updates["payment_bank_reference"] = *body.BankReference
	}

	res := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update payment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Payment not found")
	}

	return helper.Success(c, "Payment marked paid", fiber.Map{"paid_at": paidAt})
}

// =============================
// 🗑️ Delete Payment (soft)
// =============================
func (ctrl *PaymentController) DeletePayment(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.PaymentModel{}, "payment_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete payment")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📎 Export CSV payment report
// =============================
func (ctrl *PaymentController) ExportCSV(c *fiber.Ctx) error {
	params := helper.ParsePaginationWith(c, "created_at", "asc", helper.ExportOpts)

	q := ctrl.DB.Order("payment_created_at ASC").
		Limit(params.PerPage).Offset(params.Offset())
	if status := c.Query("status"); status != "" && status != "all" {
		q = q.Where("payment_status = ?", status)
	}

	var payments []model.PaymentModel
	if err := q.Find(&payments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	data := service.BuildPaymentsCSV(payments)
	name := helper.AttachmentName("pagaments", "report", "csv")
	return helper.SendDownload(c, name, csvContentType, data)
}

// =============================
// 💳 Checkout (member starts an online payment)
// =============================
func (ctrl *PaymentController) Checkout(c *fiber.Ctx) error {
	id := c.Params("id")

	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var p model.PaymentModel
	if err := ctrl.DB.First(&p, "payment_id = ? AND payment_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve payment")
	}
	if p.PaymentStatus == model.PaymentStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Payment already settled")
	}

	if p.PaymentExternalID == nil {
		ext := fmt.Sprintf("AFA-%s", p.PaymentID.String())
		if err := ctrl.DB.Model(&p).Update("payment_external_id", ext).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to start checkout")
		}
		p.PaymentExternalID = &ext
	}

	var user userModel.UserModel
	_ = ctrl.DB.First(&user, "user_id = ?", userID).Error

	token, redirect, err := service.GenerateSnapToken(p, service.CustomerInput{
		Name:  user.UserName,
		Email: user.UserEmail,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Payment gateway error")
	}

	return helper.Success(c, "Checkout created", dto.CheckoutResponse{Token: token, RedirectURL: redirect})
}

// =============================
// 🔔 Gateway notification webhook
// =============================
func (ctrl *PaymentController) GatewayNotification(c *fiber.Ctx) error {
	var body dto.GatewayNotificationDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFees.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	status, ok := service.MapGatewayStatus(body.TransactionStatus)
	if !ok {
		// ignore intermediate states, gateway keeps retrying until final
		return helper.Success(c, "Ignored", nil)
	}

	updates := map[string]any{"payment_status": status}
	if status == model.PaymentStatusPaid {
		updates["payment_paid_at"] = time.Now()
	}

	res := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_external_id = ?", body.OrderID).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to apply notification")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Unknown order")
	}

	return helper.Success(c, "OK", nil)
}
