package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "afa_backend/internals/features/finance/fees/model"
	feesService "afa_backend/internals/features/finance/fees/service"
	"afa_backend/internals/features/shop/dto"
	"afa_backend/internals/features/shop/model"
	"afa_backend/internals/features/shop/service"
	helper "afa_backend/internals/helpers"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// =============================
// 🌍 Public
// =============================

// PlaceOrder creates a pending order and reserves stock.
func (ctrl *OrderController) PlaceOrder(c *fiber.Ctx) error {
	var body dto.PlaceOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateShop.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	order, err := service.PlaceOrder(ctrl.DB, body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductUnavailable):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "One of the products is not available")
		case errors.Is(err, service.ErrInsufficientStock):
			return helper.Error(c, fiber.StatusConflict, "Not enough stock for the requested quantity")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to place order")
		}
	}

	items, err := service.DecodeItems(order)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read order items")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order placed successfully", dto.ToOrderDTO(order, items))
}

// Checkout generates a gateway token for a pending order.
func (ctrl *OrderController) Checkout(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	_, token, redirect, err := service.CheckoutOrder(ctrl.DB, id.String())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrOrderNotPayable):
			return helper.Error(c, fiber.StatusConflict, "Order is not awaiting payment")
		default:
			return helper.Error(c, fiber.StatusBadGateway, "Payment gateway error")
		}
	}

	return helper.Success(c, "Checkout created", dto.CheckoutResponse{Token: token, RedirectURL: redirect})
}

// GatewayNotification resolves gateway callbacks for shop orders.
func (ctrl *OrderController) GatewayNotification(c *fiber.Ctx) error {
	var body dto.GatewayNotificationDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateShop.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	paymentStatus, ok := feesService.MapGatewayStatus(body.TransactionStatus)
	if !ok {
		// intermediate state, gateway retries until final
		return helper.Success(c, "Ignored", nil)
	}
	to := model.OrderStatusPaid
	if paymentStatus == feeModel.PaymentStatusCancelled {
		to = model.OrderStatusCancelled
	}

	if _, err := service.ApplyGatewayStatus(ctrl.DB, body.OrderID, to); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Unknown order")
		case errors.Is(err, service.ErrInvalidTransition):
			// e.g. cancellation arriving after delivery; keep our state
			return helper.Success(c, "Ignored", nil)
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to apply notification")
		}
	}

	return helper.Success(c, "OK", nil)
}

// =============================
// 🔐 Admin
// =============================

func (ctrl *OrderController) GetAllOrders(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "order_created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.OrderModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("order_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count orders")
	}

	var orders []model.OrderModel
	if err := q.
		Order("order_created_at DESC").
		Limit(p.PerPage).
		Offset(p.Offset()).
		Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}

	out := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		items, err := service.DecodeItems(o)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to read order items")
		}
		out = append(out, dto.ToOrderDTO(o, items))
	}

	return helper.Success(c, "Orders fetched successfully", fiber.Map{
		"items":       out,
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": helper.TotalPages(total, p.PerPage),
	})
}

func (ctrl *OrderController) GetOrderByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var order model.OrderModel
	if err := ctrl.DB.First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch order")
	}

	items, err := service.DecodeItems(order)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read order items")
	}

	return helper.Success(c, "Order fetched successfully", dto.ToOrderDTO(order, items))
}

// UpdateOrderStatus applies a transition; cancelling restores stock.
func (ctrl *OrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var body dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateShop.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	order, err := service.ChangeOrderStatus(ctrl.DB, id.String(), model.OrderStatus(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrInvalidTransition):
			return helper.Error(c, fiber.StatusConflict, "Order status transition not allowed")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update order")
		}
	}

	items, err := service.DecodeItems(order)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read order items")
	}

	return helper.Success(c, "Order status updated successfully", dto.ToOrderDTO(order, items))
}
