package service

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"afa_backend/internals/features/shop/dto"
	"afa_backend/internals/features/shop/model"
)

var (
	ErrProductUnavailable = errors.New("product unavailable")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidTransition  = errors.New("invalid order status transition")
)

// allowedTransitions maps a current status to the statuses it may move to.
// Cancelled and delivered are terminal.
var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending: {model.OrderStatusPaid, model.OrderStatusCancelled},
	model.OrderStatusPaid:    {model.OrderStatusDelivered, model.OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to model.OrderStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// PlaceOrder validates the requested items against live products, decrements
// stock and creates the order in one transaction. Item names and prices are
// snapshotted into the order.
func PlaceOrder(db *gorm.DB, req dto.PlaceOrderRequest) (model.OrderModel, error) {
	var order model.OrderModel

	err := db.Transaction(func(tx *gorm.DB) error {
		items := make([]model.OrderItem, 0, len(req.Items))
		total := 0

		for _, in := range req.Items {
			var product model.ProductModel
			if err := tx.
				Where("product_id = ? AND product_active = ?", in.ProductID, true).
				First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductUnavailable, in.ProductID)
				}
				return err
			}
			if product.ProductStock < in.Quantity {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, product.ProductName)
			}

			res := tx.Model(&model.ProductModel{}).
				Where("product_id = ? AND product_stock >= ?", in.ProductID, in.Quantity).
				UpdateColumn("product_stock", gorm.Expr("product_stock - ?", in.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, product.ProductName)
			}

			items = append(items, model.OrderItem{
				ProductID:  product.ProductID,
				Name:       product.ProductName,
				Size:       in.Size,
				Quantity:   in.Quantity,
				PriceCents: product.ProductPriceCents,
			})
			total += product.ProductPriceCents * in.Quantity
		}

		raw, err := sonic.Marshal(items)
		if err != nil {
			return err
		}

		order = model.OrderModel{
			OrderContactName:  req.ContactName,
			OrderContactEmail: req.ContactEmail,
			OrderContactPhone: req.ContactPhone,
			OrderItems:        raw,
			OrderTotalCents:   total,
			OrderStatus:       model.OrderStatusPending,
			OrderNotes:        req.Notes,
		}
		return tx.Create(&order).Error
	})

	return order, err
}

// ChangeOrderStatus applies a status transition. Cancelling restores the
// stock that the order had reserved.
func ChangeOrderStatus(db *gorm.DB, orderID string, to model.OrderStatus) (model.OrderModel, error) {
	var order model.OrderModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "order_id = ?", orderID).Error; err != nil {
			return err
		}
		if !CanTransition(order.OrderStatus, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.OrderStatus, to)
		}

		if to == model.OrderStatusCancelled {
			items, err := DecodeItems(order)
			if err != nil {
				return err
			}
			for _, it := range items {
				if err := tx.Model(&model.ProductModel{}).
					Where("product_id = ?", it.ProductID).
					UpdateColumn("product_stock", gorm.Expr("product_stock + ?", it.Quantity)).Error; err != nil {
					return err
				}
			}
		}

		order.OrderStatus = to
		return tx.Save(&order).Error
	})

	return order, err
}

// DecodeItems unmarshals the snapshotted order lines.
func DecodeItems(order model.OrderModel) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := sonic.Unmarshal(order.OrderItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}
