package service

import (
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"gorm.io/gorm"

	feesService "afa_backend/internals/features/finance/fees/service"
	"afa_backend/internals/features/shop/model"
)

var ErrOrderNotPayable = errors.New("order is not awaiting payment")

// CheckoutOrder generates a gateway token for a pending order. The order
// keeps one external id across retries so the gateway sees a single
// transaction.
func CheckoutOrder(db *gorm.DB, orderID string) (model.OrderModel, string, string, error) {
	var order model.OrderModel
	if err := db.First(&order, "order_id = ?", orderID).Error; err != nil {
		return order, "", "", err
	}
	if order.OrderStatus != model.OrderStatusPending {
		return order, "", "", ErrOrderNotPayable
	}

	if order.OrderExternalID == nil {
		ext := fmt.Sprintf("AFA-ORD-%s", order.OrderID.String())
		if err := db.Model(&order).Update("order_external_id", ext).Error; err != nil {
			return order, "", "", err
		}
		order.OrderExternalID = &ext
	}

	items, err := DecodeItems(order)
	if err != nil {
		return order, "", "", err
	}
	lines := make([]midtrans.ItemDetails, 0, len(items))
	for _, it := range items {
		name := it.Name
		if it.Size != "" {
			name = fmt.Sprintf("%s (%s)", it.Name, it.Size)
		}
		lines = append(lines, midtrans.ItemDetails{
			ID:    it.ProductID.String(),
			Name:  name,
			Price: int64(it.PriceCents),
			Qty:   int32(it.Quantity),
		})
	}

	token, redirect, err := feesService.CreateSnapTransaction(
		*order.OrderExternalID,
		int64(order.OrderTotalCents),
		lines,
		feesService.CustomerInput{
			Name:  order.OrderContactName,
			Email: order.OrderContactEmail,
			Phone: order.OrderContactPhone,
		},
	)
	return order, token, redirect, err
}

// ApplyGatewayStatus resolves a gateway notification for an order found by
// its external id. Settled transactions mark the order paid; failed or
// expired ones cancel it and restore stock.
func ApplyGatewayStatus(db *gorm.DB, externalID string, to model.OrderStatus) (model.OrderModel, error) {
	var order model.OrderModel
	if err := db.First(&order, "order_external_id = ?", externalID).Error; err != nil {
		return order, err
	}
	if order.OrderStatus == to {
		return order, nil
	}
	return ChangeOrderStatus(db, order.OrderID.String(), to)
}
