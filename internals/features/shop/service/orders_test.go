package service

import (
	"testing"

	"github.com/google/uuid"

	"afa_backend/internals/features/shop/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{"pending to paid", model.OrderStatusPending, model.OrderStatusPaid, true},
		{"pending to cancelled", model.OrderStatusPending, model.OrderStatusCancelled, true},
		{"pending to delivered skips payment", model.OrderStatusPending, model.OrderStatusDelivered, false},
		{"paid to delivered", model.OrderStatusPaid, model.OrderStatusDelivered, true},
		{"paid to cancelled", model.OrderStatusPaid, model.OrderStatusCancelled, true},
		{"paid back to pending", model.OrderStatusPaid, model.OrderStatusPending, false},
		{"delivered is terminal", model.OrderStatusDelivered, model.OrderStatusCancelled, false},
		{"cancelled is terminal", model.OrderStatusCancelled, model.OrderStatusPaid, false},
		{"no self transition", model.OrderStatusPending, model.OrderStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestDecodeItemsRoundTrip(t *testing.T) {
	pid := uuid.New()
	order := model.OrderModel{
		OrderItems: []byte(`[{"product_id":"` + pid.String() + `","name":"Samarreta AFA","size":"M","quantity":2,"price_cents":1200}]`),
	}

	items, err := DecodeItems(order)
	if err != nil {
		t.Fatalf("DecodeItems returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.ProductID != pid {
		t.Errorf("product id = %s, want %s", it.ProductID, pid)
	}
	if it.Name != "Samarreta AFA" || it.Size != "M" || it.Quantity != 2 || it.PriceCents != 1200 {
		t.Errorf("unexpected item: %+v", it)
	}
}

func TestDecodeItemsInvalidJSON(t *testing.T) {
	order := model.OrderModel{OrderItems: []byte(`{not json`)}
	if _, err := DecodeItems(order); err == nil {
		t.Fatal("expected error for malformed items payload")
	}
}
