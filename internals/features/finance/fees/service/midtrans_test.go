package service

import (
	"testing"

	"afa_backend/internals/features/finance/fees/model"
)

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		in     string
		want   model.PaymentStatus
		wantOK bool
	}{
		{"settlement", model.PaymentStatusPaid, true},
		{"capture", model.PaymentStatusPaid, true},
		{"expire", model.PaymentStatusCancelled, true},
		{"cancel", model.PaymentStatusCancelled, true},
		{"deny", model.PaymentStatusCancelled, true},
		{"pending", "", false},
		{"authorize", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := MapGatewayStatus(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("MapGatewayStatus(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
