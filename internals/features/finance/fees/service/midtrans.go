package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"afa_backend/internals/features/finance/fees/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called during app bootstrap.
func InitMidtrans(serverKey string, useProduction bool) {
	if serverKey == "" {
		return
	}
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

/* =========================================================
   Generate Snap Token
========================================================= */

// CreateSnapTransaction is the shared low-level call; other features
// (shop checkout) reuse it with their own item lines.
func CreateSnapTransaction(externalID string, grossCents int64, items []midtrans.ItemDetails, cust CustomerInput) (string, string, error) {
	if grossCents <= 0 {
		return "", "", errors.New("invalid transaction amount")
	}
	if externalID == "" {
		return "", "", errors.New("external id is required (used as OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  externalID,
			GrossAmt: grossCents,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &items,
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func GenerateSnapToken(p model.PaymentModel, cust CustomerInput) (string, string, error) {
	if p.PaymentExternalID == nil || *p.PaymentExternalID == "" {
		return "", "", errors.New("payment external id is required (used as OrderID)")
	}

	return CreateSnapTransaction(*p.PaymentExternalID, int64(p.PaymentAmountCents), []midtrans.ItemDetails{{
		ID:    p.PaymentID.String(),
		Name:  p.PaymentStudentName,
		Price: int64(p.PaymentAmountCents),
		Qty:   1,
	}}, cust)
}

// MapGatewayStatus folds midtrans transaction states onto our enum.
// Unknown states leave the payment untouched.
func MapGatewayStatus(transactionStatus string) (model.PaymentStatus, bool) {
	switch transactionStatus {
	case "settlement", "capture":
		return model.PaymentStatusPaid, true
	case "expire", "cancel", "deny":
		return model.PaymentStatusCancelled, true
	default:
		return "", false
	}
}
