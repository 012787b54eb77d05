package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"belajarku_backend/internals/features/billing/subscriptions/model"
)

var SnapClient snap.Client

// Harga paket dalam rupiah.
var PlanPrices = map[string]int{
	"monthly": 29000,
	"yearly":  290000,
}

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap Midtrans untuk pembelian premium.
func GenerateSnapToken(s model.SubscriptionModel, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  s.SubscriptionOrderID,
			GrossAmt: int64(s.SubscriptionAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
