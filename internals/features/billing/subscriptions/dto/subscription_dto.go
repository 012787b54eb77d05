package dto

import (
	"time"

	"belajarku_backend/internals/features/billing/subscriptions/model"
)

type CreateSubscriptionRequest struct {
	SubscriptionPlan string `json:"subscription_plan" validate:"required,oneof=monthly yearly"`
}

type SubscriptionDTO struct {
	SubscriptionID        string     `json:"subscription_id"`
	SubscriptionOrderID   string     `json:"subscription_order_id"`
	SubscriptionPlan      string     `json:"subscription_plan"`
	SubscriptionAmount    int        `json:"subscription_amount"`
	SubscriptionStatus    string     `json:"subscription_status"`
	SubscriptionPaidAt    *time.Time `json:"subscription_paid_at,omitempty"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
}

type CheckoutDTO struct {
	Subscription SubscriptionDTO `json:"subscription"`
	SnapToken    string          `json:"snap_token"`
}

func ToSubscriptionDTO(m model.SubscriptionModel) SubscriptionDTO {
	return SubscriptionDTO{
		SubscriptionID:        m.SubscriptionID.String(),
		SubscriptionOrderID:   m.SubscriptionOrderID,
		SubscriptionPlan:      m.SubscriptionPlan,
		SubscriptionAmount:    m.SubscriptionAmount,
		SubscriptionStatus:    m.SubscriptionStatus,
		SubscriptionPaidAt:    m.SubscriptionPaidAt,
		SubscriptionExpiresAt: m.SubscriptionExpiresAt,
	}
}
