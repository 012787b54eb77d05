package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel: satu pembelian paket premium. Status mengikuti siklus
// Midtrans: pending -> paid / expired / canceled.
type SubscriptionModel struct {
	SubscriptionID      uuid.UUID `gorm:"column:subscription_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subscription_id"`
	SubscriptionUserID  uuid.UUID `gorm:"column:subscription_user_id;type:uuid;not null;index" json:"subscription_user_id"`
	SubscriptionOrderID string    `gorm:"column:subscription_order_id;size:64;not null;uniqueIndex" json:"subscription_order_id"`
	SubscriptionPlan    string    `gorm:"column:subscription_plan;size:20;not null" json:"subscription_plan"`
	SubscriptionAmount  int       `gorm:"column:subscription_amount;not null" json:"subscription_amount"`
	SubscriptionStatus  string    `gorm:"column:subscription_status;size:20;not null;default:'pending'" json:"subscription_status"`

	SubscriptionPaidAt    *time.Time `gorm:"column:subscription_paid_at" json:"subscription_paid_at,omitempty"`
	SubscriptionExpiresAt *time.Time `gorm:"column:subscription_expires_at" json:"subscription_expires_at,omitempty"`

	SubscriptionCreatedAt time.Time `gorm:"column:subscription_created_at;autoCreateTime" json:"subscription_created_at"`
	SubscriptionUpdatedAt time.Time `gorm:"column:subscription_updated_at;autoUpdateTime" json:"subscription_updated_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
