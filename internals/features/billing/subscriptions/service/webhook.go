package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	"belajarku_backend/internals/features/billing/subscriptions/model"
	userModel "belajarku_backend/internals/features/users/user/model"
)

// HandleSubscriptionStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandleSubscriptionStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var sub model.SubscriptionModel
	if err := db.Where("subscription_order_id = ?", orderID).First(&sub).Error; err != nil {
		log.Println("[ERROR] Subscription tidak ditemukan:", err)
		return fmt.Errorf("subscription with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		// Webhook bisa datang lebih dari sekali; jangan geser masa aktif lagi.
		if sub.SubscriptionStatus == constants.SubscriptionPaid {
			return nil
		}
		now := time.Now()
		expires := now.AddDate(0, 1, 0)
		if sub.SubscriptionPlan == "yearly" {
			expires = now.AddDate(1, 0, 0)
		}
		sub.SubscriptionStatus = constants.SubscriptionPaid
		sub.SubscriptionPaidAt = &now
		sub.SubscriptionExpiresAt = &expires

		if err := db.Model(&userModel.UserModel{}).
			Where("id = ?", sub.SubscriptionUserID).
			Update("is_premium", true).Error; err != nil {
			log.Println("[ERROR] Gagal set is_premium:", err)
			return err
		}

	case "expire":
		sub.SubscriptionStatus = constants.SubscriptionExpired
	case "cancel":
		sub.SubscriptionStatus = constants.SubscriptionCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if err := db.Save(&sub).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status subscription:", err)
		return err
	}

	return nil
}

// ExpirePremium menurunkan flag premium user yang masa aktifnya sudah lewat.
// Dipanggil scheduler harian.
func ExpirePremium(db *gorm.DB) error {
	var expired []model.SubscriptionModel
	if err := db.
		Where("subscription_status = ? AND subscription_expires_at < NOW()", constants.SubscriptionPaid).
		Find(&expired).Error; err != nil {
		return err
	}

	for _, sub := range expired {
		// Hanya turunkan kalau tidak ada subscription paid lain yang masih aktif.
		var active int64
		if err := db.Model(&model.SubscriptionModel{}).
			Where("subscription_user_id = ? AND subscription_status = ? AND subscription_expires_at >= NOW()",
				sub.SubscriptionUserID, constants.SubscriptionPaid).
			Count(&active).Error; err != nil {
			return err
		}
		if active == 0 {
			if err := db.Model(&userModel.UserModel{}).
				Where("id = ?", sub.SubscriptionUserID).
				Update("is_premium", false).Error; err != nil {
				return err
			}
		}
		if err := db.Model(&sub).
			Update("subscription_status", constants.SubscriptionExpired).Error; err != nil {
			return err
		}
	}

	if len(expired) > 0 {
		log.Printf("[CLEANUP] %d subscription premium kedaluwarsa diproses", len(expired))
	}
	return nil
}
