package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	subscriptionService "belajarku_backend/internals/features/billing/subscriptions/service"
)

// StartPremiumExpiryScheduler menurunkan flag premium user yang masa
// berlangganannya habis. Jalan sekali saat start lalu tiap 24 jam.
func StartPremiumExpiryScheduler(db *gorm.DB) {
	go func() {
		for {
			if err := subscriptionService.ExpirePremium(db); err != nil {
				log.Printf("[ERROR] Gagal proses premium kedaluwarsa: %v", err)
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}
