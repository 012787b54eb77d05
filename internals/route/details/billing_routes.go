package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subscriptionController "belajarku_backend/internals/features/billing/subscriptions/controller"
)

// BillingPublicRoutes: webhook Midtrans datang tanpa JWT.
func BillingPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := subscriptionController.NewSubscriptionController(db)

	public.Post("/subscriptions/webhook", ctrl.HandleWebhook)
}

func BillingUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := subscriptionController.NewSubscriptionController(db)

	private.Get("/subscriptions", ctrl.GetMine)
	private.Post("/subscriptions/checkout", ctrl.Checkout)
}
