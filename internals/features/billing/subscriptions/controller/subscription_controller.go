package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	"belajarku_backend/internals/features/billing/subscriptions/dto"
	"belajarku_backend/internals/features/billing/subscriptions/model"
	subscriptionService "belajarku_backend/internals/features/billing/subscriptions/service"
	userModel "belajarku_backend/internals/features/users/user/model"
	helper "belajarku_backend/internals/helpers"
)

type SubscriptionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db, Validate: validator.New()}
}

// POST /api/u/subscriptions/checkout
// Buat subscription pending + snap token Midtrans untuk pembayaran.
func (ctrl *SubscriptionController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateSubscriptionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	sub := model.SubscriptionModel{
		SubscriptionUserID:  userID,
		SubscriptionOrderID: fmt.Sprintf("PREMIUM-%d", time.Now().UnixNano()),
		SubscriptionPlan:    body.SubscriptionPlan,
		SubscriptionAmount:  subscriptionService.PlanPrices[body.SubscriptionPlan],
		SubscriptionStatus:  constants.SubscriptionPending,
	}
	if err := ctrl.DB.Create(&sub).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan subscription")
	}

	token, err := subscriptionService.GenerateSnapToken(sub, user.UserName, user.Email)
	if err != nil {
		log.Printf("[ERROR] Gagal membuat snap token untuk %s: %v", sub.SubscriptionOrderID, err)
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Subscription dibuat. Silakan lanjutkan pembayaran.",
		dto.CheckoutDTO{Subscription: dto.ToSubscriptionDTO(sub), SnapToken: token})
}

// GET /api/u/subscriptions
func (ctrl *SubscriptionController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var subs []model.SubscriptionModel
	if err := ctrl.DB.
		Where("subscription_user_id = ?", userID).
		Order("subscription_created_at DESC").
		Find(&subs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil subscription")
	}

	out := make([]dto.SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		out = append(out, dto.ToSubscriptionDTO(sub))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/public/subscriptions/webhook — notifikasi status dari Midtrans
func (ctrl *SubscriptionController) HandleWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := subscriptionService.HandleSubscriptionStatusWebhook(ctrl.DB, body); err != nil {
		log.Printf("[ERROR] Webhook subscription gagal: %v", err)
		return fiber.NewError(fiber.StatusBadRequest, "Webhook gagal diproses")
	}
	return helper.Success(c, "OK", nil)
}
