package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatController "belajarku_backend/internals/features/assist/chat/controller"
	assistService "belajarku_backend/internals/features/assist/service"
	middlewares "belajarku_backend/internals/middlewares"
)

// AssistUserRoutes: fitur AI premium, rate limit lebih ketat karena tiap
// request memanggil layanan eksternal.
func AssistUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := chatController.NewChatController(db, assistService.NewHTTPTextGenerator())

	assist := private.Group("/assist", middlewares.AssistRateLimiter())
	assist.Post("/generate", ctrl.Generate)
	assist.Get("/sessions", ctrl.GetSessions)
	assist.Post("/sessions", ctrl.CreateSession)
	assist.Get("/sessions/:id/messages", ctrl.GetMessages)
	assist.Post("/sessions/:id/messages", ctrl.SendMessage)
	assist.Delete("/sessions/:id", ctrl.DeleteSession)
}
