package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
	"belajarku_backend/internals/features/assist/chat/dto"
	"belajarku_backend/internals/features/assist/chat/model"
	assistService "belajarku_backend/internals/features/assist/service"
	helper "belajarku_backend/internals/helpers"
)

type ChatController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Generator assistService.TextGenerator
}

func NewChatController(db *gorm.DB, gen assistService.TextGenerator) *ChatController {
	return &ChatController{DB: db, Validate: validator.New(), Generator: gen}
}

// Semua endpoint assist khusus user premium.
func requirePremium(c *fiber.Ctx) error {
	if !helper.IsPremiumFromToken(c) {
		return fiber.NewError(fiber.StatusForbidden, "Fitur ini khusus user premium")
	}
	return nil
}

func (ctrl *ChatController) findOwnedSession(c *fiber.Ctx, userID uuid.UUID) (*model.ChatSessionModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
	}
	var session model.ChatSessionModel
	if err := ctrl.DB.
		First(&session, "chat_session_id = ? AND chat_session_user_id = ?", id, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	return &session, nil
}

// POST /api/u/assist/generate — tugas studi sekali jalan, tanpa sesi
func (ctrl *ChatController) Generate(c *fiber.Ctx) error {
	if err := requirePremium(c); err != nil {
		return err
	}

	var body dto.GenerateRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	output, err := ctrl.Generator.Generate(c.UserContext(), body.Task, body.Input)
	if err != nil {
		log.Printf("[ERROR] Generate %s gagal: %v", body.Task, err)
		return fiber.NewError(fiber.StatusBadGateway, "Layanan AI sedang tidak tersedia")
	}

	// opsional: simpan artefak ke sesi supaya bisa dibuka lagi
	if body.SessionID != nil {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		sessionID, err := uuid.Parse(*body.SessionID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
		}
		var session model.ChatSessionModel
		if err := ctrl.DB.
			First(&session, "chat_session_id = ? AND chat_session_user_id = ?", sessionID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		msg := model.ChatMessageModel{
			ChatMessageSessionID: session.ChatSessionID,
			ChatMessageRole:      "assistant",
			ChatMessageContent:   output,
			ChatMessagePayload:   datatypes.JSON([]byte(fmt.Sprintf(`{"task":%q}`, body.Task))),
		}
		if err := ctrl.DB.Create(&msg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan artefak")
		}
	}

	return helper.Success(c, "OK", fiber.Map{
		"task":   body.Task,
		"output": output,
	})
}

// GET /api/u/assist/sessions
func (ctrl *ChatController) GetSessions(c *fiber.Ctx) error {
	if err := requirePremium(c); err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var sessions []model.ChatSessionModel
	if err := ctrl.DB.
		Where("chat_session_user_id = ?", userID).
		Order("chat_session_updated_at DESC").
		Limit(50).
		Find(&sessions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil sesi")
	}

	out := make([]dto.ChatSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, dto.ToChatSessionDTO(s))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/u/assist/sessions
func (ctrl *ChatController) CreateSession(c *fiber.Ctx) error {
	if err := requirePremium(c); err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateChatSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	session := model.ChatSessionModel{
		ChatSessionUserID: userID,
		ChatSessionTitle:  body.ChatSessionTitle,
	}
	if body.ChatSessionCourseID != nil {
		courseID, err := uuid.Parse(*body.ChatSessionCourseID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
		}
		var course courseModel.StudentCourseModel
		if err := ctrl.DB.
			First(&course, "student_course_id = ? AND student_course_user_id = ?", courseID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
		}
		session.ChatSessionCourseID = &courseID
	}

	if err := ctrl.DB.Create(&session).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sesi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi dibuat", dto.ToChatSessionDTO(session))
}

// GET /api/u/assist/sessions/:id/messages
func (ctrl *ChatController) GetMessages(c *fiber.Ctx) error {
	if err := requirePremium(c); err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	session, err := ctrl.findOwnedSession(c, userID)
	if err != nil {
		return err
	}

	var messages []model.ChatMessageModel
	if err := ctrl.DB.
		Where("chat_message_session_id = ?", session.ChatSessionID).
		Order("chat_message_created_at ASC").
		Find(&messages).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil pesan")
	}

	out := make([]dto.ChatMessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.ToChatMessageDTO(m))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/u/assist/sessions/:id/messages
// Pesan user disimpan dulu; kalau layanan AI gagal, pesan tetap ada dan
// bisa dikirim ulang.
func (ctrl *ChatController) SendMessage(c *fiber.Ctx) error {
	if err := requirePremium(c); err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	session, err := ctrl.findOwnedSession(c, userID)
	if err != nil {
		return err
	}

	var body dto.SendChatMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	userMsg := model.ChatMessageModel{
		ChatMessageSessionID: session.ChatSessionID,
		ChatMessageRole:      "user",
		ChatMessageContent:   body.ChatMessageContent,
	}
	if err := ctrl.DB.Create(&userMsg).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan pesan")
	}

	output, err := ctrl.Generator.Generate(c.UserContext(), assistService.TaskChat, body.ChatMessageContent)
	if err != nil {
		log.Printf("[ERROR] Chat session %s gagal: %v", session.ChatSessionID, err)
		return fiber.NewError(fiber.StatusBadGateway, "Layanan AI sedang tidak tersedia")
	}

	assistantMsg := model.ChatMessageModel{
		ChatMessageSessionID: session.ChatSessionID,
		ChatMessageRole:      "assistant",
		ChatMessageContent:   output,
		ChatMessagePayload:   datatypes.JSON([]byte(`{"task":"chat"}`)),
	}
	if err := ctrl.DB.Create(&assistantMsg).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan balasan")
	}
	ctrl.DB.Model(session).Update("chat_session_updated_at", gorm.Expr("NOW()"))

	return helper.Success(c, "OK", fiber.Map{
		"user_message":      dto.ToChatMessageDTO(userMsg),
		"assistant_message": dto.ToChatMessageDTO(assistantMsg),
	})
}

// DELETE /api/u/assist/sessions/:id
func (ctrl *ChatController) DeleteSession(c *fiber.Ctx) error {
	if err := requirePremium(c); err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	session, err := ctrl.findOwnedSession(c, userID)
	if err != nil {
		return err
	}

	return ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("chat_message_session_id = ?", session.ChatSessionID).
			Delete(&model.ChatMessageModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus pesan")
		}
		if err := tx.Delete(session).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus sesi")
		}
		return helper.Success(c, "Sesi dihapus", nil)
	})
}
