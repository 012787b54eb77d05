package dto

import (
	"time"

	"gorm.io/datatypes"

	"belajarku_backend/internals/features/assist/chat/model"
)

type CreateChatSessionRequest struct {
	ChatSessionTitle    string  `json:"chat_session_title" validate:"required,max=150"`
	ChatSessionCourseID *string `json:"chat_session_course_id,omitempty" validate:"omitempty,uuid"`
}

type SendChatMessageRequest struct {
	ChatMessageContent string `json:"chat_message_content" validate:"required,max=8000"`
}

// GenerateRequest: tugas studi (ringkasan, flashcard, quiz, mind map, rapikan
// transkrip). Kalau session_id diisi, hasilnya disimpan sebagai pesan di sesi.
type GenerateRequest struct {
	Task      string  `json:"task" validate:"required,oneof=summary flashcards quiz mindmap transcript_cleanup"`
	Input     string  `json:"input" validate:"required,max=20000"`
	SessionID *string `json:"session_id,omitempty" validate:"omitempty,uuid"`
}

type ChatSessionDTO struct {
	ChatSessionID       string    `json:"chat_session_id"`
	ChatSessionCourseID *string   `json:"chat_session_course_id,omitempty"`
	ChatSessionTitle    string    `json:"chat_session_title"`
	ChatSessionUpdated  time.Time `json:"chat_session_updated_at"`
}

type ChatMessageDTO struct {
	ChatMessageID      string         `json:"chat_message_id"`
	ChatMessageRole    string         `json:"chat_message_role"`
	ChatMessageContent string         `json:"chat_message_content"`
	ChatMessagePayload datatypes.JSON `json:"chat_message_payload,omitempty"`
	ChatMessageCreated time.Time      `json:"chat_message_created_at"`
}

func ToChatSessionDTO(m model.ChatSessionModel) ChatSessionDTO {
	out := ChatSessionDTO{
		ChatSessionID:      m.ChatSessionID.String(),
		ChatSessionTitle:   m.ChatSessionTitle,
		ChatSessionUpdated: m.ChatSessionUpdatedAt,
	}
	if m.ChatSessionCourseID != nil {
		s := m.ChatSessionCourseID.String()
		out.ChatSessionCourseID = &s
	}
	return out
}

func ToChatMessageDTO(m model.ChatMessageModel) ChatMessageDTO {
	return ChatMessageDTO{
		ChatMessageID:      m.ChatMessageID.String(),
		ChatMessageRole:    m.ChatMessageRole,
		ChatMessageContent: m.ChatMessageContent,
		ChatMessagePayload: m.ChatMessagePayload,
		ChatMessageCreated: m.ChatMessageCreatedAt,
	}
}
