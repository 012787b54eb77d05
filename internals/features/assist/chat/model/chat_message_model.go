package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatMessageModel: satu pesan dalam sesi. chat_message_payload menyimpan
// metadata bebas (task, sumber materi, skor quiz) sebagai JSONB.
type ChatMessageModel struct {
	ChatMessageID        uuid.UUID      `gorm:"column:chat_message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chat_message_id"`
	ChatMessageSessionID uuid.UUID      `gorm:"column:chat_message_session_id;type:uuid;not null;index" json:"chat_message_session_id"`
	ChatMessageRole      string         `gorm:"column:chat_message_role;size:20;not null" json:"chat_message_role"`
	ChatMessageContent   string         `gorm:"column:chat_message_content;type:text;not null" json:"chat_message_content"`
	ChatMessagePayload   datatypes.JSON `gorm:"column:chat_message_payload;type:jsonb" json:"chat_message_payload,omitempty"`

	ChatMessageCreatedAt time.Time `gorm:"column:chat_message_created_at;autoCreateTime" json:"chat_message_created_at"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
