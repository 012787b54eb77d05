package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSessionModel struct {
	ChatSessionID       uuid.UUID  `gorm:"column:chat_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chat_session_id"`
	ChatSessionUserID   uuid.UUID  `gorm:"column:chat_session_user_id;type:uuid;not null;index" json:"chat_session_user_id"`
	ChatSessionCourseID *uuid.UUID `gorm:"column:chat_session_course_id;type:uuid" json:"chat_session_course_id,omitempty"`
	ChatSessionTitle    string     `gorm:"column:chat_session_title;size:150;not null" json:"chat_session_title"`

	ChatSessionCreatedAt time.Time `gorm:"column:chat_session_created_at;autoCreateTime" json:"chat_session_created_at"`
	ChatSessionUpdatedAt time.Time `gorm:"column:chat_session_updated_at;autoUpdateTime" json:"chat_session_updated_at"`
}

func (ChatSessionModel) TableName() string {
	return "chat_sessions"
}
