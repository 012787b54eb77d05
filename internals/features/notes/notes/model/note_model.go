package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NoteModel: catatan user. note_is_system true untuk catatan advisory yang
// dibuat otomatis dari perubahan status nilai.
type NoteModel struct {
	NoteID       uuid.UUID      `gorm:"column:note_id;type:uuid;default:gen_random_uuid();primaryKey" json:"note_id"`
	NoteUserID   uuid.UUID      `gorm:"column:note_user_id;type:uuid;not null;index" json:"note_user_id"`
	NoteCourseID *uuid.UUID     `gorm:"column:note_course_id;type:uuid;index" json:"note_course_id,omitempty"`
	NoteTitle    string         `gorm:"column:note_title;size:150;not null" json:"note_title"`
	NoteContent  string         `gorm:"column:note_content;type:text;not null" json:"note_content"`
	NoteTags     pq.StringArray `gorm:"column:note_tags;type:text[]" json:"note_tags,omitempty"`
	NoteKind     string         `gorm:"column:note_kind;size:20;not null;default:'personal'" json:"note_kind"`
	NoteIsSystem bool           `gorm:"column:note_is_system;not null;default:false" json:"note_is_system"`

	NoteCreatedAt time.Time `gorm:"column:note_created_at;autoCreateTime" json:"note_created_at"`
	NoteUpdatedAt time.Time `gorm:"column:note_updated_at;autoUpdateTime" json:"note_updated_at"`
}

func (NoteModel) TableName() string {
	return "notes"
}
