package dto

import (
	"time"

	"belajarku_backend/internals/features/notes/notes/model"
)

type CreateNoteRequest struct {
	NoteTitle    string   `json:"note_title" validate:"required,max=150"`
	NoteContent  string   `json:"note_content" validate:"required"`
	NoteCourseID *string  `json:"note_course_id,omitempty" validate:"omitempty,uuid"`
	NoteTags     []string `json:"note_tags,omitempty" validate:"omitempty,max=10,dive,max=30"`
}

type UpdateNoteRequest struct {
	NoteTitle   *string  `json:"note_title,omitempty" validate:"omitempty,max=150"`
	NoteContent *string  `json:"note_content,omitempty"`
	NoteTags    []string `json:"note_tags,omitempty" validate:"omitempty,max=10,dive,max=30"`
}

type NoteDTO struct {
	NoteID       string    `json:"note_id"`
	NoteCourseID *string   `json:"note_course_id,omitempty"`
	NoteTitle    string    `json:"note_title"`
	NoteContent  string    `json:"note_content"`
	NoteTags     []string  `json:"note_tags"`
	NoteKind     string    `json:"note_kind"`
	NoteIsSystem bool      `json:"note_is_system"`
	NoteCreated  time.Time `json:"note_created_at"`
	NoteUpdated  time.Time `json:"note_updated_at"`
}

func ToNoteDTO(m model.NoteModel) NoteDTO {
	out := NoteDTO{
		NoteID:       m.NoteID.String(),
		NoteTitle:    m.NoteTitle,
		NoteContent:  m.NoteContent,
		NoteTags:     append([]string{}, m.NoteTags...),
		NoteKind:     m.NoteKind,
		NoteIsSystem: m.NoteIsSystem,
		NoteCreated:  m.NoteCreatedAt,
		NoteUpdated:  m.NoteUpdatedAt,
	}
	if m.NoteCourseID != nil {
		s := m.NoteCourseID.String()
		out.NoteCourseID = &s
	}
	return out
}
