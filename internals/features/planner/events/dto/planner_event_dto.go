package dto

import (
	"time"

	"belajarku_backend/internals/features/planner/events/model"
)

// ====================
// Request DTO
// ====================
// Saran penjadwalan natural-language dihasilkan kolaborator eksternal;
// endpoint ini hanya menerima event yang SUDAH terstruktur.
type CreatePlannerEventRequest struct {
	PlannerEventTitle           string    `json:"planner_event_title" validate:"required,max=150"`
	PlannerEventCourseID        *string   `json:"planner_event_course_id,omitempty" validate:"omitempty,uuid"`
	PlannerEventNotes           *string   `json:"planner_event_notes,omitempty"`
	PlannerEventStartAt         time.Time `json:"planner_event_start_at" validate:"required"`
	PlannerEventEndAt           time.Time `json:"planner_event_end_at" validate:"required"`
	PlannerEventAllDay          bool      `json:"planner_event_all_day"`
	PlannerEventReminderMinutes *int      `json:"planner_event_reminder_minutes,omitempty" validate:"omitempty,min=0,max=10080"`
}

type UpdatePlannerEventRequest struct {
	PlannerEventTitle           *string    `json:"planner_event_title,omitempty" validate:"omitempty,max=150"`
	PlannerEventNotes           *string    `json:"planner_event_notes,omitempty"`
	PlannerEventStartAt         *time.Time `json:"planner_event_start_at,omitempty"`
	PlannerEventEndAt           *time.Time `json:"planner_event_end_at,omitempty"`
	PlannerEventAllDay          *bool      `json:"planner_event_all_day,omitempty"`
	PlannerEventReminderMinutes *int       `json:"planner_event_reminder_minutes,omitempty" validate:"omitempty,min=0,max=10080"`
}

// ====================
// Response DTO
// ====================
type PlannerEventDTO struct {
	PlannerEventID              string    `json:"planner_event_id"`
	PlannerEventCourseID        *string   `json:"planner_event_course_id,omitempty"`
	PlannerEventTitle           string    `json:"planner_event_title"`
	PlannerEventNotes           *string   `json:"planner_event_notes,omitempty"`
	PlannerEventStartAt         time.Time `json:"planner_event_start_at"`
	PlannerEventEndAt           time.Time `json:"planner_event_end_at"`
	PlannerEventAllDay          bool      `json:"planner_event_all_day"`
	PlannerEventReminderMinutes *int      `json:"planner_event_reminder_minutes,omitempty"`
}

// ====================
// Converter
// ====================
func ToPlannerEventDTO(m model.PlannerEventModel) PlannerEventDTO {
	out := PlannerEventDTO{
		PlannerEventID:              m.PlannerEventID.String(),
		PlannerEventTitle:           m.PlannerEventTitle,
		PlannerEventNotes:           m.PlannerEventNotes,
		PlannerEventStartAt:         m.PlannerEventStartAt,
		PlannerEventEndAt:           m.PlannerEventEndAt,
		PlannerEventAllDay:          m.PlannerEventAllDay,
		PlannerEventReminderMinutes: m.PlannerEventReminderMinutes,
	}
	if m.PlannerEventCourseID != nil {
		s := m.PlannerEventCourseID.String()
		out.PlannerEventCourseID = &s
	}
	return out
}
