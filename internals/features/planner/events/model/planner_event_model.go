package model

import (
	"time"

	"github.com/google/uuid"
)

// PlannerEventModel: jadwal belajar / deadline user
type PlannerEventModel struct {
	PlannerEventID       uuid.UUID  `gorm:"column:planner_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"planner_event_id"`
	PlannerEventUserID   uuid.UUID  `gorm:"column:planner_event_user_id;type:uuid;not null;index" json:"planner_event_user_id"`
	PlannerEventCourseID *uuid.UUID `gorm:"column:planner_event_course_id;type:uuid" json:"planner_event_course_id,omitempty"`
	PlannerEventTitle    string     `gorm:"column:planner_event_title;size:150;not null" json:"planner_event_title"`
	PlannerEventNotes    *string    `gorm:"column:planner_event_notes;type:text" json:"planner_event_notes,omitempty"`

	PlannerEventStartAt time.Time `gorm:"column:planner_event_start_at;type:timestamptz;not null;index" json:"planner_event_start_at"`
	PlannerEventEndAt   time.Time `gorm:"column:planner_event_end_at;type:timestamptz;not null" json:"planner_event_end_at"`
	PlannerEventAllDay  bool      `gorm:"column:planner_event_all_day;not null;default:false" json:"planner_event_all_day"`

	PlannerEventReminderMinutes *int `gorm:"column:planner_event_reminder_minutes" json:"planner_event_reminder_minutes,omitempty"`

	PlannerEventCreatedAt time.Time `gorm:"column:planner_event_created_at;autoCreateTime" json:"planner_event_created_at"`
	PlannerEventUpdatedAt time.Time `gorm:"column:planner_event_updated_at;autoUpdateTime" json:"planner_event_updated_at"`
}

func (PlannerEventModel) TableName() string {
	return "planner_events"
}
