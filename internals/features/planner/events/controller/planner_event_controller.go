package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
	"belajarku_backend/internals/features/planner/events/dto"
	"belajarku_backend/internals/features/planner/events/model"
	helper "belajarku_backend/internals/helpers"
)

type PlannerEventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPlannerEventController(db *gorm.DB) *PlannerEventController {
	return &PlannerEventController{DB: db, Validate: validator.New()}
}

func (ctrl *PlannerEventController) findOwnedEvent(c *fiber.Ctx, userID uuid.UUID) (*model.PlannerEventModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}
	var event model.PlannerEventModel
	if err := ctrl.DB.
		First(&event, "planner_event_id = ? AND planner_event_user_id = ?", id, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return &event, nil
}

// GET /api/u/planner/events?from=&to=
// from/to format RFC3339 atau YYYY-MM-DD; default 7 hari ke depan.
func (ctrl *PlannerEventController) GetAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 7)
	if raw := c.Query("from"); raw != "" {
		if from, err = parseTimeParam(raw); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Parameter from tidak valid")
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = parseTimeParam(raw); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Parameter to tidak valid")
		}
	}
	if !to.After(from) {
		return fiber.NewError(fiber.StatusBadRequest, "Rentang tanggal tidak valid")
	}

	var events []model.PlannerEventModel
	if err := ctrl.DB.
		Where("planner_event_user_id = ? AND planner_event_start_at < ? AND planner_event_end_at >= ?", userID, to, from).
		Order("planner_event_start_at ASC").
		Find(&events).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil event")
	}

	out := make([]dto.PlannerEventDTO, 0, len(events))
	for _, event := range events {
		out = append(out, dto.ToPlannerEventDTO(event))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/u/planner/events
func (ctrl *PlannerEventController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreatePlannerEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !body.PlannerEventEndAt.After(body.PlannerEventStartAt) {
		return fiber.NewError(fiber.StatusBadRequest, "Waktu selesai harus setelah waktu mulai")
	}

	event := model.PlannerEventModel{
		PlannerEventUserID:          userID,
		PlannerEventTitle:           body.PlannerEventTitle,
		PlannerEventNotes:           body.PlannerEventNotes,
		PlannerEventStartAt:         body.PlannerEventStartAt,
		PlannerEventEndAt:           body.PlannerEventEndAt,
		PlannerEventAllDay:          body.PlannerEventAllDay,
		PlannerEventReminderMinutes: body.PlannerEventReminderMinutes,
	}
	if body.PlannerEventCourseID != nil {
		courseID, err := uuid.Parse(*body.PlannerEventCourseID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
		}
		var course courseModel.StudentCourseModel
		if err := ctrl.DB.
			First(&course, "student_course_id = ? AND student_course_user_id = ?", courseID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
		}
		event.PlannerEventCourseID = &courseID
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat event")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event dibuat", dto.ToPlannerEventDTO(event))
}

// PUT /api/u/planner/events/:id
func (ctrl *PlannerEventController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	event, err := ctrl.findOwnedEvent(c, userID)
	if err != nil {
		return err
	}

	var body dto.UpdatePlannerEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if body.PlannerEventTitle != nil {
		updates["planner_event_title"] = *body.PlannerEventTitle
	}
	if body.PlannerEventNotes != nil {
		updates["planner_event_notes"] = *body.PlannerEventNotes
	}
	if body.PlannerEventStartAt != nil {
		updates["planner_event_start_at"] = *body.PlannerEventStartAt
	}
	if body.PlannerEventEndAt != nil {
		updates["planner_event_end_at"] = *body.PlannerEventEndAt
	}
	if body.PlannerEventAllDay != nil {
		updates["planner_event_all_day"] = *body.PlannerEventAllDay
	}
	if body.PlannerEventReminderMinutes != nil {
		updates["planner_event_reminder_minutes"] = *body.PlannerEventReminderMinutes
	}
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", dto.ToPlannerEventDTO(*event))
	}

	start := event.PlannerEventStartAt
	end := event.PlannerEventEndAt
	if body.PlannerEventStartAt != nil {
		start = *body.PlannerEventStartAt
	}
	if body.PlannerEventEndAt != nil {
		end = *body.PlannerEventEndAt
	}
	if !end.After(start) {
		return fiber.NewError(fiber.StatusBadRequest, "Waktu selesai harus setelah waktu mulai")
	}

	if err := ctrl.DB.Model(event).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update event")
	}
	return helper.Success(c, "Event diperbarui", dto.ToPlannerEventDTO(*event))
}

// DELETE /api/u/planner/events/:id
func (ctrl *PlannerEventController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	event, err := ctrl.findOwnedEvent(c, userID)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus event")
	}
	return helper.Success(c, "Event dihapus", nil)
}

func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
