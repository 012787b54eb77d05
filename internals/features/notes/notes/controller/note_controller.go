package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
	"belajarku_backend/internals/features/notes/notes/dto"
	"belajarku_backend/internals/features/notes/notes/model"
	helper "belajarku_backend/internals/helpers"
)

type NoteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNoteController(db *gorm.DB) *NoteController {
	return &NoteController{DB: db, Validate: validator.New()}
}

func (ctrl *NoteController) findOwnedNote(c *fiber.Ctx, userID uuid.UUID) (*model.NoteModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Note ID tidak valid")
	}
	var note model.NoteModel
	if err := ctrl.DB.
		First(&note, "note_id = ? AND note_user_id = ?", id, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Catatan tidak ditemukan")
	}
	return &note, nil
}

// GET /api/u/notes?course_id=&tag=&kind=
func (ctrl *NoteController) GetAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NoteModel{}).Where("note_user_id = ?", userID)
	if raw := c.Query("course_id"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
		}
		q = q.Where("note_course_id = ?", courseID)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("? = ANY(note_tags)", tag)
	}
	if kind := c.Query("kind"); kind != "" {
		q = q.Where("note_kind = ?", kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hitung catatan")
	}

	var notes []model.NoteModel
	if err := q.Order("note_updated_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&notes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil catatan")
	}

	out := make([]dto.NoteDTO, 0, len(notes))
	for _, note := range notes {
		out = append(out, dto.ToNoteDTO(note))
	}
	return helper.Success(c, "OK", fiber.Map{
		"notes":      out,
		"pagination": helper.BuildPagination(total, p, len(out)),
	})
}

// GET /api/u/notes/:id
func (ctrl *NoteController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	note, err := ctrl.findOwnedNote(c, userID)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", dto.ToNoteDTO(*note))
}

// POST /api/u/notes
func (ctrl *NoteController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateNoteRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	note := model.NoteModel{
		NoteUserID:  userID,
		NoteTitle:   body.NoteTitle,
		NoteContent: body.NoteContent,
		NoteTags:    pq.StringArray(normalizeTags(body.NoteTags)),
		NoteKind:    "personal",
	}
	if body.NoteCourseID != nil {
		courseID, err := uuid.Parse(*body.NoteCourseID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
		}
		var course courseModel.StudentCourseModel
		if err := ctrl.DB.
			First(&course, "student_course_id = ? AND student_course_user_id = ?", courseID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
		}
		note.NoteCourseID = &courseID
	}

	if err := ctrl.DB.Create(&note).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat catatan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Catatan dibuat", dto.ToNoteDTO(note))
}

// PUT /api/u/notes/:id — catatan advisory sistem tidak bisa diedit
func (ctrl *NoteController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	note, err := ctrl.findOwnedNote(c, userID)
	if err != nil {
		return err
	}
	if note.NoteIsSystem {
		return fiber.NewError(fiber.StatusForbidden, "Catatan sistem tidak bisa diubah")
	}

	var body dto.UpdateNoteRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if body.NoteTitle != nil {
		updates["note_title"] = *body.NoteTitle
	}
	if body.NoteContent != nil {
		updates["note_content"] = *body.NoteContent
	}
	if body.NoteTags != nil {
		updates["note_tags"] = pq.StringArray(normalizeTags(body.NoteTags))
	}
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", dto.ToNoteDTO(*note))
	}

	if err := ctrl.DB.Model(note).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update catatan")
	}
	return helper.Success(c, "Catatan diperbarui", dto.ToNoteDTO(*note))
}

// DELETE /api/u/notes/:id — catatan sistem boleh dihapus (dismiss advisory)
func (ctrl *NoteController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	note, err := ctrl.findOwnedNote(c, userID)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(note).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus catatan")
	}
	return helper.Success(c, "Catatan dihapus", nil)
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
