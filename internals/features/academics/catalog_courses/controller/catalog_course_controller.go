package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/academics/catalog_courses/dto"
	"belajarku_backend/internals/features/academics/catalog_courses/model"
	helper "belajarku_backend/internals/helpers"
)

type CatalogCourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCatalogCourseController(db *gorm.DB) *CatalogCourseController {
	return &CatalogCourseController{DB: db, Validate: validator.New()}
}

// GET /api/public/catalog-courses?search=
func (ctrl *CatalogCourseController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CatalogCourseModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(catalog_course_code) LIKE ? OR LOWER(catalog_course_title) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hitung katalog")
	}

	var courses []model.CatalogCourseModel
	if err := q.Order("catalog_course_code ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil katalog")
	}

	out := make([]dto.CatalogCourseDTO, 0, len(courses))
	for _, course := range courses {
		out = append(out, dto.ToCatalogCourseDTO(course))
	}
	return helper.Success(c, "OK", fiber.Map{
		"courses":    out,
		"pagination": helper.BuildPagination(total, p, len(out)),
	})
}

// GET /api/public/catalog-courses/:id — termasuk prasyarat satu level
func (ctrl *CatalogCourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Catalog ID tidak valid")
	}

	var course model.CatalogCourseModel
	if err := ctrl.DB.Preload("Prerequisites").
		First(&course, "catalog_course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Mata kuliah katalog tidak ditemukan")
	}

	return helper.Success(c, "OK", dto.ToCatalogCourseDTO(course))
}

// POST /api/u/catalog-courses
func (ctrl *CatalogCourseController) Create(c *fiber.Ctx) error {
	var body dto.CreateCatalogCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.CatalogCourseModel{
		CatalogCourseCode:        strings.ToUpper(strings.TrimSpace(body.CatalogCourseCode)),
		CatalogCourseTitle:       body.CatalogCourseTitle,
		CatalogCourseDescription: body.CatalogCourseDescription,
		CatalogCourseCreditHours: body.CatalogCourseCreditHours,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat katalog: %v", err)
		return fiber.NewError(fiber.StatusConflict, "Kode mata kuliah sudah dipakai")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Katalog dibuat", dto.ToCatalogCourseDTO(course))
}

// PUT /api/u/catalog-courses/:id — kode tidak bisa diganti setelah dibuat
func (ctrl *CatalogCourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Catalog ID tidak valid")
	}

	var body dto.UpdateCatalogCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CatalogCourseModel
	if err := ctrl.DB.First(&course, "catalog_course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Mata kuliah katalog tidak ditemukan")
	}

	updates := map[string]any{}
	if body.CatalogCourseTitle != nil {
		updates["catalog_course_title"] = *body.CatalogCourseTitle
	}
	if body.CatalogCourseDescription != nil {
		updates["catalog_course_description"] = *body.CatalogCourseDescription
	}
	if body.CatalogCourseCreditHours != nil {
		updates["catalog_course_credit_hours"] = *body.CatalogCourseCreditHours
	}
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", dto.ToCatalogCourseDTO(course))
	}

	if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update katalog")
	}
	return helper.Success(c, "Katalog diperbarui", dto.ToCatalogCourseDTO(course))
}

// DELETE /api/u/catalog-courses/:id
// Enrollment yang sudah menunjuk katalog ini tetap utuh (link opsional).
func (ctrl *CatalogCourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Catalog ID tidak valid")
	}

	var course model.CatalogCourseModel
	if err := ctrl.DB.First(&course, "catalog_course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Mata kuliah katalog tidak ditemukan")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&course).Association("Prerequisites").Clear(); err != nil {
			return err
		}
		return tx.Delete(&course).Error
	}); err != nil {
		log.Printf("[ERROR] Gagal hapus katalog %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus katalog")
	}
	return helper.Success(c, "Katalog dihapus", nil)
}

// POST /api/u/catalog-courses/:id/prerequisites
func (ctrl *CatalogCourseController) AddPrerequisite(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Catalog ID tidak valid")
	}

	var body dto.AddPrerequisiteRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	requiresID, _ := uuid.Parse(body.RequiresCourseID)
	if requiresID == id {
		return fiber.NewError(fiber.StatusBadRequest, "Mata kuliah tidak bisa jadi prasyarat dirinya sendiri")
	}

	var course, requires model.CatalogCourseModel
	if err := ctrl.DB.First(&course, "catalog_course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Mata kuliah katalog tidak ditemukan")
	}
	if err := ctrl.DB.First(&requires, "catalog_course_id = ?", requiresID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Mata kuliah prasyarat tidak ditemukan")
	}

	if err := ctrl.DB.Model(&course).Association("Prerequisites").Append(&requires); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah prasyarat")
	}

	return helper.Success(c, "Prasyarat ditambahkan", nil)
}
