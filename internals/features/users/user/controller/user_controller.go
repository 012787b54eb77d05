package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/users/user/dto"
	"belajarku_backend/internals/features/users/user/model"
	helper "belajarku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/u/profile
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "Profil ditemukan", dto.ToUserDTO(user))
}

// PUT /api/u/profile
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if body.UserName != nil {
		updates["user_name"] = *body.UserName
	}
	if body.FullName != nil {
		updates["full_name"] = *body.FullName
	}
	if body.SchoolName != nil {
		updates["school_name"] = *body.SchoolName
	}
	if body.Major != nil {
		updates["major"] = *body.Major
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Gagal update profil: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update profil")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil profil")
	}

	return helper.Success(c, "Profil berhasil diperbarui", dto.ToUserDTO(user))
}
