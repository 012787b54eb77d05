package service

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"belajarku_backend/internals/configs"
	authDTO "belajarku_backend/internals/features/users/auth/dto"
	authModel "belajarku_backend/internals/features/users/auth/model"
	userDTO "belajarku_backend/internals/features/users/user/dto"
	userModel "belajarku_backend/internals/features/users/user/model"
	helper "belajarku_backend/internals/helpers"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName: body.UserName,
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", userDTO.ToUserDTO(user))
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(body.Email))).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, refresh, err := IssueTokens(db, c, user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	setRefreshCookie(c, refresh)
	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user":         userDTO.ToUserDTO(user),
	})
}

// ========================== LOGIN GOOGLE ==========================
// POST /api/auth/login-google
// Verifikasi ID token Google di sisi server, buat user kalau belum ada.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.LoginGoogleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Gagal decode ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	var user userModel.UserModel
	err = db.First(&user, "google_id = ? OR email = ?", claimSet.Sub, email).Error
	if err == gorm.ErrRecordNotFound {
		sub := claimSet.Sub
		name := claimSet.Name
		if name == "" {
			name = strings.Split(email, "@")[0]
		}
		user = userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: "-", // akun google tidak punya password lokal
			GoogleID: &sub,
			FullName: &name,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("[ERROR] Gagal membuat user google: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	access, refresh, err := IssueTokens(db, c, user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	setRefreshCookie(c, refresh)
	return helper.Success(c, "Login Google berhasil", fiber.Map{
		"access_token": access,
		"user":         userDTO.ToUserDTO(user),
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout — blacklist access token yang sedang dipakai
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw, _ := c.Locals("raw_token").(string)
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Tidak ada token aktif")
	}

	entry := authModel.TokenBlacklistModel{
		Token:     raw,
		ExpiredAt: time.Now().Add(accessTTLDefault),
	}
	if err := db.Create(&entry).Error; err != nil {
		// token sudah pernah di-blacklist → anggap sukses
		log.Printf("[INFO] Blacklist insert: %v", err)
	}

	// revoke semua refresh token milik user (best effort)
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		now := time.Now().UTC()
		_ = db.Model(&authModel.RefreshTokenModel{}).
			Where("user_id = ? AND revoked_at IS NULL", userID).
			Update("revoked_at", now).Error
	}

	c.ClearCookie("refresh_token")
	return helper.Success(c, "Logout berhasil", nil)
}

// ========================== CHANGE PASSWORD ==========================
// POST /api/auth/change-password
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body authDTO.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.OldPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}
	if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update password")
	}

	return helper.Success(c, "Password berhasil diubah", nil)
}
