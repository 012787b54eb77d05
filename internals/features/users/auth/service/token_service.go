package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/configs"
	authModel "belajarku_backend/internals/features/users/auth/model"
	userModel "belajarku_backend/internals/features/users/user/model"
	helper "belajarku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 7 * 24 * time.Hour
)

// buildAccessClaims menyusun claims access token dari data user
func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":         u.ID.String(),
		"user_name":  u.UserName,
		"is_premium": u.IsPremium,
		"iat":        now.Unix(),
		"exp":        now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// computeRefreshHash: HMAC-SHA256 supaya refresh token tidak tersimpan plaintext
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// IssueTokens membuat pasangan access+refresh dan menyimpan hash refresh-nya.
func IssueTokens(db *gorm.DB, c *fiber.Ctx, u userModel.UserModel) (access, refresh string, err error) {
	now := time.Now().UTC()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.ID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	rt := authModel.RefreshTokenModel{
		UserID:    u.ID,
		TokenHash: computeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshRaw := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshRaw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refreshRaw = strings.TrimSpace(body.RefreshToken)
	}
	if refreshRaw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	tok, err := jwt.Parse(refreshRaw, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh masih aktif di DB
	hash := computeRefreshHash(refreshRaw, configs.JWTRefreshSecret)
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&rt).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama, terbitkan pasangan baru
	now := time.Now().UTC()
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("id = ?", rt.ID).
		Update("revoked_at", now).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal rotasi refresh token")
	}

	access, refresh, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal buat token baru")
	}

	setRefreshCookie(c, refresh)
	return helper.Success(c, "Token diperbarui", fiber.Map{
		"access_token": access,
	})
}

func setRefreshCookie(c *fiber.Ctx, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
		Expires:  time.Now().Add(refreshTTLDefault),
	})
}

// IsTokenBlacklisted dipakai middleware AuthJWT
func IsTokenBlacklisted(db *gorm.DB) func(string) (bool, error) {
	return func(raw string) (bool, error) {
		var count int64
		err := db.Model(&authModel.TokenBlacklistModel{}).
			Where("token = ? AND deleted_at IS NULL", raw).
			Count(&count).Error
		return count > 0, err
	}
}
