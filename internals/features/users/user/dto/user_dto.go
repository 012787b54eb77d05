package dto

import (
	"time"

	"belajarku_backend/internals/features/users/user/model"
)

// ====================
// Response DTO
// ====================
type UserDTO struct {
	ID         string    `json:"id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	FullName   *string   `json:"full_name,omitempty"`
	SchoolName *string   `json:"school_name,omitempty"`
	Major      *string   `json:"major,omitempty"`
	IsPremium  bool      `json:"is_premium"`
	CreatedAt  time.Time `json:"created_at"`
}

// ====================
// Request DTO
// ====================
type UpdateProfileRequest struct {
	UserName   *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	FullName   *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	SchoolName *string `json:"school_name,omitempty" validate:"omitempty,max=100"`
	Major      *string `json:"major,omitempty" validate:"omitempty,max=100"`
}

// ====================
// Converter
// ====================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:         m.ID.String(),
		UserName:   m.UserName,
		Email:      m.Email,
		FullName:   m.FullName,
		SchoolName: m.SchoolName,
		Major:      m.Major,
		IsPremium:  m.IsPremium,
		CreatedAt:  m.CreatedAt,
	}
}
