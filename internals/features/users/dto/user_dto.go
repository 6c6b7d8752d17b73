// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/users/model"
)

type RegisterDTO struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=80"`
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=owner admin operator"`
}

type LoginDTO struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserActive    bool      `json:"user_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func ToUserResponse(m model.User) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserActive:    m.UserActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
