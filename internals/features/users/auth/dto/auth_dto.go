package dto

import (
	"time"

	"github.com/google/uuid"

	"afa_backend/internals/features/users/auth/model"
)

// ============================
// Requests
// ============================

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin member"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// ============================
// Responses
// ============================

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func ToUserDTO(u model.UserModel) UserDTO {
	return UserDTO{
		ID:        u.UserID,
		Name:      u.UserName,
		Email:     u.UserEmail,
		Role:      u.UserRole,
		CreatedAt: u.UserCreatedAt,
	}
}
