package api

import (
	"github.com/brainiacs-dev/brainiacs/internal/domain"
)

// Request DTOs

type RegisterUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

// Response DTOs

type UserResponse struct {
	domain.User
}

type UserListResponse struct {
	Users []domain.User `json:"users"`
}
