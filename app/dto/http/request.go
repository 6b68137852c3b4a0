package dto

import "time"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Gender   string `json:"gender" validate:"omitempty,oneof=M F"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ConfirmAccountRequest struct {
	Token string `json:"token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	ResetToken string `json:"reset_token" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
}

type RefreshTokenRequest struct {
	UID   uint64 `json:"uid" validate:"required"`
	Token string `json:"token" validate:"required"`
}

type CreateTaskRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,oneof=Pending Working Done"`
	IsImportant bool      `json:"is_important"`
}

// UpdateTaskRequest carries partial updates; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description" validate:"omitempty,min=1"`
	Date        *time.Time `json:"date"`
	Status      *string    `json:"status" validate:"omitempty,oneof=Pending Working Done"`
	IsImportant *bool      `json:"is_important"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Username *string `json:"username" validate:"omitempty,min=3"`
	Gender   *string `json:"gender" validate:"omitempty,oneof=M F"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
