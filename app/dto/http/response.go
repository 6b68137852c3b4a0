package dto

import (
	"time"

	"github.com/vibast-solutions/ms-go-tasks/app/entity"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	ExpiresIn    int64  `json:"expiresIn"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Gender    string    `json:"gender"`
	Confirmed bool      `json:"confirmed"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TaskResponse struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	IsImportant bool      `json:"is_important"`
	UserID      uint64    `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewUserResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		Gender:    user.Gender,
		Confirmed: user.Confirmed,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Avatar.Valid {
		resp.Avatar = user.Avatar.String
	}
	return resp
}

func NewUserListResponse(users []*entity.User) []UserResponse {
	list := make([]UserResponse, 0, len(users))
	for _, user := range users {
		list = append(list, NewUserResponse(user))
	}
	return list
}

func NewTaskResponse(task *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Date:        task.Date,
		Status:      task.Status,
		IsImportant: task.IsImportant,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func NewTaskListResponse(tasks []*entity.Task) []TaskResponse {
	list := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		list = append(list, NewTaskResponse(task))
	}
	return list
}
