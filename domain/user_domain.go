package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessGetUsers = "users retrieved successfully"
	MessageSuccessGetMe    = "user retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedGetUsers = "failed to retrieve users"
	MessageFailedGetMe    = "failed to retrieve user"

	ErrUserAlreadyExists = errors.New("this user already exists")
	ErrUserNotFound      = errors.New("user not found")
)

type (
	RegisterUserRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}

	RegisterUserResponse struct {
		User         UserResponse `json:"user"`
		SessionToken string       `json:"-"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}
)
