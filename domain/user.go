package domain

import (
	"errors"
)

var (
	MessageSuccessRegister      = "signup successful"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetUser       = "user retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessGetProfile    = "profile retrieved successfully"

	MessageFailedRegister      = "signup failed"
	MessageFailedLogin         = "login failed"
	MessageFailedGetUser       = "failed to get user details"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedGetProfile    = "failed to get profile"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	UpdateProfileRequest struct {
		FirstName   string `json:"first_name" validate:"required"`
		LastName    string `json:"last_name" validate:"required"`
		Address     string `json:"address" validate:"required"`
		PhoneNumber string `json:"phone_number" validate:"required,numeric"`
	}

	UserResponse struct {
		ID              string `json:"id"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Email           string `json:"email"`
		Address         string `json:"address,omitempty"`
		PhoneNumber     string `json:"phone_number,omitempty"`
		RequiresProfile bool   `json:"requires_profile"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
