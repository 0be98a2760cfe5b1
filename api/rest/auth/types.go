package auth

import "codeberg.org/glowreview/server/glowreview/users"

// RegisterRequest for creating a local-credential account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"max=100"`
}

// LoginRequest for local sign-in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateProfileRequest for updating the display name
type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required,max=100"`
}
