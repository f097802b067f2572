package api

import "github.com/omegapc/omegacms/internal/models"

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// ChatRequest is the request body for POST /chat.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ChatResponse carries the assistant reply.
type ChatResponse struct {
	SessionID string             `json:"sessionId"`
	Reply     models.ChatMessage `json:"reply"`
}

// MediaUploadResponse is returned after a successful media upload.
type MediaUploadResponse struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}
