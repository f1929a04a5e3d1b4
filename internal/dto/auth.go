package dto

import "time"

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponse struct {
	TraceID   string    `json:"traceId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDTO   `json:"user"`
	View      string    `json:"view"`
}

type SessionResponse struct {
	User      UserDTO   `json:"user"`
	View      string    `json:"view"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}
