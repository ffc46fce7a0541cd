package handler

import "github.com/counterapp/counter-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// JSON field names are camelCase throughout: the React frontend predates this
// backend and its forms submit firstName/lastName.

type signupRequest struct {
	Username  string `json:"username"  validate:"required,min=3"`
	Password  string `json:"password"  validate:"required,min=6"`
	Email     string `json:"email"     validate:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
