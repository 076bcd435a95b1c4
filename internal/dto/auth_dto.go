package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse matches what the SPA persists in its session storage:
// the bearer token plus the identity it gates menus and actions with.
type LoginResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=4"`
	Password string `json:"password" validate:"required,min=8"`
	// Roles is optional; new self-registered accounts default to VENDEDOR.
	Roles []string `json:"roles" validate:"omitempty,dive,required"`
}

// SesionResponse is returned by GET /auth/validate-token.
type SesionResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}
