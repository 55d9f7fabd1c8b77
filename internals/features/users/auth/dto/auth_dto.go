package dto

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserSnapshot `json:"user"`
}

type UserSnapshot struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
