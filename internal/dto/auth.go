package dto

// LoginRequest carries operator credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserPayload is a user stripped of its password
type UserPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse returns the authenticated user and a bearer token
type LoginResponse struct {
	User  UserPayload `json:"user"`
	Token string      `json:"token"`
}
