package domain

// Role names a user's permission level
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User is an operator account. Passwords are stored in plain text because the
// dataset is a seeded demo; hardening the auth layer is out of scope.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Password string `json:"password,omitempty"`
}
