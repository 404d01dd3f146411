package auth

import "errors"

const RoleAdmin = "ADMIN"

var (
	ErrInvalidInput = errors.New("invalid credentials input")
	ErrUnauthorized = errors.New("not logged in")
	ErrForbidden    = errors.New("admin only")
)

// swagger:model LoginRequest
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" example:"ana@example.com"`
	Password        string `json:"password"        example:"secret"`
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username"           example:"ana"`
	Email    string `json:"email"              example:"ana@example.com"`
	Password string `json:"password"           example:"secret"`
	AdminKey string `json:"adminKey,omitempty"`
}

// User is the profile kept next to the token.
// swagger:model User
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Identity is a logged-in session.
type Identity struct {
	Token string
	User  User
}

func (i Identity) IsAdmin() bool {
	return i.Token != "" && i.User.Role == RoleAdmin
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Error is an auth failure with the message shown to the user.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }
