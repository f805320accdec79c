package dto

// SaveUserRequest alta o edición de un usuario del panel.
type SaveUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=superuser user"`
	Password string `json:"password,omitempty"`
}

// UserResponse usuario en listados.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
