package entity

import "time"

// Roles y estados de usuario.
const (
	UserRoleSuperuser = "superuser"
	UserRoleUser      = "user"

	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User usuario del panel de administración.
// Password se guarda tal cual viene de la semilla; no hay autenticación.
type User struct {
	ID        string
	Name      string
	Email     string
	Mobile    string
	Role      string // superuser | user
	Status    string // active | inactive
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
