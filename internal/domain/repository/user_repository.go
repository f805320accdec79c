package repository

import "github.com/acculer/ledger-pro/internal/domain/entity"

// UserRepository define el puerto del almacén de usuarios.
type UserRepository interface {
	Create(u *entity.User) error
	Update(u *entity.User) error
	Delete(id string) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Search(query string) ([]*entity.User, error)
}
