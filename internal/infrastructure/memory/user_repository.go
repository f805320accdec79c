package memory

import (
	"strings"

	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/domain/entity"
	"github.com/acculer/ledger-pro/internal/domain/repository"
)

// UserRepo almacén de usuarios en memoria; preserva orden de inserción.
type UserRepo struct {
	users []*entity.User
}

var _ repository.UserRepository = (*UserRepo)(nil)

// NewUserRepo crea el almacén vacío.
func NewUserRepo() *UserRepo {
	return &UserRepo{}
}

func (r *UserRepo) Create(u *entity.User) error {
	if u.ID == "" {
		return domain.ErrInvalidInput
	}
	if existing, _ := r.GetByID(u.ID); existing != nil {
		return domain.ErrDuplicate
	}
	r.users = append(r.users, u)
	return nil
}

func (r *UserRepo) Update(u *entity.User) error {
	for i, cur := range r.users {
		if cur.ID == u.ID {
			r.users[i] = u
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *UserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByEmail busca por email exacto sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Search filtra por nombre o email (substring, sin mayúsculas).
func (r *UserRepo) Search(query string) ([]*entity.User, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.List()
	}
	var out []*entity.User
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out, nil
}
