package memory

import (
	"strings"

	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/domain/entity"
	"github.com/acculer/ledger-pro/internal/domain/repository"
)

// BusinessRepo directorio de negocios en memoria; preserva orden de inserción.
type BusinessRepo struct {
	businesses []*entity.Business
}

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// NewBusinessRepo crea el directorio vacío.
func NewBusinessRepo() *BusinessRepo {
	return &BusinessRepo{}
}

func (r *BusinessRepo) Create(b *entity.Business) error {
	if b.ID == "" {
		return domain.ErrInvalidInput
	}
	if existing, _ := r.GetByID(b.ID); existing != nil {
		return domain.ErrDuplicate
	}
	r.businesses = append(r.businesses, b)
	return nil
}

func (r *BusinessRepo) Update(b *entity.Business) error {
	for i, cur := range r.businesses {
		if cur.ID == b.ID {
			r.businesses[i] = b
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *BusinessRepo) Delete(id string) error {
	for i, b := range r.businesses {
		if b.ID == id {
			r.businesses = append(r.businesses[:i], r.businesses[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	for _, b := range r.businesses {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByName busca por nombre exacto (lookup del bloque de dirección).
func (r *BusinessRepo) GetByName(name string) (*entity.Business, error) {
	for _, b := range r.businesses {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BusinessRepo) GetByGSTNumber(gst string) (*entity.Business, error) {
	if gst == "" {
		return nil, domain.ErrNotFound
	}
	for _, b := range r.businesses {
		if b.GSTNumber == gst {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List lista negocios; status vacío devuelve todos.
func (r *BusinessRepo) List(status string) ([]*entity.Business, error) {
	var out []*entity.Business
	for _, b := range r.businesses {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

// Search filtra por nombre, contacto o email (substring, sin mayúsculas).
func (r *BusinessRepo) Search(query string) ([]*entity.Business, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.List("")
	}
	var out []*entity.Business
	for _, b := range r.businesses {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.ContactName), q) ||
			strings.Contains(strings.ToLower(b.Email), q) {
			out = append(out, b)
		}
	}
	return out, nil
}
