package repository

import "github.com/acculer/ledger-pro/internal/domain/entity"

// BusinessRepository define el puerto del directorio de negocios.
type BusinessRepository interface {
	Create(b *entity.Business) error
	Update(b *entity.Business) error
	Delete(id string) error
	GetByID(id string) (*entity.Business, error)
	// GetByName busca por nombre exacto (lookup del bloque de dirección).
	GetByName(name string) (*entity.Business, error)
	GetByGSTNumber(gst string) (*entity.Business, error)
	List(status string) ([]*entity.Business, error) // status vacío = todos
	Search(query string) ([]*entity.Business, error)
}
