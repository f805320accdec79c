// Package memory adaptadores de almacén en memoria. La colección vive en el
// proceso: un solo operador, un solo goroutine dueño; sin locks ni
// persistencia.
package memory

import (
	"strings"

	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/domain/entity"
	"github.com/acculer/ledger-pro/internal/domain/repository"
)

// DocumentRepo almacén en memoria de documentos; preserva orden de inserción.
type DocumentRepo struct {
	docs []*entity.Document
}

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// NewDocumentRepo crea el almacén vacío.
func NewDocumentRepo() *DocumentRepo {
	return &DocumentRepo{}
}

// Create agrega el documento al final de la colección.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	if doc.ID == "" {
		return domain.ErrInvalidInput
	}
	if existing, _ := r.GetByID(doc.ID); existing != nil {
		return domain.ErrDuplicate
	}
	r.docs = append(r.docs, doc)
	return nil
}

// Update reemplaza el registro con el mismo ID conservando su posición.
func (r *DocumentRepo) Update(doc *entity.Document) error {
	for i, d := range r.docs {
		if d.ID == doc.ID {
			r.docs[i] = doc
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete retira el documento; el resto conserva su orden relativo.
func (r *DocumentRepo) Delete(id string) error {
	for i, d := range r.docs {
		if d.ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// GetByID busca por identificador.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	for _, d := range r.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListByKind lista los documentos del tipo en orden de inserción.
func (r *DocumentRepo) ListByKind(kind entity.DocumentKind) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.docs {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out, nil
}

// Numbers devuelve los números existentes del tipo, insumo del asignador.
func (r *DocumentRepo) Numbers(kind entity.DocumentKind) ([]string, error) {
	var out []string
	for _, d := range r.docs {
		if d.Kind == kind && d.Number != "" {
			out = append(out, d.Number)
		}
	}
	return out, nil
}

// Search filtra por substring sin distinguir mayúsculas. Para cotizaciones y
// facturas los campos de búsqueda son contraparte y número; para bills,
// cliente y móvil. Query vacío devuelve el listado completo del tipo.
func (r *DocumentRepo) Search(kind entity.DocumentKind, query string) ([]*entity.Document, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.ListByKind(kind)
	}
	var out []*entity.Document
	for _, d := range r.docs {
		if d.Kind != kind {
			continue
		}
		if matchesDocument(d, q) {
			out = append(out, d)
		}
	}
	return out, nil
}

func matchesDocument(d *entity.Document, q string) bool {
	if strings.Contains(strings.ToLower(d.CounterpartyName), q) {
		return true
	}
	if d.Kind == entity.KindBill {
		return strings.Contains(strings.ToLower(d.MobileNumber), q)
	}
	return strings.Contains(strings.ToLower(d.Number), q)
}
