package repository

import "github.com/acculer/ledger-pro/internal/domain/entity"

// DocumentRepository define el puerto del almacén de documentos.
// La colección preserva el orden de inserción; Search es una transformación
// de solo lectura y nunca muta la colección.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	// Update reemplaza el registro con el mismo ID (los campos ya vienen
	// fusionados por el caso de uso; ID y Number nunca cambian aquí).
	Update(doc *entity.Document) error
	Delete(id string) error
	GetByID(id string) (*entity.Document, error)
	ListByKind(kind entity.DocumentKind) ([]*entity.Document, error)
	// Numbers devuelve los números existentes del tipo (insumo del asignador
	// de consecutivos).
	Numbers(kind entity.DocumentKind) ([]string, error)
	// Search filtra por substring (sin distinguir mayúsculas) sobre los campos
	// de búsqueda propios del tipo: nombre del negocio y número para
	// cotizaciones/facturas, nombre del cliente y móvil para bills.
	Search(kind entity.DocumentKind, query string) ([]*entity.Document, error)
}
