package ledger

import (
	"fmt"

	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/domain/entity"
	"github.com/acculer/ledger-pro/internal/domain/repository"
)

// ExportUseCase exporta el listado de documentos de un tipo a XLSX.
type ExportUseCase struct {
	repo     repository.DocumentRepository
	exporter DocumentListExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.DocumentRepository, exporter DocumentListExporter) *ExportUseCase {
	return &ExportUseCase{repo: repo, exporter: exporter}
}

// ExportDocumentList genera el XLSX con el listado completo del tipo, en
// orden de inserción. Retorna (bytes, nombreDeArchivo, nil).
func (uc *ExportUseCase) ExportDocumentList(kind string) ([]byte, string, error) {
	k := entity.DocumentKind(kind)
	if !k.Valid() {
		return nil, "", fmt.Errorf("tipo %q: %w", kind, domain.ErrInvalidInput)
	}
	docs, err := uc.repo.ListByKind(k)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportDocumentList(docs)
	if err != nil {
		return nil, "", err
	}
	return data, string(k) + "s.xlsx", nil
}
