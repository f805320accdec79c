package ledger

import (
	"context"

	"github.com/acculer/ledger-pro/internal/domain/entity"
)

// DocumentPDFGenerator puerto del generador de PDF (adaptador Maroto).
// issuer puede ser nil cuando la contraparte no está en el directorio
// (típico en bills, donde la contraparte es un cliente suelto).
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc *entity.Document, issuer *entity.Business) ([]byte, error)
}

// DocumentListExporter puerto del exportador de listados (adaptador XLSX).
type DocumentListExporter interface {
	ExportDocumentList(docs []*entity.Document) ([]byte, error)
}
