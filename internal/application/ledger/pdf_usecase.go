package ledger

import (
	"context"

	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/domain/repository"
)

// PDFUseCase genera el PDF de descarga de un documento.
type PDFUseCase struct {
	repo      repository.DocumentRepository
	directory repository.BusinessRepository
	generator DocumentPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando el puerto del generador.
func NewPDFUseCase(
	repo repository.DocumentRepository,
	directory repository.BusinessRepository,
	generator DocumentPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{repo: repo, directory: directory, generator: generator}
}

// DownloadDocumentPDF recupera el documento, busca la contraparte en el
// directorio (puede no estar, ej. clientes de bills) y genera el PDF.
// Retorna (pdfBytes, nombreDeArchivo, nil); el archivo se nombra con el
// número del documento, o con la contraparte cuando el tipo no lleva número.
//
// El consumidor del PDF es de una sola vía: nada de lo que pase con el
// archivo vuelve a afectar el libro.
func (uc *PDFUseCase) DownloadDocumentPDF(ctx context.Context, id string) ([]byte, string, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil || doc == nil {
		return nil, "", domain.ErrNotFound
	}

	issuer, _ := uc.directory.GetByName(doc.CounterpartyName)

	pdfBytes, err := uc.generator.GenerateDocumentPDF(ctx, doc, issuer)
	if err != nil {
		return nil, "", err
	}

	filename := doc.Number + ".pdf"
	if doc.Number == "" {
		filename = doc.CounterpartyName + "_Invoice.pdf"
	}
	return pdfBytes, filename, nil
}
