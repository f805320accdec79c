package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acculer/ledger-pro/internal/application/dto"
	"github.com/acculer/ledger-pro/internal/application/ledger"
	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/infrastructure/excel"
	"github.com/acculer/ledger-pro/internal/infrastructure/memory"
	"github.com/acculer/ledger-pro/internal/infrastructure/pdf"
)

func TestDownloadDocumentPDF_NombreDeArchivoPorTipo(t *testing.T) {
	docRepo := memory.NewDocumentRepo()
	businessRepo := memory.NewBusinessRepo()
	docUC := ledger.NewDocumentUseCase(docRepo, "₹")
	pdfUC := ledger.NewPDFUseCase(docRepo, businessRepo, pdf.NewMarotoPDFGenerator("₹"))

	quotation, err := docUC.Create(dto.CreateDocumentRequest{
		Kind:             "quotation",
		CounterpartyName: "Sree Amitra Property Developers",
		FiscalYear:       "2024-2025",
		Items:            []dto.DocumentItemRequest{{Description: "Cement", Qty: "10", Rate: "200"}},
	})
	require.NoError(t, err)

	data, filename, err := pdfUC.DownloadDocumentPDF(context.Background(), quotation.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "QTN-2024-0001.pdf", filename, "el archivo toma el número del documento")

	bill, err := docUC.Create(dto.CreateDocumentRequest{
		Kind:             "bill",
		CounterpartyName: "John Doe",
		MobileNumber:     "9876543210",
		Items:            []dto.DocumentItemRequest{{Description: "Cement", Qty: "10", Length: "5", Breadth: "5", Rate: "200"}},
	})
	require.NoError(t, err)

	data, filename, err = pdfUC.DownloadDocumentPDF(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "John Doe_Invoice.pdf", filename, "sin número, el archivo toma la contraparte")

	_, _, err = pdfUC.DownloadDocumentPDF(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportDocumentList_NombreDeArchivoYBytes(t *testing.T) {
	docRepo := memory.NewDocumentRepo()
	docUC := ledger.NewDocumentUseCase(docRepo, "₹")
	exportUC := ledger.NewExportUseCase(docRepo, excel.NewExcelizeExporter("₹"))

	_, err := docUC.Create(dto.CreateDocumentRequest{
		Kind:             "invoice",
		CounterpartyName: "Sree Amitra Property Developers",
		FiscalYear:       "2024-2025",
		Items:            []dto.DocumentItemRequest{{Description: "Cement", Qty: "10", Rate: "200"}},
	})
	require.NoError(t, err)

	data, filename, err := exportUC.ExportDocumentList("invoice")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "invoices.xlsx", filename)

	_, _, err = exportUC.ExportDocumentList("recibo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
