package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acculer/ledger-pro/internal/application/dto"
	"github.com/acculer/ledger-pro/internal/application/ledger"
	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/infrastructure/memory"
)

func newDocumentUC() *ledger.DocumentUseCase {
	return ledger.NewDocumentUseCase(memory.NewDocumentRepo(), "₹")
}

func quotationRequest(items ...dto.DocumentItemRequest) dto.CreateDocumentRequest {
	return dto.CreateDocumentRequest{
		Kind:             "quotation",
		CounterpartyName: "Sree Amitra Property Developers",
		FiscalYear:       "2024-2025",
		CreatedDate:      "Mar 22, 2025",
		Items:            items,
	}
}

func TestCreateQuotation_PrimerConsecutivoYTotalDerivado(t *testing.T) {
	uc := newDocumentUC()

	doc, err := uc.Create(quotationRequest(dto.DocumentItemRequest{
		Description: "Cement", Site: "Site A", Ref: "25", Qty: "10", Rate: "200",
	}))
	require.NoError(t, err)

	assert.Equal(t, "QTN-2024-0001", doc.Number, "el primer documento del año fiscal arranca en 0001")
	assert.Equal(t, "Mar 22, 2025", doc.CreatedDate)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "2000", doc.Items[0].Amount, "amount = qty × rate")
	assert.Equal(t, "₹2000.00", doc.TotalAmount)
}

func TestCreateQuotation_ConsecutivoSigueAlMaximoExistente(t *testing.T) {
	uc := newDocumentUC()

	// Ocho documentos previos: el último queda en QTN-2024-0008.
	for i := 0; i < 8; i++ {
		_, err := uc.Create(quotationRequest(dto.DocumentItemRequest{
			Description: "Cement", Qty: "1", Rate: "100",
		}))
		require.NoError(t, err)
	}

	doc, err := uc.Create(quotationRequest(dto.DocumentItemRequest{
		Description: "Steel", Qty: "2", Rate: "500",
	}))
	require.NoError(t, err)
	assert.Equal(t, "QTN-2024-0009", doc.Number)
}

func TestCreate_CamposNoNumericosComputanComoCero(t *testing.T) {
	uc := newDocumentUC()

	doc, err := uc.Create(quotationRequest(dto.DocumentItemRequest{
		Description: "Cement", Qty: "abc", Rate: "200",
	}))
	require.NoError(t, err)
	assert.Equal(t, "0", doc.Items[0].Amount)
	assert.Equal(t, "₹0.00", doc.TotalAmount)
}

func TestCreateBill_SinConsecutivoYConAreaDerivada(t *testing.T) {
	uc := newDocumentUC()

	doc, err := uc.Create(dto.CreateDocumentRequest{
		Kind:             "bill",
		CounterpartyName: "John Doe",
		MobileNumber:     "9876543210",
		SiteName:         "Site A",
		GSTNumber:        "33ABCDE1234F1Z1",
		TaxApplicable:    true,
		Items: []dto.DocumentItemRequest{
			{Description: "Cement", Qty: "10", Length: "5", Breadth: "5", Rate: "200"},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, doc.Number, "los bills no llevan número de documento")
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "25.00", doc.Items[0].Area, "area = length × breadth")
	assert.Equal(t, "50000.00", doc.Items[0].Amount, "amount = area × qty × rate")
	assert.Equal(t, "₹50000.00", doc.TotalAmount)
}

func TestCreate_AnoFiscalInvalidoRechazado(t *testing.T) {
	uc := newDocumentUC()

	in := quotationRequest(dto.DocumentItemRequest{Description: "Cement", Qty: "1", Rate: "1"})
	in.FiscalYear = "2024-2026"

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreviewNumber_NoReservaElConsecutivo(t *testing.T) {
	uc := newDocumentUC()

	first, err := uc.PreviewNumber("quotation", "2024-2025")
	require.NoError(t, err)
	second, err := uc.PreviewNumber("quotation", "2024-2025")
	require.NoError(t, err)
	assert.Equal(t, first, second, "la vista previa no consume números")

	// Cambiar el año fiscal antes de guardar solo vuelve a derivar.
	other, err := uc.PreviewNumber("quotation", "2025-2026")
	require.NoError(t, err)
	assert.Equal(t, "QTN-2025-0001", other)
}

func TestStageUpdate_NoTocaElAlmacenHastaConfirmar(t *testing.T) {
	uc := newDocumentUC()

	doc, err := uc.Create(quotationRequest(dto.DocumentItemRequest{
		Description: "Cement", Qty: "10", Rate: "200",
	}))
	require.NoError(t, err)

	pending, err := uc.StageUpdate(doc.ID, dto.UpdateDocumentRequest{
		Items: []dto.DocumentItemRequest{{Description: "Cement", Qty: "10", Rate: "300"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "₹3000.00", pending.Preview.TotalAmount, "la vista previa ya refleja la tarifa nueva")

	// El registro guardado sigue con la tarifa vieja.
	stored, err := uc.Get(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "₹2000.00", stored.TotalAmount)

	updated, err := uc.ConfirmUpdate(pending.Token)
	require.NoError(t, err)
	assert.Equal(t, "₹3000.00", updated.TotalAmount)
	assert.Equal(t, doc.Number, updated.Number, "editar no renumera")
	assert.Equal(t, doc.CreatedDate, updated.CreatedDate, "la fecha de creación es inmutable")

	stored, err = uc.Get(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "₹3000.00", stored.TotalAmount)
}

func TestCancelUpdate_DescartaLaEdicionCompleta(t *testing.T) {
	uc := newDocumentUC()

	doc, err := uc.Create(quotationRequest(dto.DocumentItemRequest{
		Description: "Cement", Qty: "10", Rate: "200",
	}))
	require.NoError(t, err)

	pending, err := uc.StageUpdate(doc.ID, dto.UpdateDocumentRequest{
		CounterpartyName: "Otro Negocio",
		Items:            []dto.DocumentItemRequest{{Description: "Cement", Qty: "10", Rate: "999"}},
	})
	require.NoError(t, err)
	require.NoError(t, uc.CancelUpdate(pending.Token))

	stored, err := uc.Get(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sree Amitra Property Developers", stored.CounterpartyName)
	assert.Equal(t, "₹2000.00", stored.TotalAmount)

	// El token ya no sirve: ni confirmar ni volver a cancelar.
	_, err = uc.ConfirmUpdate(pending.Token)
	assert.ErrorIs(t, err, domain.ErrPendingEditExpired)
	assert.ErrorIs(t, uc.CancelUpdate(pending.Token), domain.ErrPendingEditExpired)
}

func TestConfirmUpdate_ValoresIdenticosPreservanTodo(t *testing.T) {
	uc := newDocumentUC()

	doc, err := uc.Create(quotationRequest(dto.DocumentItemRequest{
		Description: "Cement", Qty: "10", Rate: "200",
	}))
	require.NoError(t, err)

	pending, err := uc.StageUpdate(doc.ID, dto.UpdateDocumentRequest{
		CounterpartyName: doc.CounterpartyName,
		Items:            []dto.DocumentItemRequest{{Description: "Cement", Qty: "10", Rate: "200"}},
	})
	require.NoError(t, err)

	updated, err := uc.ConfirmUpdate(pending.Token)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, updated.ID)
	assert.Equal(t, doc.Number, updated.Number)
	assert.Equal(t, doc.TotalAmount, updated.TotalAmount)
}

func TestDelete_ElDocumentoDesapareceDeBusquedasYListados(t *testing.T) {
	uc := newDocumentUC()

	doc, err := uc.Create(quotationRequest(dto.DocumentItemRequest{
		Description: "Cement", Qty: "10", Rate: "200",
	}))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(doc.ID))

	_, err = uc.Get(doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	results, err := uc.Search("quotation", "sree")
	require.NoError(t, err)
	assert.Empty(t, results, "un documento eliminado no vuelve a aparecer")

	list, err := uc.List("quotation")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSearch_SubstringSinMayusculasPorCamposDelTipo(t *testing.T) {
	uc := newDocumentUC()

	_, err := uc.Create(quotationRequest(dto.DocumentItemRequest{
		Description: "Cement", Qty: "1", Rate: "1",
	}))
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateDocumentRequest{
		Kind:             "bill",
		CounterpartyName: "John Doe",
		MobileNumber:     "9876543210",
		Items:            []dto.DocumentItemRequest{{Description: "Cement", Qty: "1", Length: "1", Breadth: "1", Rate: "1"}},
	})
	require.NoError(t, err)

	byName, err := uc.Search("quotation", "SREE")
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	byNumber, err := uc.Search("quotation", "qtn-2024")
	require.NoError(t, err)
	assert.Len(t, byNumber, 1)

	// Para bills se busca por cliente y móvil, no por número.
	byMobile, err := uc.Search("bill", "98765")
	require.NoError(t, err)
	assert.Len(t, byMobile, 1)

	none, err := uc.Search("bill", "qtn")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecalculate_VistaPreviaSinGuardar(t *testing.T) {
	uc := newDocumentUC()

	preview, err := uc.Recalculate("quotation", []dto.DocumentItemRequest{
		{Description: "Cement", Qty: "10", Rate: "200"},
		{Description: "Steel", Qty: "1", Rate: "100"},
	})
	require.NoError(t, err)
	assert.Equal(t, "₹2100.00", preview.TotalAmount)
	assert.Empty(t, preview.ID, "la vista previa no crea ningún documento")

	// Quitar una línea y recalcular deja solo lo que queda.
	preview, err = uc.Recalculate("quotation", []dto.DocumentItemRequest{
		{Description: "Steel", Qty: "1", Rate: "100"},
	})
	require.NoError(t, err)
	assert.Equal(t, "₹100.00", preview.TotalAmount)

	list, err := uc.List("quotation")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_ValidacionDeCamposObligatorios(t *testing.T) {
	uc := newDocumentUC()

	_, err := uc.Create(dto.CreateDocumentRequest{
		Kind:  "quotation",
		Items: []dto.DocumentItemRequest{{Description: "Cement"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "falta el nombre de la contraparte")

	_, err = uc.Create(dto.CreateDocumentRequest{
		Kind:             "quotation",
		CounterpartyName: "X",
		FiscalYear:       "2024-2025",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "se exige al menos una línea")
}
