package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/domain/entity"
	"github.com/acculer/ledger-pro/internal/infrastructure/memory"
)

func quotation(id, name, number string) *entity.Document {
	return &entity.Document{
		ID:               id,
		Kind:             entity.KindQuotation,
		CounterpartyName: name,
		Number:           number,
		FiscalYear:       "2024-2025",
		TotalAmount:      decimal.NewFromInt(2000),
	}
}

func TestDocumentRepo_PreservaOrdenDeInsercion(t *testing.T) {
	repo := memory.NewDocumentRepo()

	require.NoError(t, repo.Create(quotation("a", "Alpha", "QTN-2024-0001")))
	require.NoError(t, repo.Create(quotation("b", "Beta", "QTN-2024-0002")))
	require.NoError(t, repo.Create(quotation("c", "Gamma", "QTN-2024-0003")))

	// Eliminar del medio no reordena al resto.
	require.NoError(t, repo.Delete("b"))
	docs, err := repo.ListByKind(entity.KindQuotation)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "c", docs[1].ID)
}

func TestDocumentRepo_NumbersSoloDelTipo(t *testing.T) {
	repo := memory.NewDocumentRepo()

	require.NoError(t, repo.Create(quotation("a", "Alpha", "QTN-2024-0001")))
	inv := quotation("b", "Beta", "INV-2024-0001")
	inv.Kind = entity.KindInvoice
	require.NoError(t, repo.Create(inv))
	bill := quotation("c", "John Doe", "")
	bill.Kind = entity.KindBill
	require.NoError(t, repo.Create(bill))

	numbers, err := repo.Numbers(entity.KindQuotation)
	require.NoError(t, err)
	assert.Equal(t, []string{"QTN-2024-0001"}, numbers)

	numbers, err = repo.Numbers(entity.KindBill)
	require.NoError(t, err)
	assert.Empty(t, numbers, "los bills no aportan números al asignador")
}

func TestDocumentRepo_SearchPorCamposDelTipo(t *testing.T) {
	repo := memory.NewDocumentRepo()

	require.NoError(t, repo.Create(quotation("a", "Sree Amitra", "QTN-2024-0008")))
	bill := quotation("b", "John Doe", "")
	bill.Kind = entity.KindBill
	bill.MobileNumber = "9876543210"
	require.NoError(t, repo.Create(bill))

	found, err := repo.Search(entity.KindQuotation, "0008")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.Search(entity.KindBill, "9876")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.Search(entity.KindBill, "doe")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	// Query vacío devuelve el listado completo del tipo.
	found, err = repo.Search(entity.KindQuotation, "  ")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestDocumentRepo_ErroresDeAlmacen(t *testing.T) {
	repo := memory.NewDocumentRepo()

	require.NoError(t, repo.Create(quotation("a", "Alpha", "QTN-2024-0001")))
	assert.ErrorIs(t, repo.Create(quotation("a", "Alpha", "QTN-2024-0002")), domain.ErrDuplicate)

	_, err := repo.GetByID("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("nope"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(quotation("nope", "X", "QTN-2024-0009")), domain.ErrNotFound)
}

func TestSeed_CargaDocumentosDirectorioYUsuarios(t *testing.T) {
	docs := memory.NewDocumentRepo()
	businesses := memory.NewBusinessRepo()
	users := memory.NewUserRepo()

	require.NoError(t, memory.Seed(docs, businesses, users))

	numbers, err := docs.Numbers(entity.KindQuotation)
	require.NoError(t, err)
	assert.Equal(t, []string{"QTN-2024-0008"}, numbers)

	bills, err := docs.ListByKind(entity.KindBill)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.True(t, bills[0].TotalAmount.Equal(decimal.NewFromInt(50000)),
		"el total sembrado se deriva de las líneas")

	b, err := businesses.GetByName("7 Crafts Contracting P Ltd")
	require.NoError(t, err)
	assert.Contains(t, b.AddressLines(), "GSTIN: 33AABCZ3641G1ZI")

	u, err := users.GetByEmail("info@acculermedia.in")
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleSuperuser, u.Role)
}
