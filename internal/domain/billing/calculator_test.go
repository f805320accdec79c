package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/acculer/ledger-pro/internal/domain/billing"
	"github.com/acculer/ledger-pro/internal/domain/entity"
)

// TestComputeSimple_QtyPorRate: línea simple, Amount = Qty × Rate.
func TestComputeSimple_QtyPorRate(t *testing.T) {
	item := billing.ComputeSimple(billing.SimpleInput{
		Description: "Cement",
		Qty:         "10",
		Rate:        "200",
	})
	assert.True(t, item.Amount.Equal(decimal.NewFromInt(2000)),
		"10 × 200 debe dar 2000, no %s", item.Amount)
}

// TestComputeSimple_CamposNoNumericos: campos vacíos o ilegibles computan
// como cero en vez de fallar; el formulario sigue usable a medio llenar.
func TestComputeSimple_CamposNoNumericos(t *testing.T) {
	cases := []struct {
		name      string
		qty, rate string
	}{
		{"qty vacío", "", "200"},
		{"rate vacío", "10", ""},
		{"qty no numérico", "diez", "200"},
		{"rate no numérico", "10", "200abc"},
		{"ambos ilegibles", "x", "y"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := billing.ComputeSimple(billing.SimpleInput{Qty: tc.qty, Rate: tc.rate})
			assert.True(t, item.Amount.IsZero(),
				"un campo ilegible computa como 0, obtuvo %s", item.Amount)
		})
	}
}

// TestComputeMeasured_AreaPorQtyPorRate: Area = Length × Breadth y
// Amount = Area × Qty × Rate, ambos a 2 decimales.
func TestComputeMeasured_AreaPorQtyPorRate(t *testing.T) {
	item := billing.ComputeMeasured(billing.MeasuredInput{
		Description: "Cement",
		Qty:         "10",
		Length:      "5",
		Breadth:     "5",
		Rate:        "200",
	})
	assert.True(t, item.Area.Equal(decimal.NewFromInt(25)), "área 5×5 = 25, obtuvo %s", item.Area)
	assert.True(t, item.Amount.Equal(decimal.NewFromInt(50000)),
		"25 × 10 × 200 = 50000, obtuvo %s", item.Amount)
}

func TestComputeMeasured_RedondeoADosDecimales(t *testing.T) {
	item := billing.ComputeMeasured(billing.MeasuredInput{
		Qty:     "1",
		Length:  "1.111",
		Breadth: "1.111",
		Rate:    "1",
	})
	// 1.111 × 1.111 = 1.234321 → 1.23
	assert.Equal(t, "1.23", item.Area.String())
	assert.Equal(t, "1.23", item.Amount.String())
}

// TestTotal_SumaRedondeada: el total del documento es la suma de los montos
// de las líneas redondeada a 2 decimales, recalculada tras cualquier cambio.
func TestTotal_SumaRedondeada(t *testing.T) {
	items := []entity.DocumentItem{
		billing.ComputeSimple(billing.SimpleInput{Qty: "10", Rate: "200"}),
		billing.ComputeSimple(billing.SimpleInput{Qty: "3", Rate: "33.335"}),
	}
	// 2000 + 100.005 = 2100.005 → 2100.01 (redondeo half-up)
	assert.Equal(t, "2100.01", billing.Total(items).String())
}

// TestTotal_QuitarLinea: remover una línea dispara el recálculo del agregado.
func TestTotal_QuitarLinea(t *testing.T) {
	items := []entity.DocumentItem{
		billing.ComputeSimple(billing.SimpleInput{Qty: "10", Rate: "200"}),
		billing.ComputeSimple(billing.SimpleInput{Qty: "5", Rate: "100"}),
	}
	assert.Equal(t, "2500.00", billing.Total(items).StringFixed(2))

	items = items[:1]
	assert.Equal(t, "2000.00", billing.Total(items).StringFixed(2))
}

func TestTotal_SinLineas(t *testing.T) {
	assert.True(t, billing.Total(nil).IsZero())
}

// TestFormatMoney: símbolo + dos decimales fijos, sin separador de miles.
func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹2000.00", billing.FormatMoney("₹", decimal.NewFromInt(2000)))
	assert.Equal(t, "₹3000.00", billing.FormatMoney("₹", decimal.NewFromInt(3000)))
}
