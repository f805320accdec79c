// Package billing implementa el cálculo de montos derivados de las líneas y
// del total del documento (servicio de dominio puro).
//
// Los campos numéricos llegan como texto tal cual se editan en el formulario:
// un campo vacío o no numérico computa como cero, nunca como error — la
// validación de campos ocurre recién al enviar, no durante la edición.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/acculer/ledger-pro/internal/domain/entity"
)

// SimpleInput campos crudos de una línea simple (cotización/factura).
type SimpleInput struct {
	Description string
	Site        string
	Ref         string
	Qty         string
	Rate        string
}

// MeasuredInput campos crudos de una línea por dimensiones (bill).
type MeasuredInput struct {
	Description string
	Qty         string
	Length      string
	Breadth     string
	Rate        string
}

// ParseNumeric convierte el texto de un campo en decimal; entradas que no
// parsean como número finito computan como cero.
func ParseNumeric(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComputeSimple deriva la línea simple: Amount = Qty × Rate.
func ComputeSimple(in SimpleInput) entity.SimpleItem {
	qty := ParseNumeric(in.Qty)
	rate := ParseNumeric(in.Rate)
	return entity.SimpleItem{
		Description: in.Description,
		Site:        in.Site,
		Ref:         in.Ref,
		Qty:         qty,
		Rate:        rate,
		Amount:      qty.Mul(rate),
	}
}

// ComputeMeasured deriva la línea por dimensiones:
// Area = Length × Breadth; Amount = Area × Qty × Rate (ambos a 2 decimales).
func ComputeMeasured(in MeasuredInput) entity.MeasuredItem {
	qty := ParseNumeric(in.Qty)
	length := ParseNumeric(in.Length)
	breadth := ParseNumeric(in.Breadth)
	rate := ParseNumeric(in.Rate)
	area := length.Mul(breadth).Round(2)
	return entity.MeasuredItem{
		Description: in.Description,
		Qty:         qty,
		Length:      length,
		Breadth:     breadth,
		Area:        area,
		Rate:        rate,
		Amount:      area.Mul(qty).Mul(rate).Round(2),
	}
}

// Total suma los montos de todas las líneas, redondeado a 2 decimales.
// Debe recalcularse cada vez que cambia el monto de cualquier línea
// (agregar, editar o quitar una línea incluido).
func Total(items []entity.DocumentItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.ItemAmount())
	}
	return sum.Round(2)
}

// FormatMoney representa un monto para mostrar: símbolo + 2 decimales fijos.
// Ej: FormatMoney("₹", 2000) → "₹2000.00".
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
