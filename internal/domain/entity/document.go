package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind identifica el tipo de documento del libro.
type DocumentKind string

const (
	KindQuotation DocumentKind = "quotation" // proforma / cotización
	KindInvoice   DocumentKind = "invoice"
	KindBill      DocumentKind = "bill" // facturación por dimensiones, sin consecutivo
)

// Prefix devuelve el prefijo del número de documento ("" si el tipo no usa consecutivo).
func (k DocumentKind) Prefix() string {
	switch k {
	case KindQuotation:
		return "QTN"
	case KindInvoice:
		return "INV"
	default:
		return ""
	}
}

// UsesNumbering indica si el tipo lleva número consecutivo por año fiscal.
func (k DocumentKind) UsesNumbering() bool { return k.Prefix() != "" }

// Valid indica si el tipo es uno de los tres soportados.
func (k DocumentKind) Valid() bool {
	return k == KindQuotation || k == KindInvoice || k == KindBill
}

// DocumentItem contrato común de las variantes de línea: toda línea expone
// su monto derivado, nunca editable de forma independiente.
type DocumentItem interface {
	ItemAmount() decimal.Decimal
	ItemDescription() string
}

// SimpleItem línea de cotización o factura: Amount = Qty × Rate.
// Ref guarda el campo de referencia propio del tipo (área en sqft para
// cotizaciones, código HSN/SAC para facturas).
type SimpleItem struct {
	Description string
	Site        string
	Ref         string
	Qty         decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal // derivado
}

func (i SimpleItem) ItemAmount() decimal.Decimal { return i.Amount }
func (i SimpleItem) ItemDescription() string     { return i.Description }

// MeasuredItem línea de bill por dimensiones:
// Area = Length × Breadth; Amount = Area × Qty × Rate.
type MeasuredItem struct {
	Description string
	Qty         decimal.Decimal
	Length      decimal.Decimal
	Breadth     decimal.Decimal
	Area        decimal.Decimal // derivado
	Rate        decimal.Decimal
	Amount      decimal.Decimal // derivado
}

func (i MeasuredItem) ItemAmount() decimal.Decimal { return i.Amount }
func (i MeasuredItem) ItemDescription() string     { return i.Description }

// Document cabecera de un documento del libro (cotización, factura o bill).
// Number y CreatedDate son inmutables después de la creación; TotalAmount
// siempre se deriva de las líneas al momento de guardar.
type Document struct {
	ID               string
	Kind             DocumentKind
	CounterpartyName string
	Number           string // vacío para bills
	FiscalYear       string // "YYYY-YYYY"; vacío para bills
	CreatedDate      time.Time

	// Campos de cabecera propios de bills.
	MobileNumber  string
	SiteName      string
	GSTNumber     string
	TaxApplicable bool

	KeyNotes    string
	Items       []DocumentItem // el orden es el orden de captura y render
	TotalAmount decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
