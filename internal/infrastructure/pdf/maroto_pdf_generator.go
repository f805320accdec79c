// Package pdf genera la descarga en PDF de un documento del libro
// (cotización, factura o bill).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del documento  │  Número + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NEGOCIO: Nombre + bloque de dirección (directorio)         │
//	│  [bills] CLIENTE: móvil / sitio / GST / impuesto            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: líneas con montos derivados                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + notas clave                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/acculer/ledger-pro/internal/application/dto"
	"github.com/acculer/ledger-pro/internal/application/ledger"
	"github.com/acculer/ledger-pro/internal/domain/billing"
	"github.com/acculer/ledger-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ledger.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	currency string
}

var _ ledger.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador con el símbolo de moneda.
func NewMarotoPDFGenerator(currency string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{currency: currency}
}

// GenerateDocumentPDF genera el PDF y devuelve sus bytes. issuer puede ser nil
// cuando la contraparte no está en el directorio.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(
	_ context.Context,
	doc *entity.Document,
	issuer *entity.Business,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(doc.Kind), true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(counterpartyRows(doc, issuer)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas
	if doc.Kind == entity.KindBill {
		m.AddRows(measuredHeaderRow())
		for _, r := range measuredItemRows(g.currency, doc.Items) {
			m.AddRows(r)
		}
	} else {
		m.AddRows(simpleHeaderRow(doc.Kind))
		for _, r := range simpleItemRows(g.currency, doc.Items) {
			m.AddRows(r)
		}
	}

	// Total y notas
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(g.currency, doc))
	if doc.KeyNotes != "" {
		m.AddRows(notesRow(doc.KeyNotes))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func documentTitle(kind entity.DocumentKind) string {
	switch kind {
	case entity.KindQuotation:
		return "QUOTATION"
	case entity.KindInvoice:
		return "INVOICE"
	default:
		return "BILL"
	}
}

// headerRow: título (izq) y número + fecha (der).
func headerRow(doc *entity.Document) core.Row {
	number := doc.Number
	if number == "" {
		number = doc.CounterpartyName
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(documentTitle(doc.Kind), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Fiscal year: "+nonEmpty(doc.FiscalYear, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Date: "+doc.CreatedDate.Format(dto.DisplayDateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// counterpartyRows: contraparte + bloque de dirección del directorio y, para
// bills, los datos de contacto del cliente.
func counterpartyRows(doc *entity.Document, issuer *entity.Business) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(doc.CounterpartyName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		)),
	}

	if issuer != nil {
		addr := strings.Join(issuer.AddressLines(), "  |  ")
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(addr, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}

	if doc.Kind == entity.KindBill {
		tax := "No"
		if doc.TaxApplicable {
			tax = "Yes"
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Mobile: %s   |   Site: %s   |   GST: %s   |   Tax: %s",
				nonEmpty(doc.MobileNumber, "—"),
				nonEmpty(doc.SiteName, "—"),
				nonEmpty(doc.GSTNumber, "—"),
				tax,
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	return rows
}

// simpleHeaderRow: cabecera de la tabla de cotizaciones/facturas. La columna
// de referencia cambia de rótulo según el tipo.
func simpleHeaderRow(kind entity.DocumentKind) core.Row {
	ref := "Area of Sqft"
	if kind == entity.KindInvoice {
		ref = "HSN/SAC"
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 4, align.Left),
		h("Site", 2, align.Left),
		h(ref, 2, align.Center),
		h("Qty", 1, align.Right),
		h("Rate", 1, align.Right),
		h("Amount", 2, align.Right),
	)
}

func simpleItemRows(currency string, items []entity.DocumentItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		s, ok := it.(entity.SimpleItem)
		if !ok {
			continue
		}
		result = append(result, row.New(7).Add(
			cell(s.Description, 4, align.Left),
			cell(s.Site, 2, align.Left),
			cell(s.Ref, 2, align.Center),
			cell(s.Qty.String(), 1, align.Right),
			cell(s.Rate.String(), 1, align.Right),
			cell(billing.FormatMoney(currency, s.Amount), 2, align.Right),
		))
	}
	return result
}

// measuredHeaderRow: cabecera de la tabla de bills por dimensiones.
func measuredHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 3, align.Left),
		h("Qty", 1, align.Right),
		h("Length", 1, align.Right),
		h("Breadth", 1, align.Right),
		h("Area", 2, align.Right),
		h("Rate", 1, align.Right),
		h("Amount", 3, align.Right),
	)
}

func measuredItemRows(currency string, items []entity.DocumentItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		m, ok := it.(entity.MeasuredItem)
		if !ok {
			continue
		}
		result = append(result, row.New(7).Add(
			cell(m.Description, 3, align.Left),
			cell(m.Qty.String(), 1, align.Right),
			cell(m.Length.String(), 1, align.Right),
			cell(m.Breadth.String(), 1, align.Right),
			cell(m.Area.StringFixed(2), 2, align.Right),
			cell(m.Rate.String(), 1, align.Right),
			cell(billing.FormatMoney(currency, m.Amount), 3, align.Right),
		))
	}
	return result
}

// totalRow: total del documento alineado a la derecha.
func totalRow(currency string, doc *entity.Document) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(billing.FormatMoney(currency, doc.TotalAmount), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func notesRow(notes string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Key notes: "+notes, props.Text{
			Size: 8, Color: colorGray, Top: 3,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
