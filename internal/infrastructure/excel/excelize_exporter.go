// Package excel exporta listados de documentos a XLSX.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/acculer/ledger-pro/internal/application/dto"
	"github.com/acculer/ledger-pro/internal/application/ledger"
	"github.com/acculer/ledger-pro/internal/domain/entity"
)

// ExcelizeExporter implementa ledger.DocumentListExporter usando excelize.
type ExcelizeExporter struct {
	currency string
}

var _ ledger.DocumentListExporter = (*ExcelizeExporter)(nil)

// NewExcelizeExporter construye el exportador con el símbolo de moneda.
func NewExcelizeExporter(currency string) *ExcelizeExporter {
	return &ExcelizeExporter{currency: currency}
}

// ExportDocumentList escribe una fila por documento, en orden de inserción,
// y devuelve los bytes del libro.
func (e *ExcelizeExporter) ExportDocumentList(docs []*entity.Document) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"S.No", "Business Name", "Number", "Total Amount", "Created Date", "Fiscal Year"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera %q: %w", h, err)
		}
	}

	for i, d := range docs {
		rowNum := i + 2
		values := []any{
			i + 1,
			d.CounterpartyName,
			d.Number,
			e.currency + d.TotalAmount.StringFixed(2),
			d.CreatedDate.Format(dto.DisplayDateLayout),
			d.FiscalYear,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("excel: celda de datos: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", rowNum, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
