package dto

// DocumentItemRequest línea tal cual se edita en el formulario. Los campos
// numéricos viajan como texto: durante la edición pueden estar vacíos o no
// ser numéricos y computan como cero hasta el envío.
type DocumentItemRequest struct {
	Description string `json:"description" validate:"required"`
	Site        string `json:"site,omitempty"`
	Ref         string `json:"ref,omitempty"` // área en sqft (cotización) o HSN/SAC (factura)
	Qty         string `json:"qty"`
	Rate        string `json:"rate"`
	// Solo para bills (líneas por dimensiones).
	Length  string `json:"length,omitempty"`
	Breadth string `json:"breadth,omitempty"`
}

// CreateDocumentRequest alta de un documento.
// FiscalYear es obligatorio para cotizaciones y facturas (define el
// consecutivo); los bills no llevan número ni año fiscal.
type CreateDocumentRequest struct {
	Kind             string                `json:"kind" validate:"required,oneof=quotation invoice bill"`
	CounterpartyName string                `json:"counterparty_name" validate:"required"`
	FiscalYear       string                `json:"fiscal_year,omitempty"`
	CreatedDate      string                `json:"created_date,omitempty"` // "Mar 22, 2025"; vacío = hoy
	MobileNumber     string                `json:"mobile_number,omitempty"`
	SiteName         string                `json:"site_name,omitempty"`
	GSTNumber        string                `json:"gst_number,omitempty"`
	TaxApplicable    bool                  `json:"tax_applicable,omitempty"`
	KeyNotes         string                `json:"key_notes,omitempty"`
	Items            []DocumentItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateDocumentRequest edición de un documento existente. Los campos
// enviados ganan; los vacíos conservan el valor guardado. El número y la
// fecha de creación nunca cambian en una edición.
type UpdateDocumentRequest struct {
	CounterpartyName string                `json:"counterparty_name,omitempty"`
	FiscalYear       string                `json:"fiscal_year,omitempty"`
	MobileNumber     string                `json:"mobile_number,omitempty"`
	SiteName         string                `json:"site_name,omitempty"`
	GSTNumber        string                `json:"gst_number,omitempty"`
	TaxApplicable    *bool                 `json:"tax_applicable,omitempty"`
	KeyNotes         *string               `json:"key_notes,omitempty"`
	Items            []DocumentItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

// DocumentItemResponse línea con sus montos derivados ya calculados.
type DocumentItemResponse struct {
	Description string `json:"description"`
	Site        string `json:"site,omitempty"`
	Ref         string `json:"ref,omitempty"`
	Qty         string `json:"qty"`
	Rate        string `json:"rate"`
	Length      string `json:"length,omitempty"`
	Breadth     string `json:"breadth,omitempty"`
	Area        string `json:"area,omitempty"`
	Amount      string `json:"amount"`
}

// DocumentResponse documento completo para listados y detalle.
type DocumentResponse struct {
	ID               string                 `json:"id"`
	Kind             string                 `json:"kind"`
	CounterpartyName string                 `json:"counterparty_name"`
	Number           string                 `json:"number,omitempty"`
	FiscalYear       string                 `json:"fiscal_year,omitempty"`
	CreatedDate      string                 `json:"created_date"`
	MobileNumber     string                 `json:"mobile_number,omitempty"`
	SiteName         string                 `json:"site_name,omitempty"`
	GSTNumber        string                 `json:"gst_number,omitempty"`
	TaxApplicable    bool                   `json:"tax_applicable,omitempty"`
	KeyNotes         string                 `json:"key_notes,omitempty"`
	TotalAmount      string                 `json:"total_amount"` // formateado: "₹2000.00"
	Items            []DocumentItemResponse `json:"items"`
}

// PendingEditResponse edición en espera de confirmación: el token identifica
// la edición pendiente y Preview muestra el registro fusionado tal como
// quedaría. El almacén no se toca hasta confirmar.
type PendingEditResponse struct {
	Token   string           `json:"token"`
	Preview DocumentResponse `json:"preview"`
}
