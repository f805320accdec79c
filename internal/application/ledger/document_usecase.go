package ledger

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/acculer/ledger-pro/internal/application/dto"
	"github.com/acculer/ledger-pro/internal/application/validation"
	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/domain/billing"
	"github.com/acculer/ledger-pro/internal/domain/entity"
	"github.com/acculer/ledger-pro/internal/domain/numbering"
	"github.com/acculer/ledger-pro/internal/domain/repository"
)

// DocumentUseCase operaciones del libro de documentos: crear, editar con
// confirmación, eliminar y buscar. Las invariantes (consecutivo inmutable,
// totales derivados) se aplican aquí, en la frontera de guardado.
//
// El caso de uso es de un solo usuario y un solo hilo, igual que el resto
// del libro: las ediciones pendientes viven en memoria del proceso.
type DocumentUseCase struct {
	repo     repository.DocumentRepository
	validate *validator.Validate
	currency string
	pending  map[string]*pendingEdit
}

// NewDocumentUseCase construye el caso de uso. currency es el símbolo con el
// que se formatean los totales (ej: "₹").
func NewDocumentUseCase(repo repository.DocumentRepository, currency string) *DocumentUseCase {
	return &DocumentUseCase{
		repo:     repo,
		validate: validator.New(),
		currency: currency,
		pending:  make(map[string]*pendingEdit),
	}
}

// PreviewNumber deriva el número que recibiría un documento nuevo del tipo y
// año fiscal dados. Es solo una vista previa: no reserva el consecutivo, y
// cambiar el año fiscal antes de confirmar la creación simplemente vuelve a
// derivar otra.
func (uc *DocumentUseCase) PreviewNumber(kind, fiscalYear string) (string, error) {
	k := entity.DocumentKind(kind)
	if !k.UsesNumbering() {
		return "", fmt.Errorf("el tipo %q no lleva consecutivo: %w", kind, domain.ErrInvalidInput)
	}
	numbers, err := uc.repo.Numbers(k)
	if err != nil {
		return "", err
	}
	return numbering.Next(k.Prefix(), fiscalYear, numbers)
}

// Create valida el envío, asigna ID y (para cotizaciones/facturas) el
// consecutivo del año fiscal, deriva los montos y agrega el documento al
// final de la colección.
func (uc *DocumentUseCase) Create(in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := validation.Struct(uc.validate, in); err != nil {
		return nil, err
	}
	kind := entity.DocumentKind(in.Kind)

	createdDate := time.Now()
	if in.CreatedDate != "" {
		parsed, err := time.Parse(dto.DisplayDateLayout, in.CreatedDate)
		if err != nil {
			return nil, fmt.Errorf("fecha %q: %w", in.CreatedDate, domain.ErrInvalidInput)
		}
		createdDate = parsed
	}

	var number string
	if kind.UsesNumbering() {
		numbers, err := uc.repo.Numbers(kind)
		if err != nil {
			return nil, err
		}
		number, err = numbering.Next(kind.Prefix(), in.FiscalYear, numbers)
		if err != nil {
			return nil, err
		}
	}

	items := buildItems(kind, in.Items)
	now := time.Now()
	doc := &entity.Document{
		ID:               uuid.New().String(),
		Kind:             kind,
		CounterpartyName: in.CounterpartyName,
		Number:           number,
		FiscalYear:       in.FiscalYear,
		CreatedDate:      createdDate,
		MobileNumber:     in.MobileNumber,
		SiteName:         in.SiteName,
		GSTNumber:        in.GSTNumber,
		TaxApplicable:    in.TaxApplicable,
		KeyNotes:         in.KeyNotes,
		Items:            items,
		TotalAmount:      billing.Total(items),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(doc); err != nil {
		return nil, err
	}
	return uc.toResponse(doc), nil
}

// Recalculate deriva montos y total de un juego de líneas sin guardar nada:
// es la vista previa que acompaña la edición del formulario. Los campos no
// numéricos computan como cero.
func (uc *DocumentUseCase) Recalculate(kind string, in []dto.DocumentItemRequest) (*dto.DocumentResponse, error) {
	k := entity.DocumentKind(kind)
	if !k.Valid() {
		return nil, fmt.Errorf("tipo %q: %w", kind, domain.ErrInvalidInput)
	}
	items := buildItems(k, in)
	preview := &entity.Document{
		Kind:        k,
		Items:       items,
		TotalAmount: billing.Total(items),
	}
	return uc.toResponse(preview), nil
}

// Get obtiene un documento por ID.
func (uc *DocumentUseCase) Get(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil || doc == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(doc), nil
}

// List lista los documentos de un tipo en orden de inserción.
func (uc *DocumentUseCase) List(kind string) ([]*dto.DocumentResponse, error) {
	k := entity.DocumentKind(kind)
	if !k.Valid() {
		return nil, fmt.Errorf("tipo %q: %w", kind, domain.ErrInvalidInput)
	}
	docs, err := uc.repo.ListByKind(k)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(docs), nil
}

// Search filtra por substring sin distinguir mayúsculas sobre los campos de
// búsqueda del tipo. Es una vista: nunca muta la colección.
func (uc *DocumentUseCase) Search(kind, query string) ([]*dto.DocumentResponse, error) {
	k := entity.DocumentKind(kind)
	if !k.Valid() {
		return nil, fmt.Errorf("tipo %q: %w", kind, domain.ErrInvalidInput)
	}
	docs, err := uc.repo.Search(k, query)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(docs), nil
}

// Delete elimina el documento por ID. Irreversible, sin papelera.
func (uc *DocumentUseCase) Delete(id string) error {
	doc, err := uc.repo.GetByID(id)
	if err != nil || doc == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// buildItems deriva las líneas según la variante del tipo: bills usan líneas
// por dimensiones, cotizaciones y facturas líneas simples.
func buildItems(kind entity.DocumentKind, in []dto.DocumentItemRequest) []entity.DocumentItem {
	items := make([]entity.DocumentItem, 0, len(in))
	for _, item := range in {
		if kind == entity.KindBill {
			items = append(items, billing.ComputeMeasured(billing.MeasuredInput{
				Description: item.Description,
				Qty:         item.Qty,
				Length:      item.Length,
				Breadth:     item.Breadth,
				Rate:        item.Rate,
			}))
			continue
		}
		items = append(items, billing.ComputeSimple(billing.SimpleInput{
			Description: item.Description,
			Site:        item.Site,
			Ref:         item.Ref,
			Qty:         item.Qty,
			Rate:        item.Rate,
		}))
	}
	return items
}

func (uc *DocumentUseCase) toResponses(docs []*entity.Document) []*dto.DocumentResponse {
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, uc.toResponse(doc))
	}
	return out
}

func (uc *DocumentUseCase) toResponse(doc *entity.Document) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:               doc.ID,
		Kind:             string(doc.Kind),
		CounterpartyName: doc.CounterpartyName,
		Number:           doc.Number,
		FiscalYear:       doc.FiscalYear,
		CreatedDate:      doc.CreatedDate.Format(dto.DisplayDateLayout),
		MobileNumber:     doc.MobileNumber,
		SiteName:         doc.SiteName,
		GSTNumber:        doc.GSTNumber,
		TaxApplicable:    doc.TaxApplicable,
		KeyNotes:         doc.KeyNotes,
		TotalAmount:      billing.FormatMoney(uc.currency, doc.TotalAmount),
		Items:            make([]dto.DocumentItemResponse, 0, len(doc.Items)),
	}
	for _, item := range doc.Items {
		switch it := item.(type) {
		case entity.SimpleItem:
			resp.Items = append(resp.Items, dto.DocumentItemResponse{
				Description: it.Description,
				Site:        it.Site,
				Ref:         it.Ref,
				Qty:         it.Qty.String(),
				Rate:        it.Rate.String(),
				Amount:      it.Amount.String(),
			})
		case entity.MeasuredItem:
			resp.Items = append(resp.Items, dto.DocumentItemResponse{
				Description: it.Description,
				Qty:         it.Qty.String(),
				Rate:        it.Rate.String(),
				Length:      it.Length.String(),
				Breadth:     it.Breadth.String(),
				Area:        it.Area.StringFixed(2),
				Amount:      it.Amount.StringFixed(2),
			})
		}
	}
	return resp
}
