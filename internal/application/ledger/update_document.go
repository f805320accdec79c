package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/acculer/ledger-pro/internal/application/dto"
	"github.com/acculer/ledger-pro/internal/application/validation"
	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/domain/billing"
	"github.com/acculer/ledger-pro/internal/domain/entity"
)

// La edición es un flujo de dos pasos: StageUpdate construye el registro
// fusionado y lo deja en espera; solo ConfirmUpdate lo escribe al almacén.
// Cancelar descarta la edición completa — el almacén nunca se muta de forma
// especulativa.

// pendingEdit registro fusionado en espera de confirmación.
type pendingEdit struct {
	documentID string
	merged     *entity.Document
}

// StageUpdate valida el envío, fusiona los campos enviados sobre el registro
// guardado (los no enviados se conservan; ID, Number y CreatedDate son
// inmutables), recalcula el total y deja el resultado pendiente de
// confirmación. Devuelve el token de la edición y una vista previa.
//
// El asignador de consecutivos jamás interviene aquí: editar no renumera.
func (uc *DocumentUseCase) StageUpdate(id string, in dto.UpdateDocumentRequest) (*dto.PendingEditResponse, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil || current == nil {
		return nil, domain.ErrNotFound
	}
	if err := validation.Struct(uc.validate, in); err != nil {
		return nil, err
	}

	merged := *current
	if in.CounterpartyName != "" {
		merged.CounterpartyName = in.CounterpartyName
	}
	if in.FiscalYear != "" {
		merged.FiscalYear = in.FiscalYear
	}
	if in.MobileNumber != "" {
		merged.MobileNumber = in.MobileNumber
	}
	if in.SiteName != "" {
		merged.SiteName = in.SiteName
	}
	if in.GSTNumber != "" {
		merged.GSTNumber = in.GSTNumber
	}
	if in.TaxApplicable != nil {
		merged.TaxApplicable = *in.TaxApplicable
	}
	if in.KeyNotes != nil {
		merged.KeyNotes = *in.KeyNotes
	}
	if in.Items != nil {
		merged.Items = buildItems(merged.Kind, in.Items)
	} else {
		merged.Items = append([]entity.DocumentItem(nil), current.Items...)
	}
	merged.TotalAmount = billing.Total(merged.Items)

	token := uuid.New().String()
	uc.pending[token] = &pendingEdit{documentID: id, merged: &merged}
	return &dto.PendingEditResponse{
		Token:   token,
		Preview: *uc.toResponse(&merged),
	}, nil
}

// ConfirmUpdate escribe la edición pendiente al almacén y la retira de la
// espera. Confirmar con valores idénticos deja ID, número y total iguales.
func (uc *DocumentUseCase) ConfirmUpdate(token string) (*dto.DocumentResponse, error) {
	edit, ok := uc.pending[token]
	if !ok {
		return nil, domain.ErrPendingEditExpired
	}
	delete(uc.pending, token)

	edit.merged.UpdatedAt = time.Now()
	if err := uc.repo.Update(edit.merged); err != nil {
		return nil, err
	}
	return uc.toResponse(edit.merged), nil
}

// CancelUpdate descarta por completo la edición pendiente; los valores del
// formulario se abandonan y el registro guardado queda intacto.
func (uc *DocumentUseCase) CancelUpdate(token string) error {
	if _, ok := uc.pending[token]; !ok {
		return domain.ErrPendingEditExpired
	}
	delete(uc.pending, token)
	return nil
}
