// Package directory casos de uso del directorio de negocios/cuentas.
package directory

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/acculer/ledger-pro/internal/application/dto"
	"github.com/acculer/ledger-pro/internal/application/validation"
	"github.com/acculer/ledger-pro/internal/domain"
	"github.com/acculer/ledger-pro/internal/domain/entity"
	"github.com/acculer/ledger-pro/internal/domain/repository"
)

// BusinessUseCase CRUD y búsqueda del directorio.
type BusinessUseCase struct {
	repo     repository.BusinessRepository
	validate *validator.Validate
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, validate: validator.New()}
}

// Create agrega un negocio al directorio; los negocios nuevos nacen activos.
// Un GST ya registrado se rechaza como duplicado.
func (uc *BusinessUseCase) Create(in dto.SaveBusinessRequest) (*dto.BusinessResponse, error) {
	if err := validation.Struct(uc.validate, in); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByGSTNumber(in.GSTNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	b := &entity.Business{
		ID:          uuid.New().String(),
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Mobile:      in.Mobile,
		Phone:       in.Phone,
		Address1:    in.Address1,
		Address2:    in.Address2,
		Address3:    in.Address3,
		Landmark:    in.Landmark,
		City:        in.City,
		State:       in.State,
		Country:     in.Country,
		Pincode:     in.Pincode,
		Website:     in.Website,
		GSTNumber:   in.GSTNumber,
		Status:      entity.BusinessStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	return toBusinessResponse(b), nil
}

// Update edita un negocio existente; los campos enviados ganan.
func (uc *BusinessUseCase) Update(id string, in dto.SaveBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil || b == nil {
		return nil, domain.ErrNotFound
	}
	if err := validation.Struct(uc.validate, in); err != nil {
		return nil, err
	}
	b.Name = in.Name
	b.ContactName = in.ContactName
	b.Email = in.Email
	b.Mobile = in.Mobile
	b.Phone = in.Phone
	b.Address1 = in.Address1
	b.Address2 = in.Address2
	b.Address3 = in.Address3
	b.Landmark = in.Landmark
	b.City = in.City
	b.State = in.State
	b.Country = in.Country
	b.Pincode = in.Pincode
	b.Website = in.Website
	b.GSTNumber = in.GSTNumber
	if in.Status != "" {
		b.Status = in.Status
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBusinessResponse(b), nil
}

// Delete elimina el negocio del directorio.
func (uc *BusinessUseCase) Delete(id string) error {
	b, err := uc.repo.GetByID(id)
	if err != nil || b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista negocios, opcionalmente filtrados por estado (active/inactive).
func (uc *BusinessUseCase) List(status string) ([]*dto.BusinessResponse, error) {
	list, err := uc.repo.List(status)
	if err != nil {
		return nil, err
	}
	return toBusinessResponses(list), nil
}

// Search filtra por nombre, contacto o email (substring, sin mayúsculas).
func (uc *BusinessUseCase) Search(query string) ([]*dto.BusinessResponse, error) {
	list, err := uc.repo.Search(query)
	if err != nil {
		return nil, err
	}
	return toBusinessResponses(list), nil
}

// AddressBlock devuelve el bloque de dirección (líneas + GSTIN) del negocio
// con ese nombre, para el panel de "Business Info" al crear documentos.
// Consumo de solo lectura: no participa de las invariantes del libro.
func (uc *BusinessUseCase) AddressBlock(name string) ([]string, error) {
	b, err := uc.repo.GetByName(name)
	if err != nil || b == nil {
		return nil, domain.ErrNotFound
	}
	return b.AddressLines(), nil
}

func toBusinessResponses(list []*entity.Business) []*dto.BusinessResponse {
	out := make([]*dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBusinessResponse(b))
	}
	return out
}

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		ContactName: b.ContactName,
		Email:       b.Email,
		Mobile:      b.Mobile,
		Phone:       b.Phone,
		Address:     b.AddressLines(),
		Website:     b.Website,
		GSTNumber:   b.GSTNumber,
		Status:      b.Status,
	}
}
