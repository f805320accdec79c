package usecase

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

// UserUseCase aplica reglas de negocio para usuarios del panel.
type UserUseCase struct {
	repo     repository.UserRepository
	validate *validator.Validate
}

// NewUserUseCase construye el caso de uso con el puerto del almacén.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, validate: validator.New()}
}

// Create agrega un usuario; el email debe ser único. Los usuarios nuevos
// nacen activos.
func (uc *UserUseCase) Create(in dto.SaveUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(uc.validate, in); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Mobile:    in.Mobile,
		Role:      in.Role,
		Status:    entity.UserStatusActive,
		Password:  in.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update edita un usuario existente; el email sigue siendo único.
func (uc *UserUseCase) Update(id string, in dto.SaveUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil || user == nil {
		return nil, domain.ErrNotFound
	}
	if err := validation.Struct(uc.validate, in); err != nil {
		return nil, err
	}
	if other, _ := uc.repo.GetByEmail(in.Email); other != nil && other.ID != id {
		return nil, domain.ErrEmailAlreadyExists
	}
	user.Name = in.Name
	user.Email = in.Email
	user.Mobile = in.Mobile
	user.Role = in.Role
	if in.Password != "" {
		user.Password = in.Password
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// SetStatus activa o desactiva un usuario (el switch de la tabla).
func (uc *UserUseCase) SetStatus(id string, active bool) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil || user == nil {
		return nil, domain.ErrNotFound
	}
	user.Status = entity.UserStatusInactive
	if active {
		user.Status = entity.UserStatusActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil || user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista todos los usuarios.
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// Search filtra por nombre o email (substring, sin mayúsculas).
func (uc *UserUseCase) Search(query string) ([]*dto.UserResponse, error) {
	list, err := uc.repo.Search(query)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

func toUserResponses(list []*entity.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Mobile: u.Mobile,
		Role:   u.Role,
		Status: u.Status,
	}
}
