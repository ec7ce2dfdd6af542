package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmaventa-api/internal/application/access"
	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// AdminUseCase gestión de administradores: alta (queda pending), edición de
// permisos, aprobación y habilitación. El super admin configurado está exento
// de toda edición y transición.
type AdminUseCase struct {
	repo     repository.AdminRepository
	resolver *access.Resolver
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(repo repository.AdminRepository, resolver *access.Resolver) *AdminUseCase {
	return &AdminUseCase{repo: repo, resolver: resolver}
}

// Create da de alta un administrador en estado pending con rol admin.
func (uc *AdminUseCase) Create(in dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, p := range in.Permissions {
		if !entity.IsValidPermission(p) {
			return nil, domain.ErrInvalidInput
		}
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil || uc.resolver.IsSuperAdmin(in.Email) {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	admin := &entity.AdminUser{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Permissions:  in.Permissions,
		Status:       entity.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// GetByID obtiene un administrador por ID.
func (uc *AdminUseCase) GetByID(id string) (*dto.AdminResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAdminResponse(a), nil
}

// List lista administradores.
func (uc *AdminUseCase) List(limit, offset int) (*dto.AdminListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdminResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAdminResponse(a))
	}
	return &dto.AdminListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita nombre, teléfono y permisos. El super admin es inmutable.
func (uc *AdminUseCase) Update(id string, in dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAdminNotFound
	}
	if a.Role == entity.RoleSuperAdmin || uc.resolver.IsSuperAdmin(a.Email) {
		return nil, domain.ErrSuperAdminImmutable
	}
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Phone != nil {
		a.Phone = *in.Phone
	}
	if in.Permissions != nil {
		for _, p := range *in.Permissions {
			if !entity.IsValidPermission(p) {
				return nil, domain.ErrInvalidInput
			}
		}
		a.Permissions = *in.Permissions
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toAdminResponse(a), nil
}

// Approve mueve un administrador pending a approved.
func (uc *AdminUseCase) Approve(id string) (*dto.AdminResponse, error) {
	return uc.transition(id, entity.StatusApproved)
}

// Toggle alterna approved ⇄ disabled. Pending no puede deshabilitarse directo.
func (uc *AdminUseCase) Toggle(id string) (*dto.AdminResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAdminNotFound
	}
	if a.Role == entity.RoleSuperAdmin || uc.resolver.IsSuperAdmin(a.Email) {
		return nil, domain.ErrSuperAdminImmutable
	}
	switch a.Status {
	case entity.StatusApproved:
		return uc.transition(id, entity.StatusDisabled)
	case entity.StatusDisabled:
		return uc.transition(id, entity.StatusApproved)
	default:
		return nil, domain.ErrConflict
	}
}

func (uc *AdminUseCase) transition(id, to string) (*dto.AdminResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAdminNotFound
	}
	if a.Role == entity.RoleSuperAdmin || uc.resolver.IsSuperAdmin(a.Email) {
		return nil, domain.ErrSuperAdminImmutable
	}
	if !entity.CanTransitionApproval(a.Status, to) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.repo.UpdateStatus(id, to); err != nil {
		return nil, err
	}
	a.Status = to
	return toAdminResponse(a), nil
}

func toAdminResponse(a *entity.AdminUser) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	perms := a.Permissions
	if a.Role == entity.RoleSuperAdmin {
		perms = entity.AllPermissions()
	}
	return &dto.AdminResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		Role:        a.Role,
		Permissions: perms,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
