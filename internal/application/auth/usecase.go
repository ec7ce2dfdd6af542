package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmaventa-api/internal/application/access"
	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
	"github.com/jhoicas/Farmaventa-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de compradores.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación: registro/login de compradores (JWT) y login de
// administradores (payload de sesión para la cookie admin_session).
type UseCase struct {
	buyerRepo repository.BuyerRepository
	adminRepo repository.AdminRepository
	resolver  *access.Resolver
	jwtCfg    JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(
	buyerRepo repository.BuyerRepository,
	adminRepo repository.AdminRepository,
	resolver *access.Resolver,
	jwtCfg JWTConfig,
) *UseCase {
	return &UseCase{
		buyerRepo: buyerRepo,
		adminRepo: adminRepo,
		resolver:  resolver,
		jwtCfg:    jwtCfg,
	}
}

// SignupBuyer registra un comprador: hashea password con bcrypt y lo deja en
// la cola pending hasta que un admin lo apruebe.
func (uc *UseCase) SignupBuyer(in dto.SignupRequest) (*dto.BuyerResponse, error) {
	if in.Email == "" || in.Password == "" || in.BusinessName == "" || in.DrugLicense == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.buyerRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	buyer := &entity.Buyer{
		ID:           uuid.New().String(),
		BusinessName: in.BusinessName,
		ContactName:  in.ContactName,
		Email:        in.Email,
		Phone:        in.Phone,
		DrugLicense:  in.DrugLicense,
		PasswordHash: string(hash),
		Status:       entity.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Address != nil {
		buyer.Addresses = []entity.Address{{
			ID:         uuid.New().String(),
			Line1:      in.Address.Line1,
			Line2:      in.Address.Line2,
			City:       in.Address.City,
			State:      in.Address.State,
			PostalCode: in.Address.PostalCode,
			IsDefault:  true, // primera dirección: siempre default
		}}
	}
	if err := uc.buyerRepo.Create(buyer); err != nil {
		return nil, err
	}
	return toBuyerResponse(buyer), nil
}

// LoginBuyer verifica credenciales y genera el JWT del storefront.
// Solo compradores approved pueden ingresar.
func (uc *UseCase) LoginBuyer(in dto.LoginRequest) (*dto.BuyerLoginResponse, error) {
	buyer, err := uc.buyerRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, domain.ErrBuyerNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(buyer.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if buyer.Status != entity.StatusApproved {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, buyer.ID, buyer.Email, "buyer", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.BuyerLoginResponse{
		Token: token,
		Buyer: *toBuyerResponse(buyer),
	}, nil
}

// LoginAdmin verifica credenciales contra la tabla de administradores y
// devuelve el payload de la sesión. La cookie la emite el handler.
// El super admin configurado ingresa aunque su fila no esté approved; el
// resto necesita status approved (fail-closed).
func (uc *UseCase) LoginAdmin(in dto.LoginRequest) (*dto.SessionPayload, error) {
	admin, err := uc.adminRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !uc.resolver.IsSuperAdmin(admin.Email) && admin.Status != entity.StatusApproved {
		return nil, domain.ErrForbidden
	}
	role := admin.Role
	if uc.resolver.IsSuperAdmin(admin.Email) {
		role = entity.RoleSuperAdmin
	}
	return &dto.SessionPayload{
		IsLoggedIn: true,
		Email:      admin.Email,
		Name:       admin.Name,
		UID:        admin.ID,
		Role:       role,
	}, nil
}

func toBuyerResponse(b *entity.Buyer) *dto.BuyerResponse {
	addrs := make([]dto.AddressDTO, 0, len(b.Addresses))
	for _, a := range b.Addresses {
		addrs = append(addrs, dto.AddressDTO{
			ID:         a.ID,
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			IsDefault:  a.IsDefault,
		})
	}
	return &dto.BuyerResponse{
		ID:           b.ID,
		BusinessName: b.BusinessName,
		ContactName:  b.ContactName,
		Email:        b.Email,
		Phone:        b.Phone,
		DrugLicense:  b.DrugLicense,
		Addresses:    addrs,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
