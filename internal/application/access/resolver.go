package access

import (
	"strings"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// Resolver calcula el conjunto de permisos de una sesión administrativa.
// Fail-closed: cualquier error de lookup degrada a conjunto vacío, y el
// conjunto vacío significa acceso denegado para quien lo consulte.
type Resolver struct {
	adminRepo       repository.AdminRepository
	superAdminEmail string
}

// NewResolver construye el resolver. superAdminEmail viene de configuración:
// el super admin es un rol configurado, no un code-path especial.
func NewResolver(adminRepo repository.AdminRepository, superAdminEmail string) *Resolver {
	return &Resolver{adminRepo: adminRepo, superAdminEmail: strings.ToLower(superAdminEmail)}
}

// Resolve devuelve los permisos para (adminID, email).
// Reglas:
//   - email del super admin → conjunto completo, sin consultar registros.
//   - sin registro por ID → vacío (no es admin).
//   - registro con status distinto de approved → vacío.
//   - rol super_admin persistido → conjunto completo.
//   - si no, exactamente la lista persistida.
func (r *Resolver) Resolve(adminID, email string) []string {
	if r.IsSuperAdmin(email) {
		return entity.AllPermissions()
	}
	if adminID == "" {
		return nil
	}
	admin, err := r.adminRepo.GetByID(adminID)
	if err != nil || admin == nil {
		return nil
	}
	if admin.Status != entity.StatusApproved {
		return nil
	}
	if admin.Role == entity.RoleSuperAdmin {
		return entity.AllPermissions()
	}
	perms := make([]string, 0, len(admin.Permissions))
	perms = append(perms, admin.Permissions...)
	return perms
}

// Has informa si la sesión tiene el permiso pedido.
func (r *Resolver) Has(adminID, email, permission string) bool {
	for _, p := range r.Resolve(adminID, email) {
		if p == permission {
			return true
		}
	}
	return false
}

// IsSuperAdmin compara el email contra la identidad configurada (case-insensitive).
func (r *Resolver) IsSuperAdmin(email string) bool {
	return r.superAdminEmail != "" && strings.EqualFold(email, r.superAdminEmail)
}
