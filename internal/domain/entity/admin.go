package entity

import "time"

// Roles válidos para AdminUser.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// Permisos de secciones administrativas.
const (
	PermDashboard    = "dashboard"
	PermOrders       = "orders"
	PermDrugs        = "drugs"
	PermBuyers       = "buyers"
	PermManageAdmins = "manage_admins"
	PermSettings     = "settings"
)

// AllPermissions devuelve el conjunto completo de permisos (copia nueva).
func AllPermissions() []string {
	return []string{
		PermDashboard,
		PermOrders,
		PermDrugs,
		PermBuyers,
		PermManageAdmins,
		PermSettings,
	}
}

// IsValidPermission informa si el valor pertenece al conjunto de permisos.
func IsValidPermission(p string) bool {
	for _, known := range AllPermissions() {
		if p == known {
			return true
		}
	}
	return false
}

// AdminUser representa un usuario del back office.
// El super admin es una identidad configurada (rol super_admin) con todos los
// permisos implícitos; está exento de edición y de transiciones de estado.
type AdminUser struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string   // super_admin, admin
	Permissions  []string // subconjunto de AllPermissions; ignorado para super_admin
	Status       string   // pending, approved, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
