package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmaventa-api/internal/application/access"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
)

const superEmail = "uniquemedicare786@gmail.com"

// fakeAdminRepo repositorio en memoria para el resolver.
type fakeAdminRepo struct {
	admins map[string]*entity.AdminUser
	err    error
}

func (f *fakeAdminRepo) Create(a *entity.AdminUser) error { f.admins[a.ID] = a; return nil }
func (f *fakeAdminRepo) GetByID(id string) (*entity.AdminUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.admins[id], nil
}
func (f *fakeAdminRepo) GetByEmail(string) (*entity.AdminUser, error) { return nil, nil }
func (f *fakeAdminRepo) Update(*entity.AdminUser) error               { return nil }
func (f *fakeAdminRepo) UpdateStatus(string, string) error            { return nil }
func (f *fakeAdminRepo) List(int, int) ([]*entity.AdminUser, error)   { return nil, nil }

func newResolver(admins ...*entity.AdminUser) (*access.Resolver, *fakeAdminRepo) {
	repo := &fakeAdminRepo{admins: map[string]*entity.AdminUser{}}
	for _, a := range admins {
		repo.admins[a.ID] = a
	}
	return access.NewResolver(repo, superEmail), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// El email super admin resuelve al conjunto completo de permisos incluso sin
// fila en la base: la identidad viene de configuración, no de datos.
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_SuperAdminSinRegistro(t *testing.T) {
	r, _ := newResolver()

	perms := r.Resolve("", superEmail)
	assert.ElementsMatch(t, entity.AllPermissions(), perms)
}

func TestResolve_SuperAdminCaseInsensitive(t *testing.T) {
	r, _ := newResolver()

	perms := r.Resolve("", "UniqueMedicare786@Gmail.COM")
	assert.ElementsMatch(t, entity.AllPermissions(), perms)
}

func TestResolve_AdminAusente_SinPermisos(t *testing.T) {
	r, _ := newResolver()

	assert.Empty(t, r.Resolve("no-existe", "otro@example.com"))
	assert.Empty(t, r.Resolve("", ""))
}

func TestResolve_AdminNoAprobado_SinPermisos(t *testing.T) {
	r, _ := newResolver(
		&entity.AdminUser{ID: "a1", Email: "p@example.com", Role: entity.RoleAdmin,
			Status: entity.StatusPending, Permissions: []string{entity.PermOrders}},
		&entity.AdminUser{ID: "a2", Email: "d@example.com", Role: entity.RoleAdmin,
			Status: entity.StatusDisabled, Permissions: []string{entity.PermOrders}},
	)

	assert.Empty(t, r.Resolve("a1", "p@example.com"), "pending no tiene permisos")
	assert.Empty(t, r.Resolve("a2", "d@example.com"), "disabled no tiene permisos")
}

func TestResolve_AdminAprobado_SoloSusPermisos(t *testing.T) {
	r, _ := newResolver(&entity.AdminUser{
		ID: "a1", Email: "ops@example.com", Role: entity.RoleAdmin,
		Status:      entity.StatusApproved,
		Permissions: []string{entity.PermOrders, entity.PermDrugs},
	})

	perms := r.Resolve("a1", "ops@example.com")
	assert.ElementsMatch(t, []string{entity.PermOrders, entity.PermDrugs}, perms)

	assert.True(t, r.Has("a1", "ops@example.com", entity.PermOrders))
	assert.False(t, r.Has("a1", "ops@example.com", entity.PermSettings))
}

func TestResolve_RolSuperAdminPersistido_TodosLosPermisos(t *testing.T) {
	r, _ := newResolver(&entity.AdminUser{
		ID: "root", Email: "root@example.com", Role: entity.RoleSuperAdmin,
		Status: entity.StatusApproved,
	})

	assert.ElementsMatch(t, entity.AllPermissions(), r.Resolve("root", "root@example.com"))
}

// Fail-closed: un error de infraestructura resuelve a cero permisos.
func TestResolve_ErrorDeRepositorio_SinPermisos(t *testing.T) {
	r, repo := newResolver(&entity.AdminUser{
		ID: "a1", Email: "ops@example.com", Role: entity.RoleAdmin,
		Status: entity.StatusApproved, Permissions: entity.AllPermissions(),
	})
	repo.err = domain.ErrNotFound

	assert.Empty(t, r.Resolve("a1", "ops@example.com"))
	assert.False(t, r.Has("a1", "ops@example.com", entity.PermDashboard))
}

// La copia devuelta no comparte memoria con el registro persistido.
func TestResolve_DevuelveCopia(t *testing.T) {
	admin := &entity.AdminUser{
		ID: "a1", Email: "ops@example.com", Role: entity.RoleAdmin,
		Status: entity.StatusApproved, Permissions: []string{entity.PermOrders},
	}
	r, _ := newResolver(admin)

	perms := r.Resolve("a1", "ops@example.com")
	perms[0] = "mutado"
	assert.Equal(t, []string{entity.PermOrders}, admin.Permissions)
}
