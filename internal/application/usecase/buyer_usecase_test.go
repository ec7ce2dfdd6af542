package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/application/usecase"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
)

// fakeBuyerRepo repositorio en memoria.
type fakeBuyerRepo struct {
	buyers map[string]*entity.Buyer
}

func newFakeBuyerRepo(buyers ...*entity.Buyer) *fakeBuyerRepo {
	f := &fakeBuyerRepo{buyers: map[string]*entity.Buyer{}}
	for _, b := range buyers {
		f.buyers[b.ID] = b
	}
	return f
}

func (f *fakeBuyerRepo) Create(b *entity.Buyer) error { f.buyers[b.ID] = b; return nil }
func (f *fakeBuyerRepo) GetByID(id string) (*entity.Buyer, error) {
	if b, ok := f.buyers[id]; ok {
		cp := *b
		cp.Addresses = append([]entity.Address(nil), b.Addresses...)
		return &cp, nil
	}
	return nil, nil
}
func (f *fakeBuyerRepo) GetByEmail(string) (*entity.Buyer, error) { return nil, nil }
func (f *fakeBuyerRepo) Update(b *entity.Buyer) error             { f.buyers[b.ID] = b; return nil }
func (f *fakeBuyerRepo) UpdateStatus(id, status string) error {
	if b, ok := f.buyers[id]; ok {
		b.Status = status
	}
	return nil
}
func (f *fakeBuyerRepo) ListByStatus(status string, _, _ int) ([]*entity.Buyer, error) {
	var out []*entity.Buyer
	for _, b := range f.buyers {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBuyerRepo) CountByStatus(string) (int, error) { return 0, nil }

func pendingBuyer(id string) *entity.Buyer {
	return &entity.Buyer{ID: id, BusinessName: "Farmacia Norte", Status: entity.StatusPending}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de aprobación
// ──────────────────────────────────────────────────────────────────────────────

func TestBuyerApprove_DesdePending(t *testing.T) {
	repo := newFakeBuyerRepo(pendingBuyer("b1"))
	uc := usecase.NewBuyerUseCase(repo)

	out, err := uc.Approve("b1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, out.Status)
	assert.Equal(t, entity.StatusApproved, repo.buyers["b1"].Status)
}

func TestBuyerApprove_YaAprobado(t *testing.T) {
	b := pendingBuyer("b1")
	b.Status = entity.StatusApproved
	uc := usecase.NewBuyerUseCase(newFakeBuyerRepo(b))

	_, err := uc.Approve("b1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBuyerToggle_AlternaAprobadoDeshabilitado(t *testing.T) {
	b := pendingBuyer("b1")
	b.Status = entity.StatusApproved
	repo := newFakeBuyerRepo(b)
	uc := usecase.NewBuyerUseCase(repo)

	out, err := uc.Toggle("b1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDisabled, out.Status)

	out, err = uc.Toggle("b1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, out.Status)
}

// Un pending no se puede deshabilitar sin pasar por approved.
func TestBuyerToggle_PendingNoSePuedeDeshabilitar(t *testing.T) {
	uc := usecase.NewBuyerUseCase(newFakeBuyerRepo(pendingBuyer("b1")))

	_, err := uc.Toggle("b1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBuyerToggle_Inexistente(t *testing.T) {
	uc := usecase.NewBuyerUseCase(newFakeBuyerRepo())

	_, err := uc.Toggle("fantasma")
	assert.ErrorIs(t, err, domain.ErrBuyerNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Direcciones: exactamente una default por comprador.
// ──────────────────────────────────────────────────────────────────────────────

func TestAddAddress_PrimeraSiempreDefault(t *testing.T) {
	repo := newFakeBuyerRepo(pendingBuyer("b1"))
	uc := usecase.NewBuyerUseCase(repo)

	out, err := uc.AddAddress("b1", dto.AddressDTO{Line1: "Calle 1", City: "Madrid", IsDefault: false})
	require.NoError(t, err)
	require.Len(t, out.Addresses, 1)
	assert.True(t, out.Addresses[0].IsDefault, "la primera dirección queda default aunque no se pida")
}

func TestAddAddress_NuevaDefaultDesplazaAnterior(t *testing.T) {
	repo := newFakeBuyerRepo(pendingBuyer("b1"))
	uc := usecase.NewBuyerUseCase(repo)

	_, err := uc.AddAddress("b1", dto.AddressDTO{Line1: "Calle 1", City: "Madrid"})
	require.NoError(t, err)
	out, err := uc.AddAddress("b1", dto.AddressDTO{Line1: "Calle 2", City: "Sevilla", IsDefault: true})
	require.NoError(t, err)

	defaults := 0
	for _, a := range out.Addresses {
		if a.IsDefault {
			defaults++
			assert.Equal(t, "Calle 2", a.Line1)
		}
	}
	assert.Equal(t, 1, defaults, "exactamente una default")
}

func TestSetDefaultAddress_MueveElDefault(t *testing.T) {
	repo := newFakeBuyerRepo(pendingBuyer("b1"))
	uc := usecase.NewBuyerUseCase(repo)

	_, err := uc.AddAddress("b1", dto.AddressDTO{Line1: "Calle 1", City: "Madrid"})
	require.NoError(t, err)
	two, err := uc.AddAddress("b1", dto.AddressDTO{Line1: "Calle 2", City: "Sevilla"})
	require.NoError(t, err)

	out, err := uc.SetDefaultAddress("b1", two.Addresses[1].ID)
	require.NoError(t, err)
	assert.False(t, out.Addresses[0].IsDefault)
	assert.True(t, out.Addresses[1].IsDefault)
}

func TestSetDefaultAddress_Inexistente(t *testing.T) {
	repo := newFakeBuyerRepo(pendingBuyer("b1"))
	uc := usecase.NewBuyerUseCase(repo)

	_, err := uc.AddAddress("b1", dto.AddressDTO{Line1: "Calle 1", City: "Madrid"})
	require.NoError(t, err)

	_, err = uc.SetDefaultAddress("b1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProfile_Parcial(t *testing.T) {
	b := pendingBuyer("b1")
	b.Phone = "111"
	repo := newFakeBuyerRepo(b)
	uc := usecase.NewBuyerUseCase(repo)

	name := "Farmacia Sur"
	out, err := uc.UpdateProfile("b1", dto.UpdateBuyerRequest{BusinessName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Farmacia Sur", out.BusinessName)
	assert.Equal(t, "111", out.Phone, "los campos no enviados no cambian")
}
