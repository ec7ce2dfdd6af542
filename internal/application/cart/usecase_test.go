package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmaventa-api/internal/application/cart"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner pasa los mismos repositorios a la función:
// aquí no se prueba el aislamiento transaccional sino la lógica de
// reconciliación carrito/stock/draft que corre dentro de la transacción.
// ──────────────────────────────────────────────────────────────────────────────

type fakeMedicineRepo struct {
	meds map[string]*entity.Medicine
}

func (f *fakeMedicineRepo) Create(m *entity.Medicine) error { f.meds[m.ID] = m; return nil }
func (f *fakeMedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	return f.meds[id], nil
}
func (f *fakeMedicineRepo) GetForUpdate(id string) (*entity.Medicine, error) {
	return f.meds[id], nil
}
func (f *fakeMedicineRepo) Update(m *entity.Medicine) error { f.meds[m.ID] = m; return nil }
func (f *fakeMedicineRepo) UpdateStock(id string, stock int) error {
	if m, ok := f.meds[id]; ok {
		m.Stock = stock
	}
	return nil
}
func (f *fakeMedicineRepo) List(string, int, int) ([]*entity.Medicine, error) { return nil, nil }
func (f *fakeMedicineRepo) Delete(id string) error                            { delete(f.meds, id); return nil }

type cartKey struct{ buyerID, medicineID string }

type fakeCartRepo struct {
	items map[cartKey]*entity.CartItem
}

func (f *fakeCartRepo) Get(buyerID, medicineID string) (*entity.CartItem, error) {
	if it, ok := f.items[cartKey{buyerID, medicineID}]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}
func (f *fakeCartRepo) Upsert(item *entity.CartItem) error {
	cp := *item
	f.items[cartKey{item.BuyerID, item.MedicineID}] = &cp
	return nil
}
func (f *fakeCartRepo) Delete(buyerID, medicineID string) error {
	delete(f.items, cartKey{buyerID, medicineID})
	return nil
}
func (f *fakeCartRepo) ListByBuyer(buyerID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for k, it := range f.items {
		if k.buyerID == buyerID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (f *fakeCartRepo) ClearByBuyer(buyerID string) error {
	for k := range f.items {
		if k.buyerID == buyerID {
			delete(f.items, k)
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	// Réplica del índice parcial único: un solo draft por comprador.
	if o.Status == entity.OrderStatusDraft {
		for _, ex := range f.orders {
			if ex.BuyerID == o.BuyerID && ex.Status == entity.OrderStatusDraft {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	if o, ok := f.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}
func (f *fakeOrderRepo) GetDraftByBuyer(buyerID string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.BuyerID == buyerID && o.Status == entity.OrderStatusDraft {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}
func (f *fakeOrderRepo) UpdateStatus(id, status string) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}
func (f *fakeOrderRepo) DeleteDraftByBuyer(buyerID string) error {
	for id, o := range f.orders {
		if o.BuyerID == buyerID && o.Status == entity.OrderStatusDraft {
			delete(f.orders, id)
		}
	}
	return nil
}
func (f *fakeOrderRepo) List(string, bool, int, int) ([]*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) ListByBuyer(string, int, int) ([]*entity.Order, error) {
	return nil, nil
}

type fakeBuyerRepo struct {
	buyers map[string]*entity.Buyer
}

func (f *fakeBuyerRepo) Create(b *entity.Buyer) error                  { f.buyers[b.ID] = b; return nil }
func (f *fakeBuyerRepo) GetByID(id string) (*entity.Buyer, error)      { return f.buyers[id], nil }
func (f *fakeBuyerRepo) GetByEmail(string) (*entity.Buyer, error)      { return nil, nil }
func (f *fakeBuyerRepo) Update(*entity.Buyer) error                    { return nil }
func (f *fakeBuyerRepo) UpdateStatus(string, string) error             { return nil }
func (f *fakeBuyerRepo) ListByStatus(string, int, int) ([]*entity.Buyer, error) {
	return nil, nil
}
func (f *fakeBuyerRepo) CountByStatus(string) (int, error) { return 0, nil }

type fakeTxRunner struct {
	medRepo   repository.MedicineRepository
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.MedicineRepository,
	repository.CartRepository,
	repository.OrderRepository,
) error) error {
	return fn(f.medRepo, f.cartRepo, f.orderRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testBuyerID = "buyer-1"
	medParaceta = "med-1"
	medAmoxi    = "med-2"
)

type fixture struct {
	uc     *cart.UseCase
	meds   *fakeMedicineRepo
	carts  *fakeCartRepo
	orders *fakeOrderRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	meds := &fakeMedicineRepo{meds: map[string]*entity.Medicine{
		medParaceta: {ID: medParaceta, Name: "Paracetamol 500mg", Price: decimal.NewFromFloat(15.50), Stock: 10},
		medAmoxi:    {ID: medAmoxi, Name: "Amoxicilina 250mg", Price: decimal.NewFromFloat(45.00), Stock: 1},
	}}
	carts := &fakeCartRepo{items: map[cartKey]*entity.CartItem{}}
	orders := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	buyers := &fakeBuyerRepo{buyers: map[string]*entity.Buyer{
		testBuyerID: {ID: testBuyerID, BusinessName: "Farmacia Central", Status: entity.StatusApproved},
	}}
	runner := &fakeTxRunner{medRepo: meds, cartRepo: carts, orderRepo: orders}
	return &fixture{
		uc:     cart.NewUseCase(runner, carts, orders, buyers),
		meds:   meds,
		carts:  carts,
		orders: orders,
	}
}

// totalStock devuelve stock disponible + reservado en carrito para el invariante
// de conservación de unidades.
func (f *fixture) totalUnits(medicineID string) int {
	total := f.meds.meds[medicineID].Stock
	for k, it := range f.carts.items {
		if k.medicineID == medicineID {
			total += it.Quantity
		}
	}
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_ReservaStockYSincronizaDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ItemCount)
	assert.Equal(t, 9, f.meds.meds[medParaceta].Stock, "agregar reserva una unidad")

	draft, err := f.orders.GetDraftByBuyer(testBuyerID)
	require.NoError(t, err)
	require.NotNil(t, draft, "toda mutación del carrito mantiene un draft")
	assert.Equal(t, "Farmacia Central", draft.BuyerName)
	assert.Equal(t, 1, draft.ItemCount)
}

func TestAdd_IncrementaLineaExistente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)
	resp, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1, "misma línea, no una nueva")
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 8, f.meds.meds[medParaceta].Stock)
}

func TestAdd_SinStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medAmoxi)
	require.NoError(t, err, "queda exactamente una unidad")

	_, err = f.uc.Add(ctx, testBuyerID, medAmoxi)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, f.meds.meds[medAmoxi].Stock, "el stock no baja de cero")
	assert.Equal(t, 1, f.carts.items[cartKey{testBuyerID, medAmoxi}].Quantity,
		"la línea no cambia cuando la reserva falla")
}

func TestAdd_MedicamentoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Add(context.Background(), testBuyerID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdd_CompradorInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Add(context.Background(), "fantasma", medParaceta)
	assert.ErrorIs(t, err, domain.ErrBuyerNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetQuantity / Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestSetQuantity_AjustaPorDelta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)

	resp, err := f.uc.SetQuantity(ctx, testBuyerID, medParaceta, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, 5, f.meds.meds[medParaceta].Stock, "10 - 5 reservadas")

	// Bajar la cantidad devuelve la diferencia.
	resp, err = f.uc.SetQuantity(ctx, testBuyerID, medParaceta, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 8, f.meds.meds[medParaceta].Stock)
	assert.Equal(t, 10, f.totalUnits(medParaceta), "las unidades se conservan")
}

func TestSetQuantity_DeltaSuperaStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)

	_, err = f.uc.SetQuantity(ctx, testBuyerID, medParaceta, 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, f.carts.items[cartKey{testBuyerID, medParaceta}].Quantity)
	assert.Equal(t, 9, f.meds.meds[medParaceta].Stock)
}

func TestSetQuantity_CeroEliminaYDevuelveReserva(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)
	_, err = f.uc.SetQuantity(ctx, testBuyerID, medParaceta, 4)
	require.NoError(t, err)

	resp, err := f.uc.SetQuantity(ctx, testBuyerID, medParaceta, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 10, f.meds.meds[medParaceta].Stock, "vuelve todo lo reservado")

	draft, _ := f.orders.GetDraftByBuyer(testBuyerID)
	assert.Nil(t, draft, "carrito vacío elimina el draft")
}

func TestSetQuantity_LineaInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.SetQuantity(context.Background(), testBuyerID, medParaceta, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemove_EquivaleACantidadCero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)

	resp, err := f.uc.Remove(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 10, f.meds.meds[medParaceta].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clear
// ──────────────────────────────────────────────────────────────────────────────

func TestClear_RestauraTodoYEliminaDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)
	_, err = f.uc.SetQuantity(ctx, testBuyerID, medParaceta, 3)
	require.NoError(t, err)
	_, err = f.uc.Add(ctx, testBuyerID, medAmoxi)
	require.NoError(t, err)

	require.NoError(t, f.uc.Clear(ctx, testBuyerID))

	assert.Equal(t, 10, f.meds.meds[medParaceta].Stock)
	assert.Equal(t, 1, f.meds.meds[medAmoxi].Stock)
	assert.Empty(t, f.carts.items)
	draft, _ := f.orders.GetDraftByBuyer(testBuyerID)
	assert.Nil(t, draft)
}

func TestClear_MedicamentoBorradoNoRevienta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)
	require.NoError(t, f.meds.Delete(medParaceta))

	require.NoError(t, f.uc.Clear(ctx, testBuyerID))
	assert.Empty(t, f.carts.items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_PromueveDraftSinDevolverStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)
	_, err = f.uc.SetQuantity(ctx, testBuyerID, medParaceta, 2)
	require.NoError(t, err)
	_, err = f.uc.Add(ctx, testBuyerID, medAmoxi)
	require.NoError(t, err)

	order, err := f.uc.Checkout(ctx, testBuyerID)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.NotNil(t, order.CheckoutAt, "checkout estampa la fecha")
	// 15.50 × 2 + 45.00 = 76.00 → tax 3.80 → total 79.80
	assert.True(t, order.Subtotal.Equal(decimal.NewFromFloat(76.00)), "subtotal: %s", order.Subtotal)
	assert.True(t, order.Tax.Equal(decimal.NewFromFloat(3.80)), "tax: %s", order.Tax)
	assert.True(t, order.Total.Equal(decimal.NewFromFloat(79.80)), "total: %s", order.Total)

	// La reserva pasa a compromiso: el stock NO vuelve.
	assert.Equal(t, 8, f.meds.meds[medParaceta].Stock)
	assert.Equal(t, 0, f.meds.meds[medAmoxi].Stock)
	assert.Empty(t, f.carts.items, "el carrito queda vacío")

	draft, _ := f.orders.GetDraftByBuyer(testBuyerID)
	assert.Nil(t, draft, "ya no hay draft; el próximo Add crea uno nuevo")
}

func TestCheckout_CarritoVacio(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Checkout(context.Background(), testBuyerID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_LuegoNuevoCarritoCreaOtroDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)
	first, err := f.uc.Checkout(ctx, testBuyerID)
	require.NoError(t, err)

	_, err = f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)
	draft, _ := f.orders.GetDraftByBuyer(testBuyerID)
	require.NotNil(t, draft)
	assert.NotEqual(t, first.ID, draft.ID, "la orden confirmada y el nuevo draft son independientes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Get
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_TotalesCoherentesConElDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Add(ctx, testBuyerID, medParaceta)
	require.NoError(t, err)
	_, err = f.uc.SetQuantity(ctx, testBuyerID, medParaceta, 2)
	require.NoError(t, err)
	_, err = f.uc.Add(ctx, testBuyerID, medAmoxi)
	require.NoError(t, err)

	resp, err := f.uc.Get(ctx, testBuyerID)
	require.NoError(t, err)
	draft, _ := f.orders.GetDraftByBuyer(testBuyerID)
	require.NotNil(t, draft)

	assert.Equal(t, draft.ItemCount, resp.ItemCount)
	assert.True(t, resp.Subtotal.Equal(draft.Subtotal))
	assert.True(t, resp.Tax.Equal(draft.Tax))
	assert.True(t, resp.Total.Equal(draft.Total))
	assert.True(t, resp.Shipping.IsZero())
}
