package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
// Draft es interno: la orden que se sincroniza desde el carrito en curso.
const (
	OrderStatusDraft      = "draft"
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// orderTransitions define la máquina de estados de la orden.
// cancelled es alcanzable desde cualquier estado no terminal.
var orderTransitions = map[string][]string{
	OrderStatusDraft:      {OrderStatusPending, OrderStatusCancelled},
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// IsValidOrderStatus informa si el valor es un estado conocido.
func IsValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// IsTerminalOrderStatus informa si el estado no admite más transiciones.
func IsTerminalOrderStatus(s string) bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionOrder valida la transición from → to según la máquina de estados.
func CanTransitionOrder(from, to string) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// OrderItem línea de una orden (precio unitario congelado al momento de reservar).
type OrderItem struct {
	MedicineID string
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

// Order representa un pedido mayorista. Mientras el carrito está activo existe
// exactamente una orden draft por comprador, sincronizada en cada mutación del
// carrito; el checkout la promueve a pending sin liberar el stock reservado.
type Order struct {
	ID         string
	BuyerID    string
	BuyerName  string // denormalizado para listados y export CSV
	Items      []OrderItem
	ItemCount  int
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Status     string
	CheckoutAt *time.Time // estampado en draft → pending
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
