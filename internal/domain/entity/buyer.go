package entity

import "time"

// Estados válidos para Buyer y AdminUser.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDisabled = "disabled"
)

// CanTransitionApproval valida las transiciones del ciclo de aprobación:
// pending → approved ⇄ disabled. Un pending no puede deshabilitarse directo.
func CanTransitionApproval(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved
	case StatusApproved:
		return to == StatusDisabled
	case StatusDisabled:
		return to == StatusApproved
	}
	return false
}

// Address dirección de entrega de un comprador. Exactamente una debe ser default.
type Address struct {
	ID         string `json:"id"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	IsDefault  bool   `json:"is_default"`
}

// Buyer representa una farmacia/droguería compradora.
// Esquema canónico único: el estado pending reemplaza a la antigua colección
// separada de solicitudes. No existe operación de borrado.
type Buyer struct {
	ID           string
	BusinessName string
	ContactName  string
	Email        string
	Phone        string
	DrugLicense  string // número de licencia sanitaria del comprador
	PasswordHash string // bcrypt, nunca plano después de persistir
	Addresses    []Address
	Status       string // pending, approved, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultAddress devuelve la dirección marcada como default, o nil si no hay.
func (b *Buyer) DefaultAddress() *Address {
	for i := range b.Addresses {
		if b.Addresses[i].IsDefault {
			return &b.Addresses[i]
		}
	}
	return nil
}
