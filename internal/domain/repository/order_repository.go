package repository

import "github.com/jhoicas/Farmaventa-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetDraftByBuyer devuelve la única orden draft del comprador, o nil.
	GetDraftByBuyer(buyerID string) (*entity.Order, error)
	// Update reemplaza cabecera y líneas (las líneas se reescriben completas).
	Update(order *entity.Order) error
	UpdateStatus(id, status string) error
	DeleteDraftByBuyer(buyerID string) error
	// List filtra por estado ("" = todos, excluyendo drafts solo si excludeDrafts).
	List(status string, excludeDrafts bool, limit, offset int) ([]*entity.Order, error)
	ListByBuyer(buyerID string, limit, offset int) ([]*entity.Order, error)
}
