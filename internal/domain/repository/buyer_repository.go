package repository

import "github.com/jhoicas/Farmaventa-api/internal/domain/entity"

// BuyerRepository define el puerto de persistencia para Buyer.
// Una sola tabla con status reemplaza a la antigua cola separada de
// solicitudes: ListByStatus(pending) es la cola de aprobación.
// No hay Delete: los compradores se deshabilitan, nunca se borran.
type BuyerRepository interface {
	Create(buyer *entity.Buyer) error
	GetByID(id string) (*entity.Buyer, error)
	GetByEmail(email string) (*entity.Buyer, error)
	Update(buyer *entity.Buyer) error
	UpdateStatus(id, status string) error
	ListByStatus(status string, limit, offset int) ([]*entity.Buyer, error)
	CountByStatus(status string) (int, error)
}
