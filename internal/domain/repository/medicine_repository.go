package repository

import "github.com/jhoicas/Farmaventa-api/internal/domain/entity"

// MedicineRepository define el puerto de persistencia para Medicine (DIP).
type MedicineRepository interface {
	Create(medicine *entity.Medicine) error
	GetByID(id string) (*entity.Medicine, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usado por el carrito dentro de transacciones de reserva de stock.
	GetForUpdate(id string) (*entity.Medicine, error)
	Update(medicine *entity.Medicine) error
	// UpdateStock fija el stock absoluto (ya validado >= 0 por el caso de uso).
	UpdateStock(id string, stock int) error
	List(category string, limit, offset int) ([]*entity.Medicine, error)
	Delete(id string) error
}
