package repository

import "github.com/jhoicas/Farmaventa-api/internal/domain/entity"

// AdminRepository define el puerto de persistencia para AdminUser.
type AdminRepository interface {
	Create(admin *entity.AdminUser) error
	GetByID(id string) (*entity.AdminUser, error)
	GetByEmail(email string) (*entity.AdminUser, error)
	Update(admin *entity.AdminUser) error
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.AdminUser, error)
}
