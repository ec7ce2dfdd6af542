package repository

import "github.com/jhoicas/Farmaventa-api/internal/domain/entity"

// SettingsRepository puerto para el perfil de la tienda (fila única).
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}
