package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository (fila única id='store').
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve el perfil de la tienda, o nil si aún no se configuró.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), `
		SELECT id, store_name, contact_email, contact_phone, address, currency_code, low_stock_threshold, updated_at
		FROM settings WHERE id = 'store'`,
	).Scan(&s.ID, &s.StoreName, &s.ContactEmail, &s.ContactPhone, &s.Address,
		&s.CurrencyCode, &s.LowStockThreshold, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza la fila única.
func (r *SettingsRepo) Upsert(s *entity.Settings) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO settings (id, store_name, contact_email, contact_phone, address, currency_code, low_stock_threshold, updated_at)
		VALUES ('store', $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone,
			address = EXCLUDED.address,
			currency_code = EXCLUDED.currency_code,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			updated_at = EXCLUDED.updated_at`,
		s.StoreName, s.ContactEmail, s.ContactPhone, s.Address,
		s.CurrencyCode, s.LowStockThreshold, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
