package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

const medicineColumns = `id, name, description, category, price, stock, unit, batch_no, expiry_date, image_url, created_at, updated_at`

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL (usable con pool o tx).
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

// Create persiste un nuevo medicamento.
func (r *MedicineRepo) Create(m *entity.Medicine) error {
	query := `
		INSERT INTO medicines (` + medicineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Description, m.Category, m.Price, m.Stock,
		m.Unit, m.BatchNo, m.ExpiryDate, m.ImageURL, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID.
func (r *MedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	return r.get(`SELECT `+medicineColumns+` FROM medicines WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila del medicamento (SELECT FOR UPDATE).
// Serializa las reservas de stock concurrentes sobre el mismo medicamento.
func (r *MedicineRepo) GetForUpdate(id string) (*entity.Medicine, error) {
	return r.get(`SELECT `+medicineColumns+` FROM medicines WHERE id = $1 FOR UPDATE`, id)
}

func (r *MedicineRepo) get(query, id string) (*entity.Medicine, error) {
	var m entity.Medicine
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Description, &m.Category, &m.Price, &m.Stock,
		&m.Unit, &m.BatchNo, &m.ExpiryDate, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	return &m, nil
}

// Update actualiza un medicamento existente (incluido el stock por edición admin).
func (r *MedicineRepo) Update(m *entity.Medicine) error {
	query := `
		UPDATE medicines SET name = $2, description = $3, category = $4, price = $5, stock = $6,
			unit = $7, batch_no = $8, expiry_date = $9, image_url = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Description, m.Category, m.Price, m.Stock,
		m.Unit, m.BatchNo, m.ExpiryDate, m.ImageURL, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medicine: %w", err)
	}
	return nil
}

// UpdateStock fija el stock absoluto. El CHECK (stock >= 0) de la tabla es la
// última línea de defensa; el caso de uso valida antes bajo el row lock.
func (r *MedicineRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE medicines SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update medicine stock: %w", err)
	}
	return nil
}

// List lista el catálogo con filtro opcional por categoría.
func (r *MedicineRepo) List(category string, limit, offset int) ([]*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1 ORDER BY name LIMIT $2 OFFSET $3`
		args = append(args, category, limit, offset)
	} else {
		query += ` ORDER BY name LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medicine
	for rows.Next() {
		var m entity.Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Category, &m.Price, &m.Stock,
			&m.Unit, &m.BatchNo, &m.ExpiryDate, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un medicamento por ID.
func (r *MedicineRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	return nil
}
