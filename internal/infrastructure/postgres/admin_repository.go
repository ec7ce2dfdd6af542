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

var _ repository.AdminRepository = (*AdminRepo)(nil)

const adminColumns = `id, name, email, phone, password_hash, role, permissions, status, created_at, updated_at`

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
// permissions es text[]: pgx lo mapea directo a []string.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un administrador nuevo (email único).
func (r *AdminRepo) Create(a *entity.AdminUser) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO admins (`+adminColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.Name, a.Email, a.Phone, a.PasswordHash, a.Role,
		a.Permissions, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByID obtiene un administrador por ID, o nil.
func (r *AdminRepo) GetByID(id string) (*entity.AdminUser, error) {
	return r.getOne(`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
}

// GetByEmail obtiene un administrador por email, o nil.
func (r *AdminRepo) GetByEmail(email string) (*entity.AdminUser, error) {
	return r.getOne(`SELECT `+adminColumns+` FROM admins WHERE lower(email) = lower($1)`, email)
}

func (r *AdminRepo) getOne(query string, arg any) (*entity.AdminUser, error) {
	var a entity.AdminUser
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.Role,
		&a.Permissions, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// Update actualiza perfil y permisos.
func (r *AdminRepo) Update(a *entity.AdminUser) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE admins SET name = $2, phone = $3, permissions = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		a.ID, a.Name, a.Phone, a.Permissions, a.Status, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado.
func (r *AdminRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE admins SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update admin status: %w", err)
	}
	return nil
}

// List lista administradores, más recientes primero.
func (r *AdminRepo) List(limit, offset int) ([]*entity.AdminUser, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+adminColumns+` FROM admins ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()
	var list []*entity.AdminUser
	for rows.Next() {
		var a entity.AdminUser
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.Role,
			&a.Permissions, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
