package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmaventa-api/internal/domain"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
	"github.com/jhoicas/Farmaventa-api/internal/domain/repository"
)

var _ repository.BuyerRepository = (*BuyerRepo)(nil)

const buyerColumns = `id, business_name, contact_name, email, phone, drug_license, password_hash, addresses, status, created_at, updated_at`

// BuyerRepo implementación del puerto BuyerRepository sobre PostgreSQL.
// Las direcciones se guardan como JSONB (lista pequeña, siempre se lee entera).
type BuyerRepo struct {
	q Querier
}

// NewBuyerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBuyerRepository(q Querier) *BuyerRepo {
	return &BuyerRepo{q: q}
}

// Create persiste un comprador nuevo (email único).
func (r *BuyerRepo) Create(b *entity.Buyer) error {
	addrs, err := json.Marshal(b.Addresses)
	if err != nil {
		return fmt.Errorf("marshal addresses: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `
		INSERT INTO buyers (`+buyerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID, b.BusinessName, b.ContactName, b.Email, b.Phone, b.DrugLicense,
		b.PasswordHash, addrs, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert buyer: %w", err)
	}
	return nil
}

// GetByID obtiene un comprador por ID, o nil.
func (r *BuyerRepo) GetByID(id string) (*entity.Buyer, error) {
	return r.getOne(`SELECT `+buyerColumns+` FROM buyers WHERE id = $1`, id)
}

// GetByEmail obtiene un comprador por email, o nil.
func (r *BuyerRepo) GetByEmail(email string) (*entity.Buyer, error) {
	return r.getOne(`SELECT `+buyerColumns+` FROM buyers WHERE lower(email) = lower($1)`, email)
}

func (r *BuyerRepo) getOne(query string, arg any) (*entity.Buyer, error) {
	var b entity.Buyer
	var addrs []byte
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.BusinessName, &b.ContactName, &b.Email, &b.Phone, &b.DrugLicense,
		&b.PasswordHash, &addrs, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get buyer: %w", err)
	}
	if len(addrs) > 0 {
		// JSON corrupto se trata como lista vacía (se loguea arriba), no rompe el login
		_ = json.Unmarshal(addrs, &b.Addresses)
	}
	return &b, nil
}

// Update actualiza perfil, direcciones y estado.
func (r *BuyerRepo) Update(b *entity.Buyer) error {
	addrs, err := json.Marshal(b.Addresses)
	if err != nil {
		return fmt.Errorf("marshal addresses: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `
		UPDATE buyers SET business_name = $2, contact_name = $3, phone = $4, drug_license = $5,
			addresses = $6, status = $7, updated_at = $8
		WHERE id = $1`,
		b.ID, b.BusinessName, b.ContactName, b.Phone, b.DrugLicense,
		addrs, b.Status, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update buyer: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado (transición ya validada por el caso de uso).
func (r *BuyerRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE buyers SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update buyer status: %w", err)
	}
	return nil
}

// ListByStatus lista compradores por estado ("" = todos), más recientes primero.
func (r *BuyerRepo) ListByStatus(status string, limit, offset int) ([]*entity.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Buyer
	for rows.Next() {
		var b entity.Buyer
		var addrs []byte
		if err := rows.Scan(&b.ID, &b.BusinessName, &b.ContactName, &b.Email, &b.Phone, &b.DrugLicense,
			&b.PasswordHash, &addrs, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan buyer: %w", err)
		}
		if len(addrs) > 0 {
			_ = json.Unmarshal(addrs, &b.Addresses)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// CountByStatus cuenta compradores en un estado (widget de solicitudes pendientes).
func (r *BuyerRepo) CountByStatus(status string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM buyers WHERE status = $1`, status,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count buyers: %w", err)
	}
	return n, nil
}
