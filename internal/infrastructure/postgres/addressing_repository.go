package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.AddressingRepository = (*AddressingRepo)(nil)

// AddressingRepo implementación del puerto AddressingRepository sobre PostgreSQL.
type AddressingRepo struct {
	q Querier
}

// NewAddressingRepository construye el adaptador.
func NewAddressingRepository(q Querier) *AddressingRepo {
	return &AddressingRepo{q: q}
}

// Create persiste un endereçamiento.
func (r *AddressingRepo) Create(a *entity.Addressing) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO addressings (id, code, location_id) VALUES ($1, $2, $3)`,
		a.ID, a.Code, a.LocationID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert addressing: %w", err)
	}
	return nil
}

// GetByID obtiene un endereçamiento por ID.
func (r *AddressingRepo) GetByID(id string) (*entity.Addressing, error) {
	var a entity.Addressing
	err := r.q.QueryRow(context.Background(),
		`SELECT id, code, location_id FROM addressings WHERE id = $1`, id,
	).Scan(&a.ID, &a.Code, &a.LocationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get addressing: %w", err)
	}
	return &a, nil
}

// List lista todos los endereçamientos.
func (r *AddressingRepo) List() ([]*entity.Addressing, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, location_id FROM addressings ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list addressings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Addressing
	for rows.Next() {
		var a entity.Addressing
		if err := rows.Scan(&a.ID, &a.Code, &a.LocationID); err != nil {
			return nil, fmt.Errorf("scan addressing: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un endereçamiento.
func (r *AddressingRepo) Update(a *entity.Addressing) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE addressings SET code = $2, location_id = $3 WHERE id = $1`,
		a.ID, a.Code, a.LocationID,
	)
	if err != nil {
		return fmt.Errorf("update addressing: %w", err)
	}
	return nil
}

// Delete elimina un endereçamiento.
func (r *AddressingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM addressings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete addressing: %w", err)
	}
	return nil
}
