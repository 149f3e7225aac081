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

var _ repository.CatalogItemRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogItemRepository sobre PostgreSQL.
// Una sola tabla para todas las colecciones simples, discriminada por kind.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Create persiste un elemento de configuración.
func (r *CatalogRepo) Create(item *entity.CatalogItem) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO catalog_items (id, kind, name) VALUES ($1, $2, $3)`,
		item.ID, string(item.Kind), item.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert catalog item: %w", err)
	}
	return nil
}

// GetByID obtiene un elemento por kind e ID.
func (r *CatalogRepo) GetByID(kind entity.CatalogKind, id string) (*entity.CatalogItem, error) {
	var item entity.CatalogItem
	var k string
	err := r.q.QueryRow(context.Background(),
		`SELECT id, kind, name FROM catalog_items WHERE kind = $1 AND id = $2`,
		string(kind), id,
	).Scan(&item.ID, &k, &item.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog item: %w", err)
	}
	item.Kind = entity.CatalogKind(k)
	return &item, nil
}

// ListByKind lista los elementos de una colección.
func (r *CatalogRepo) ListByKind(kind entity.CatalogKind) ([]*entity.CatalogItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, kind, name FROM catalog_items WHERE kind = $1 ORDER BY name`,
		string(kind))
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogItem
	for rows.Next() {
		var item entity.CatalogItem
		var k string
		if err := rows.Scan(&item.ID, &k, &item.Name); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		item.Kind = entity.CatalogKind(k)
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Update renombra un elemento.
func (r *CatalogRepo) Update(item *entity.CatalogItem) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE catalog_items SET name = $3 WHERE kind = $1 AND id = $2`,
		string(item.Kind), item.ID, item.Name,
	)
	if err != nil {
		return fmt.Errorf("update catalog item: %w", err)
	}
	return nil
}

// Delete elimina un elemento de la colección kind.
func (r *CatalogRepo) Delete(kind entity.CatalogKind, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM catalog_items WHERE kind = $1 AND id = $2`,
		string(kind), id,
	)
	if err != nil {
		return fmt.Errorf("delete catalog item: %w", err)
	}
	return nil
}
