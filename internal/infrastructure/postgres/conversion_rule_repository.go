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

var _ repository.ConversionRuleRepository = (*ConversionRuleRepo)(nil)

// ConversionRuleRepo implementación del puerto ConversionRuleRepository sobre PostgreSQL.
type ConversionRuleRepo struct {
	q Querier
}

// NewConversionRuleRepository construye el adaptador.
func NewConversionRuleRepository(q Querier) *ConversionRuleRepo {
	return &ConversionRuleRepo{q: q}
}

// Create persiste una regla de conversión.
func (r *ConversionRuleRepo) Create(rule *entity.ConversionRule) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO conversion_rules (id, name, purchase_factor, purchase_unit, stock_factor, stock_unit)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rule.ID, rule.Name, rule.PurchaseFactor, rule.PurchaseUnit, rule.StockFactor, rule.StockUnit,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert conversion rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *ConversionRuleRepo) GetByID(id string) (*entity.ConversionRule, error) {
	var rule entity.ConversionRule
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, purchase_factor, purchase_unit, stock_factor, stock_unit
		 FROM conversion_rules WHERE id = $1`, id,
	).Scan(&rule.ID, &rule.Name, &rule.PurchaseFactor, &rule.PurchaseUnit, &rule.StockFactor, &rule.StockUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conversion rule: %w", err)
	}
	return &rule, nil
}

// List lista todas las reglas.
func (r *ConversionRuleRepo) List() ([]*entity.ConversionRule, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, purchase_factor, purchase_unit, stock_factor, stock_unit
		 FROM conversion_rules ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list conversion rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.ConversionRule
	for rows.Next() {
		var rule entity.ConversionRule
		if err := rows.Scan(&rule.ID, &rule.Name, &rule.PurchaseFactor, &rule.PurchaseUnit,
			&rule.StockFactor, &rule.StockUnit); err != nil {
			return nil, fmt.Errorf("scan conversion rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Update actualiza una regla.
func (r *ConversionRuleRepo) Update(rule *entity.ConversionRule) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE conversion_rules SET name = $2, purchase_factor = $3, purchase_unit = $4,
			stock_factor = $5, stock_unit = $6 WHERE id = $1`,
		rule.ID, rule.Name, rule.PurchaseFactor, rule.PurchaseUnit, rule.StockFactor, rule.StockUnit,
	)
	if err != nil {
		return fmt.Errorf("update conversion rule: %w", err)
	}
	return nil
}

// Delete elimina una regla.
func (r *ConversionRuleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM conversion_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete conversion rule: %w", err)
	}
	return nil
}
