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

var (
	_ repository.MovementRepository       = (*MovementRepo)(nil)
	_ repository.MovementRelinkRepository = (*MovementRepo)(nil)
)

const movementColumns = `id, kind, product_ref, quantity, piece_label, occurred_at, created_at,
		created_by, note, unit_price, tax_icms, tax_ipi, freight, purchase_quantity,
		total_entry_cost, entry_type_id, invoice_number, exit_type_id, work_id, requester`

// MovementRepo implementación del libro de movimientos sobre PostgreSQL.
// quantity es TEXT a propósito: los datos históricos traen coma o punto como
// separador decimal y el texto crudo se preserva tal cual llegó.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create agrega un movimiento al libro.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, kind, product_ref, quantity, piece_label, occurred_at, created_at,
			created_by, note, unit_price, tax_icms, tax_ipi, freight, purchase_quantity,
			total_entry_cost, entry_type_id, invoice_number, exit_type_id, work_id, requester)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Kind, m.ProductRef, m.Quantity, m.PieceLabel, m.OccurredAt, m.CreatedAt,
		m.CreatedBy, m.Note, m.UnitPrice, m.TaxICMS, m.TaxIPI, m.Freight, m.PurchaseQuantity,
		m.TotalEntryCost, m.EntryTypeID, m.InvoiceNumber, m.ExitTypeID, m.WorkID, m.Requester,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	var m entity.Movement
	err := r.q.QueryRow(context.Background(),
		`SELECT `+movementColumns+` FROM movements WHERE id = $1`, id).Scan(scanTargets(&m)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List devuelve el libro completo.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	return r.list(`SELECT ` + movementColumns + ` FROM movements ORDER BY occurred_at DESC`)
}

// ListByProduct devuelve el historial de un producto.
func (r *MovementRepo) ListByProduct(productRef string) ([]*entity.Movement, error) {
	return r.list(`SELECT `+movementColumns+` FROM movements WHERE product_ref = $1 ORDER BY occurred_at DESC`, productRef)
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(scanTargets(&m)...); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func scanTargets(m *entity.Movement) []any {
	return []any{
		&m.ID, &m.Kind, &m.ProductRef, &m.Quantity, &m.PieceLabel, &m.OccurredAt, &m.CreatedAt,
		&m.CreatedBy, &m.Note, &m.UnitPrice, &m.TaxICMS, &m.TaxIPI, &m.Freight, &m.PurchaseQuantity,
		&m.TotalEntryCost, &m.EntryTypeID, &m.InvoiceNumber, &m.ExitTypeID, &m.WorkID, &m.Requester,
	}
}

// UpdateProductRef reescribe el product_ref de un movimiento legado. Única
// mutación permitida sobre el libro; la usa solo la migración de religado.
func (r *MovementRepo) UpdateProductRef(movementID, newProductRef string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE movements SET product_ref = $2 WHERE id = $1`,
		movementID, newProductRef,
	)
	if err != nil {
		return fmt.Errorf("relink movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
