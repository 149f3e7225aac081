package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, global_code, description, unit, purchase_unit, color,
		location_id, addressing_id, supplier_id, group_id, conversion_rule_id,
		cached_balance, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. El saldo cacheado nace en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, code, global_code, description, unit, purchase_unit, color,
			location_id, addressing_id, supplier_id, group_id, conversion_rule_id,
			cached_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.GlobalCode, product.Description,
		product.Unit, product.PurchaseUnit, product.Color,
		product.LocationID, product.AddressingID, product.SupplierID,
		product.GroupID, product.ConversionRuleID,
		product.CachedBalance, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo tiene
// sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) getOne(query, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.GlobalCode, &p.Description, &p.Unit, &p.PurchaseUnit, &p.Color,
		&p.LocationID, &p.AddressingID, &p.SupplierID, &p.GroupID, &p.ConversionRuleID,
		&p.CachedBalance, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los campos del producto. No toca el saldo cacheado.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET code = $2, global_code = $3, description = $4, unit = $5,
			purchase_unit = $6, color = $7, location_id = $8, addressing_id = $9,
			supplier_id = $10, group_id = $11, conversion_rule_id = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.GlobalCode, product.Description, product.Unit,
		product.PurchaseUnit, product.Color, product.LocationID, product.AddressingID,
		product.SupplierID, product.GroupID, product.ConversionRuleID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateCachedBalance fija el saldo cacheado sin condición. Uso exclusivo del
// camino transaccional de entradas/salidas, con la fila ya bloqueada.
func (r *ProductRepo) UpdateCachedBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET cached_balance = $2, updated_at = now() WHERE id = $1`,
		id, balance,
	)
	if err != nil {
		return fmt.Errorf("update cached balance: %w", err)
	}
	return nil
}

// CompareAndSetCachedBalance escribe newBalance solo si el saldo actual sigue
// siendo oldBalance dentro de la tolerancia. La condición va en el WHERE: el
// chequeo y la escritura son una sola sentencia atómica.
func (r *ProductRepo) CompareAndSetCachedBalance(id string, oldBalance, newBalance decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET cached_balance = $3, updated_at = now()
		 WHERE id = $1 AND abs(cached_balance - $2) <= $4`,
		id, oldBalance, newBalance, inventory.BalanceTolerance,
	)
	if err != nil {
		return false, fmt.Errorf("compare-and-set cached balance: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista todos los productos del catálogo.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productColumns+` FROM products ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Code, &p.GlobalCode, &p.Description, &p.Unit, &p.PurchaseUnit, &p.Color,
			&p.LocationID, &p.AddressingID, &p.SupplierID, &p.GroupID, &p.ConversionRuleID,
			&p.CachedBalance, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Sus movimientos quedan en el libro.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
