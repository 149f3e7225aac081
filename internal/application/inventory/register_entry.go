package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// RegisterMovementUseCase registra entradas y salidas de forma transaccional:
// bloquea la fila del producto (SELECT FOR UPDATE), agrega el movimiento al
// libro y actualiza el saldo cacheado en la misma transacción.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	ruleRepo     repository.ConversionRuleRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	ruleRepo repository.ConversionRuleRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		ruleRepo:     ruleRepo,
	}
}

// RegisterEntry registra un ingreso. La cantidad digitada está en unidad de
// compra: si el producto tiene regla de conversión se traduce a unidad de stock
// ANTES de persistir, y el proyector nunca vuelve a convertir. El costo total
// (componentes + recargo del proveedor) se congela en el movimiento al
// escribirlo; cambios futuros de la tasa del proveedor no reescriben historia.
func (uc *RegisterMovementUseCase) RegisterEntry(ctx context.Context, userID string, in dto.RegisterEntryRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	purchaseQty := inventory.ParseQuantity(in.Quantity)
	isPiece := in.PieceLabel != ""
	if !isPiece && !purchaseQty.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad de entrada debe ser positiva", domain.ErrInvalidInput)
	}

	stockQty := purchaseQty
	if !isPiece && product.ConversionRuleID != "" {
		rule, err := uc.ruleRepo.GetByID(product.ConversionRuleID)
		if err != nil {
			return nil, err
		}
		if rule != nil {
			stockQty = rule.Convert(purchaseQty)
		}
	}

	surcharge := decimal.Zero
	if product.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(product.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier != nil {
			surcharge = supplier.SurchargePercent
		}
	}

	unitPrice := inventory.ParseQuantity(in.UnitPrice)
	icms := inventory.ParseQuantity(in.TaxICMS)
	ipi := inventory.ParseQuantity(in.TaxIPI)
	freight := inventory.ParseQuantity(in.Freight)

	var totalCost decimal.NullDecimal
	if unitPrice.GreaterThan(decimal.Zero) {
		totalCost = decimal.NullDecimal{
			Decimal: inventory.EntryTotalCost(purchaseQty, unitPrice, icms, ipi, freight, surcharge),
			Valid:   true,
		}
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:               uuid.New().String(),
		Kind:             entity.MovementKindEntry,
		ProductRef:       product.ID,
		Quantity:         entryQuantityText(isPiece, in.Quantity, stockQty),
		PieceLabel:       in.PieceLabel,
		OccurredAt:       now,
		CreatedAt:        now,
		CreatedBy:        userID,
		Note:             in.Note,
		UnitPrice:        unitPrice,
		TaxICMS:          icms,
		TaxIPI:           ipi,
		Freight:          freight,
		PurchaseQuantity: purchaseQty,
		TotalEntryCost:   totalCost,
		EntryTypeID:      in.EntryTypeID,
		InvoiceNumber:    in.InvoiceNumber,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Las piezas llevan inventario propio por etiqueta; no tocan el saldo a granel.
		if isPiece {
			return movRepo.Create(mov)
		}
		locked, err := productRepo.GetForUpdate(product.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.UpdateCachedBalance(locked.ID, locked.CachedBalance.Add(stockQty)); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// entryQuantityText decide qué texto de cantidad queda en el libro: las piezas
// conservan lo digitado (vacío cuenta como 1 unidad); el granel persiste la
// cantidad ya convertida, en formato con punto.
func entryQuantityText(isPiece bool, raw string, stockQty decimal.Decimal) string {
	if isPiece {
		return raw
	}
	return stockQty.String()
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:               m.ID,
		Kind:             m.Kind,
		ProductRef:       m.ProductRef,
		Quantity:         m.Quantity,
		PieceLabel:       m.PieceLabel,
		OccurredAt:       m.OccurredAt,
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
		Note:             m.Note,
		UnitPrice:        m.UnitPrice,
		TaxICMS:          m.TaxICMS,
		TaxIPI:           m.TaxIPI,
		Freight:          m.Freight,
		PurchaseQuantity: m.PurchaseQuantity,
		TotalEntryCost:   m.TotalEntryCost,
		EntryTypeID:      m.EntryTypeID,
		InvoiceNumber:    m.InvoiceNumber,
		ExitTypeID:       m.ExitTypeID,
		WorkID:           m.WorkID,
		Requester:        m.Requester,
	}
}
