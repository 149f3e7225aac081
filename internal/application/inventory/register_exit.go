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

// RegisterExit registra una salida. El chequeo de stock insuficiente ocurre
// aquí, contra el saldo con la fila bloqueada; si no alcanza, la salida se
// rechaza con la cantidad disponible en el mensaje. Para piezas se valida la
// disponibilidad de la medida concreta plegando el historial del producto.
func (uc *RegisterMovementUseCase) RegisterExit(ctx context.Context, userID string, in dto.RegisterExitRequest) (*dto.MovementResponse, error) {
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

	isPiece := in.PieceLabel != ""
	qty := inventory.ParseQuantity(in.Quantity)
	if !isPiece && !qty.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad de salida debe ser positiva", domain.ErrInvalidInput)
	}
	pieceCount := inventory.ParsePieceCount(in.Quantity)
	if isPiece && pieceCount <= 0 {
		return nil, fmt.Errorf("%w: la cantidad de piezas debe ser positiva", domain.ErrInvalidInput)
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:         uuid.New().String(),
		Kind:       entity.MovementKindExit,
		ProductRef: product.ID,
		Quantity:   exitQuantityText(isPiece, in.Quantity, qty),
		PieceLabel: in.PieceLabel,
		OccurredAt: now,
		CreatedAt:  now,
		CreatedBy:  userID,
		Note:       in.Note,
		ExitTypeID: in.ExitTypeID,
		WorkID:     in.WorkID,
		Requester:  in.Requester,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// El bloqueo de fila serializa también las salidas de piezas del mismo producto.
		locked, err := productRepo.GetForUpdate(product.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		if isPiece {
			history, err := movRepo.ListByProduct(product.ID)
			if err != nil {
				return err
			}
			proj := inventory.Project(product.ID, history)
			label := mov.Label()
			if available := proj.Pieces[label]; available < pieceCount {
				return fmt.Errorf("%w: medida %q, disponibles %d", domain.ErrInsufficientPieces, label, available)
			}
			return movRepo.Create(mov)
		}

		if locked.CachedBalance.LessThan(qty) {
			return fmt.Errorf("%w: disponible %s %s", domain.ErrInsufficientStock, locked.CachedBalance, product.Unit)
		}
		if err := productRepo.UpdateCachedBalance(locked.ID, locked.CachedBalance.Sub(qty)); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// exitQuantityText: las piezas conservan lo digitado (vacío = 1 unidad); el
// granel persiste la cantidad normalizada con punto.
func exitQuantityText(isPiece bool, raw string, qty decimal.Decimal) string {
	if isPiece {
		return raw
	}
	return qty.String()
}
