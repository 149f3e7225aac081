package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

// RelinkUseCase es la migración explícita y auditada que corrige los
// product_ref legados: movimientos que guardaron el código visible del
// producto, o un ID con espacios accidentales, en lugar del ID. Se corre una
// vez (idealmente en dry-run primero), loguea cada religado movimiento por
// movimiento y es la ÚNICA pieza del sistema autorizada a reescribir el libro.
type RelinkUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	relinkRepo   repository.MovementRelinkRepository
	log          *logger.Logger
}

// NewRelinkUseCase construye la migración de religado.
func NewRelinkUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	relinkRepo repository.MovementRelinkRepository,
	log *logger.Logger,
) *RelinkUseCase {
	return &RelinkUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		relinkRepo:   relinkRepo,
		log:          log,
	}
}

// Run recorre el libro completo, busca candidato para cada referencia huérfana
// (ID recortado, luego código visible) y reescribe el product_ref. Con dryRun
// reporta sin escribir. Los huérfanos sin candidato quedan en el reporte para
// corrección manual.
func (uc *RelinkUseCase) Run(ctx context.Context, dryRun bool) (*dto.RelinkReportResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	ix := inventory.NewCatalogIndex(products)

	report := &dto.RelinkReportResponse{DryRun: dryRun, Scanned: len(movements)}
	for _, m := range movements {
		res := ix.Resolve(m.ProductRef)
		if !res.Orphan {
			continue
		}
		candidate := ix.RelinkCandidate(m.ProductRef)
		if candidate == nil {
			report.Unmatched = append(report.Unmatched, dto.OrphanMovementResponse{
				MovementID: m.ID,
				ProductRef: m.ProductRef,
				Kind:       m.Kind,
				Quantity:   m.Quantity,
				Reason:     res.Reason,
			})
			continue
		}
		if !dryRun {
			if err := uc.relinkRepo.UpdateProductRef(m.ID, candidate.ID); err != nil {
				return nil, err
			}
		}
		uc.log.Info().
			Bool("dry_run", dryRun).
			Str("movement_id", m.ID).
			Str("old_ref", m.ProductRef).
			Str("new_ref", candidate.ID).
			Str("code", candidate.Code).
			Msg("religado de movimiento legado")
		report.Relinked = append(report.Relinked, dto.RelinkEntryResponse{
			MovementID: m.ID,
			OldRef:     m.ProductRef,
			NewRef:     candidate.ID,
			Code:       candidate.Code,
		})
	}
	return report, nil
}
