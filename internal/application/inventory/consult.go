package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

// ConsultUseCase responde las consultas de saldo. La fuente de verdad es
// siempre la proyección plegada del libro de movimientos; el saldo cacheado se
// devuelve solo como diagnóstico y, si difiere más allá de la tolerancia, se
// agenda su corrección en segundo plano sin bloquear la respuesta.
type ConsultUseCase struct {
	productRepo    repository.ProductRepository
	movementRepo   repository.MovementRepository
	addressingRepo repository.AddressingRepository
	catalogRepo    repository.CatalogItemRepository
	reconciler     *Reconciler
	log            *logger.Logger
}

// NewConsultUseCase construye el caso de uso de consulta.
func NewConsultUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	addressingRepo repository.AddressingRepository,
	catalogRepo repository.CatalogItemRepository,
	reconciler *Reconciler,
	log *logger.Logger,
) *ConsultUseCase {
	return &ConsultUseCase{
		productRepo:    productRepo,
		movementRepo:   movementRepo,
		addressingRepo: addressingRepo,
		catalogRepo:    catalogRepo,
		reconciler:     reconciler,
		log:            log,
	}
}

// balanceScan es el resultado de plegar el libro completo contra el catálogo.
type balanceScan struct {
	products    []*entity.Product
	projections map[string]inventory.Projection
	orphans     []inventory.OrphanMovement
}

// scan toma un snapshot de catálogo y libro, resuelve cada movimiento por
// identidad exacta y pliega por producto. Los huérfanos quedan fuera de toda
// proyección, se loguean y se devuelven como diagnóstico.
func (uc *ConsultUseCase) scan(ctx context.Context) (*balanceScan, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	ix := inventory.NewCatalogIndex(products)
	byProduct := make(map[string][]*entity.Movement, len(products))
	var orphans []inventory.OrphanMovement
	for _, m := range movements {
		res := ix.Resolve(m.ProductRef)
		if res.Orphan {
			orphans = append(orphans, inventory.OrphanMovement{
				MovementID: m.ID,
				ProductRef: m.ProductRef,
				Kind:       m.Kind,
				Quantity:   m.Quantity,
				Reason:     res.Reason,
			})
			uc.log.Warn().
				Str("movement_id", m.ID).
				Str("product_ref", m.ProductRef).
				Str("reason", res.Reason).
				Msg("movimiento huérfano excluido de la proyección")
			continue
		}
		byProduct[res.Product.ID] = append(byProduct[res.Product.ID], m)
	}

	projections := make(map[string]inventory.Projection, len(products))
	for _, p := range products {
		projections[p.ID] = inventory.Project(p.ID, byProduct[p.ID])
	}
	return &balanceScan{products: products, projections: projections, orphans: orphans}, nil
}

// ConsultBalances devuelve el saldo proyectado de todos los productos, ordenado
// por código con colación pt-BR, más los huérfanos y el valor total del stock.
// Los saldos cacheados desviados se reconcilian en segundo plano.
func (uc *ConsultUseCase) ConsultBalances(ctx context.Context) (*dto.BalanceListResponse, error) {
	scan, err := uc.scan(ctx)
	if err != nil {
		return nil, err
	}
	addrLabels, err := uc.addressingLabels()
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductBalanceResponse, 0, len(scan.products))
	totalValue := decimal.Zero
	var candidates []ReconcileCandidate
	for _, p := range scan.products {
		proj := scan.projections[p.ID]
		drift := proj.NeedsReconciliation(p.CachedBalance)
		if drift {
			candidates = append(candidates, ReconcileCandidate{
				ProductID: p.ID,
				Cached:    p.CachedBalance,
				Projected: proj.CurrentStock,
			})
		}
		items = append(items, toBalanceResponse(p, proj, addrLabels[p.AddressingID], drift))
		totalValue = totalValue.Add(proj.TotalStockValue)
	}

	cl := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(items, func(i, j int) bool {
		return cl.CompareString(items[i].Code, items[j].Code) < 0
	})

	if len(candidates) > 0 {
		// Fire-and-forget: la respuesta no espera al write-back.
		go uc.reconciler.ReconcileBatch(context.WithoutCancel(ctx), candidates)
	}

	return &dto.BalanceListResponse{
		Items:      items,
		Orphans:    toOrphanResponses(scan.orphans),
		TotalValue: totalValue,
	}, nil
}

// ConsultProduct devuelve el saldo proyectado de un producto, con sus piezas.
func (uc *ConsultUseCase) ConsultProduct(ctx context.Context, productID string) (*dto.ProductBalanceResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	history, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	proj := inventory.Project(productID, history)

	addrLabels, err := uc.addressingLabels()
	if err != nil {
		return nil, err
	}

	drift := proj.NeedsReconciliation(product.CachedBalance)
	if drift {
		go uc.reconciler.ReconcileBatch(context.WithoutCancel(ctx), []ReconcileCandidate{{
			ProductID: product.ID,
			Cached:    product.CachedBalance,
			Projected: proj.CurrentStock,
		}})
	}

	resp := toBalanceResponse(product, proj, addrLabels[product.AddressingID], drift)
	return &resp, nil
}

// Orphans devuelve los movimientos que no resuelven a ningún producto.
func (uc *ConsultUseCase) Orphans(ctx context.Context) ([]dto.OrphanMovementResponse, error) {
	scan, err := uc.scan(ctx)
	if err != nil {
		return nil, err
	}
	return toOrphanResponses(scan.orphans), nil
}

// ListMovements devuelve el libro completo, más reciente primero.
func (uc *ConsultUseCase) ListMovements(ctx context.Context) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].OccurredAt.After(movements[j].OccurredAt)
	})
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// addressingLabels arma la etiqueta legible de cada endereçamiento:
// "código - nombre del local".
func (uc *ConsultUseCase) addressingLabels() (map[string]string, error) {
	addressings, err := uc.addressingRepo.List()
	if err != nil {
		return nil, err
	}
	locations, err := uc.catalogRepo.ListByKind(entity.CatalogLocations)
	if err != nil {
		return nil, err
	}
	locNames := make(map[string]string, len(locations))
	for _, l := range locations {
		locNames[l.ID] = l.Name
	}
	labels := make(map[string]string, len(addressings))
	for _, a := range addressings {
		label := a.Code
		if name := locNames[a.LocationID]; name != "" {
			label = a.Code + " - " + name
		}
		labels[a.ID] = label
	}
	return labels, nil
}

func toBalanceResponse(p *entity.Product, proj inventory.Projection, addressing string, drift bool) dto.ProductBalanceResponse {
	pieces := proj.AvailablePieces()
	pieceDTOs := make([]dto.PieceBalanceResponse, 0, len(pieces))
	for _, pb := range pieces {
		pieceDTOs = append(pieceDTOs, dto.PieceBalanceResponse{Label: pb.Label, Count: pb.Count})
	}
	return dto.ProductBalanceResponse{
		ProductID:       p.ID,
		Code:            p.Code,
		Description:     p.Description,
		Unit:            p.Unit,
		Addressing:      addressing,
		CurrentStock:    proj.CurrentStock,
		TotalEntries:    proj.TotalEntries,
		TotalExits:      proj.TotalExits,
		WeightedAvgCost: proj.WeightedAvgCost,
		TotalStockValue: proj.TotalStockValue,
		CachedBalance:   p.CachedBalance,
		NegativeStock:   proj.NegativeStock,
		Drift:           drift,
		Pieces:          pieceDTOs,
	}
}

func toOrphanResponses(orphans []inventory.OrphanMovement) []dto.OrphanMovementResponse {
	out := make([]dto.OrphanMovementResponse, 0, len(orphans))
	for _, o := range orphans {
		out = append(out, dto.OrphanMovementResponse{
			MovementID: o.MovementID,
			ProductRef: o.ProductRef,
			Kind:       o.Kind,
			Quantity:   o.Quantity,
			Reason:     o.Reason,
		})
	}
	return out
}
