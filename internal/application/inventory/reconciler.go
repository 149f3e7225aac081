package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tu-usuario/almacen-pro/internal/domain/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

// ReconcileCandidate es un producto cuyo saldo cacheado difiere del proyectado
// más allá de la tolerancia, detectado durante una consulta.
type ReconcileCandidate struct {
	ProductID string
	Cached    decimal.Decimal
	Projected decimal.Decimal
}

// Reconciler corrige saldos cacheados desviados con escrituras compare-and-set:
// la escritura solo aplica si el saldo sigue valiendo lo que se leyó. Ante
// contención (una entrada/salida concurrente movió el saldo) reintenta UNA vez
// recalculando desde el libro; si vuelve a fallar, cede y deja el trabajo a la
// próxima consulta. Nunca propaga errores al lector: la reconciliación es una
// optimización de caché, no parte del camino de lectura.
type Reconciler struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	log          *logger.Logger
	limit        int
}

// NewReconciler construye el reconciliador. limit acota las escrituras
// concurrentes del lote.
func NewReconciler(productRepo repository.ProductRepository, movementRepo repository.MovementRepository, log *logger.Logger, limit int) *Reconciler {
	if limit <= 0 {
		limit = 4
	}
	return &Reconciler{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		log:          log,
		limit:        limit,
	}
}

// ReconcileBatch procesa los candidatos en paralelo acotado. Es síncrono; el
// caller decide si lo lanza en una goroutine (fire-and-forget tras responder).
func (r *Reconciler) ReconcileBatch(ctx context.Context, candidates []ReconcileCandidate) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for _, c := range candidates {
		c := c
		g.Go(func() error {
			r.reconcileOne(ctx, c)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Reconciler) reconcileOne(ctx context.Context, c ReconcileCandidate) {
	if ctx.Err() != nil {
		return
	}
	ok, err := r.productRepo.CompareAndSetCachedBalance(c.ProductID, c.Cached, c.Projected)
	if err != nil {
		r.log.Warn().Err(err).Str("product_id", c.ProductID).Msg("reconciliación: write-back falló")
		return
	}
	if ok {
		r.log.Info().
			Str("product_id", c.ProductID).
			Str("cached", c.Cached.String()).
			Str("projected", c.Projected.String()).
			Msg("reconciliación: saldo cacheado corregido")
		return
	}

	// Contención: otro proceso movió el saldo. Releer y recalcular una vez.
	product, err := r.productRepo.GetByID(c.ProductID)
	if err != nil || product == nil {
		r.log.Warn().Str("product_id", c.ProductID).Msg("reconciliación: producto desapareció durante el reintento")
		return
	}
	history, err := r.movementRepo.ListByProduct(c.ProductID)
	if err != nil {
		r.log.Warn().Err(err).Str("product_id", c.ProductID).Msg("reconciliación: no se pudo releer el historial")
		return
	}
	proj := inventory.Project(c.ProductID, history)
	if !proj.NeedsReconciliation(product.CachedBalance) {
		return // el saldo ya quedó bien por la escritura concurrente
	}
	ok, err = r.productRepo.CompareAndSetCachedBalance(c.ProductID, product.CachedBalance, proj.CurrentStock)
	if err != nil {
		r.log.Warn().Err(err).Str("product_id", c.ProductID).Msg("reconciliación: reintento falló")
		return
	}
	if !ok {
		r.log.Info().Str("product_id", c.ProductID).Msg("reconciliación: contención persistente, se cede el turno")
	}
}
