package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error"})
}

func reconcilerFixture(cached string, movs ...*entity.Movement) (*Reconciler, *fakeProductRepo) {
	products := newFakeProductRepo(&entity.Product{ID: "p1", CachedBalance: dec(cached)})
	movRepo := newFakeMovementRepo(movs...)
	return NewReconciler(products, movRepo, testLogger(), 2), products
}

func TestReconcileBatchCorrigeDesvio(t *testing.T) {
	r, products := reconcilerFixture("5",
		&entity.Movement{ID: "m1", Kind: entity.MovementKindEntry, ProductRef: "p1", Quantity: "8"},
	)

	r.ReconcileBatch(context.Background(), []ReconcileCandidate{
		{ProductID: "p1", Cached: dec("5"), Projected: dec("8")},
	})

	p, _ := products.GetByID("p1")
	assert.True(t, p.CachedBalance.Equal(dec("8")))
}

func TestReconcileBatchEsIdempotente(t *testing.T) {
	r, products := reconcilerFixture("5",
		&entity.Movement{ID: "m1", Kind: entity.MovementKindEntry, ProductRef: "p1", Quantity: "8"},
	)
	candidate := ReconcileCandidate{ProductID: "p1", Cached: dec("5"), Projected: dec("8")}

	r.ReconcileBatch(context.Background(), []ReconcileCandidate{candidate})
	// Segundo lote con el candidato ya viejo: el CAS falla, el reintento
	// recalcula y descubre que no hay nada que corregir.
	r.ReconcileBatch(context.Background(), []ReconcileCandidate{candidate})

	p, _ := products.GetByID("p1")
	assert.True(t, p.CachedBalance.Equal(dec("8")))
}

func TestReconcileReintentaUnaVezAnteContencion(t *testing.T) {
	r, products := reconcilerFixture("5",
		&entity.Movement{ID: "m1", Kind: entity.MovementKindEntry, ProductRef: "p1", Quantity: "8"},
	)
	products.casRejects["p1"] = 1

	r.ReconcileBatch(context.Background(), []ReconcileCandidate{
		{ProductID: "p1", Cached: dec("5"), Projected: dec("8")},
	})

	// El primer CAS fue rechazado; el reintento releyó saldo e historial y corrigió.
	p, _ := products.GetByID("p1")
	assert.True(t, p.CachedBalance.Equal(dec("8")))
}

func TestReconcileCedeAnteContencionPersistente(t *testing.T) {
	r, products := reconcilerFixture("5",
		&entity.Movement{ID: "m1", Kind: entity.MovementKindEntry, ProductRef: "p1", Quantity: "8"},
	)
	products.casRejects["p1"] = 2

	r.ReconcileBatch(context.Background(), []ReconcileCandidate{
		{ProductID: "p1", Cached: dec("5"), Projected: dec("8")},
	})

	// Dos rechazos seguidos: se cede sin tocar el saldo; la próxima consulta lo retomará.
	p, _ := products.GetByID("p1")
	require.True(t, p.CachedBalance.Equal(dec("5")))
}
