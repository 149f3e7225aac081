package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

func relinkFixture() (*RelinkUseCase, *fakeMovementRepo) {
	products := newFakeProductRepo(
		&entity.Product{ID: "p1", Code: "B-02"},
		&entity.Product{ID: "p2", Code: "A-01"},
	)
	movs := newFakeMovementRepo(
		&entity.Movement{ID: "ok", Kind: entity.MovementKindEntry, ProductRef: "p1", Quantity: "5"},
		&entity.Movement{ID: "porCodigo", Kind: entity.MovementKindEntry, ProductRef: "B-02", Quantity: "3"},
		&entity.Movement{ID: "conEspacios", Kind: entity.MovementKindExit, ProductRef: " p2 ", Quantity: "1"},
		&entity.Movement{ID: "perdido", Kind: entity.MovementKindExit, ProductRef: "fantasma", Quantity: "2"},
	)
	uc := NewRelinkUseCase(products, movs, movs, testLogger())
	return uc, movs
}

func TestRelinkDryRunNoEscribe(t *testing.T) {
	uc, movs := relinkFixture()

	report, err := uc.Run(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 4, report.Scanned)
	assert.Len(t, report.Relinked, 2)
	require.Len(t, report.Unmatched, 1)
	assert.Equal(t, "perdido", report.Unmatched[0].MovementID)

	// Dry-run: el libro queda intacto.
	m, _ := movs.GetByID("porCodigo")
	assert.Equal(t, "B-02", m.ProductRef)
}

func TestRelinkReescribeYEsIdempotente(t *testing.T) {
	uc, movs := relinkFixture()

	report, err := uc.Run(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, report.Relinked, 2)

	m, _ := movs.GetByID("porCodigo")
	assert.Equal(t, "p1", m.ProductRef)
	m, _ = movs.GetByID("conEspacios")
	assert.Equal(t, "p2", m.ProductRef)
	// El que no matchea queda para corrección manual, nunca se adivina.
	m, _ = movs.GetByID("perdido")
	assert.Equal(t, "fantasma", m.ProductRef)

	// Segunda corrida: nada religable, mismo huérfano pendiente.
	report, err = uc.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, report.Relinked)
	assert.Len(t, report.Unmatched, 1)
}
