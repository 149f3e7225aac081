package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

type registerFixture struct {
	uc       *RegisterMovementUseCase
	products *fakeProductRepo
	movs     *fakeMovementRepo
}

func newRegisterFixture(products []*entity.Product, suppliers []*entity.Supplier, rules []*entity.ConversionRule, movs ...*entity.Movement) *registerFixture {
	productRepo := newFakeProductRepo(products...)
	movRepo := newFakeMovementRepo(movs...)
	uc := NewRegisterMovementUseCase(
		&fakeTxRunner{movs: movRepo, products: productRepo},
		productRepo,
		newFakeSupplierRepo(suppliers...),
		newFakeRuleRepo(rules...),
	)
	return &registerFixture{uc: uc, products: productRepo, movs: movRepo}
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRegisterEntryActualizaSaldoYLibro(t *testing.T) {
	fx := newRegisterFixture([]*entity.Product{{ID: "p1", Code: "A-01", Unit: "m"}}, nil, nil)

	resp, err := fx.uc.RegisterEntry(context.Background(), "u1", dto.RegisterEntryRequest{
		ProductID: "p1",
		Quantity:  "10,5",
		UnitPrice: "2,00",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// La coma legada se normaliza al escribir; el libro guarda punto.
	assert.Equal(t, entity.MovementKindEntry, resp.Kind)
	assert.Equal(t, "10.5", resp.Quantity)
	assert.True(t, resp.TotalEntryCost.Valid)
	assert.True(t, resp.TotalEntryCost.Decimal.Equal(dec("21")))

	p, _ := fx.products.GetByID("p1")
	assert.True(t, p.CachedBalance.Equal(dec("10.5")))
	movs, _ := fx.movs.List()
	require.Len(t, movs, 1)
	assert.Equal(t, "u1", movs[0].CreatedBy)
}

func TestRegisterEntryAplicaConversionYRecargo(t *testing.T) {
	fx := newRegisterFixture(
		[]*entity.Product{{ID: "p1", Unit: "m", PurchaseUnit: "barra", SupplierID: "s1", ConversionRuleID: "r1"}},
		[]*entity.Supplier{{ID: "s1", Name: "Aceros SA", SurchargePercent: dec("10")}},
		[]*entity.ConversionRule{{ID: "r1", PurchaseFactor: dec("1"), PurchaseUnit: "barra", StockFactor: dec("6"), StockUnit: "m"}},
	)

	resp, err := fx.uc.RegisterEntry(context.Background(), "u1", dto.RegisterEntryRequest{
		ProductID: "p1",
		Quantity:  "2",
		UnitPrice: "30",
	})
	require.NoError(t, err)

	// 2 barras se convierten a 12 m al escribir; el costo usa la cantidad de
	// compra digitada (2 x 30) y congela el recargo del 10% exactamente una vez.
	assert.Equal(t, "12", resp.Quantity)
	assert.True(t, resp.PurchaseQuantity.Equal(dec("2")))
	require.True(t, resp.TotalEntryCost.Valid)
	assert.True(t, resp.TotalEntryCost.Decimal.Equal(dec("66")))

	p, _ := fx.products.GetByID("p1")
	assert.True(t, p.CachedBalance.Equal(dec("12")))
}

func TestRegisterEntrySinPrecioNoCongelaCosto(t *testing.T) {
	fx := newRegisterFixture([]*entity.Product{{ID: "p1"}}, nil, nil)

	resp, err := fx.uc.RegisterEntry(context.Background(), "u1", dto.RegisterEntryRequest{
		ProductID: "p1",
		Quantity:  "5",
	})
	require.NoError(t, err)
	assert.False(t, resp.TotalEntryCost.Valid)
}

func TestRegisterEntryPiezaNoTocaSaldoAGranel(t *testing.T) {
	fx := newRegisterFixture([]*entity.Product{{ID: "p1", CachedBalance: dec("7")}}, nil, nil)

	resp, err := fx.uc.RegisterEntry(context.Background(), "u1", dto.RegisterEntryRequest{
		ProductID:  "p1",
		Quantity:   "",
		PieceLabel: "1500mm",
	})
	require.NoError(t, err)
	assert.Equal(t, "1500mm", resp.PieceLabel)

	p, _ := fx.products.GetByID("p1")
	assert.True(t, p.CachedBalance.Equal(dec("7")))
}

func TestRegisterEntryProductoInexistente(t *testing.T) {
	fx := newRegisterFixture(nil, nil, nil)

	_, err := fx.uc.RegisterEntry(context.Background(), "u1", dto.RegisterEntryRequest{
		ProductID: "nope",
		Quantity:  "1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterEntryCantidadInvalida(t *testing.T) {
	fx := newRegisterFixture([]*entity.Product{{ID: "p1"}}, nil, nil)

	_, err := fx.uc.RegisterEntry(context.Background(), "u1", dto.RegisterEntryRequest{
		ProductID: "p1",
		Quantity:  "abc",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	movs, _ := fx.movs.List()
	assert.Empty(t, movs)
}

func TestRegisterExitDescuentaSaldo(t *testing.T) {
	fx := newRegisterFixture([]*entity.Product{{ID: "p1", Unit: "m", CachedBalance: dec("10")}}, nil, nil)

	resp, err := fx.uc.RegisterExit(context.Background(), "u2", dto.RegisterExitRequest{
		ProductID: "p1",
		Quantity:  "4",
		WorkID:    "obra-7",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementKindExit, resp.Kind)
	assert.Equal(t, "obra-7", resp.WorkID)

	p, _ := fx.products.GetByID("p1")
	assert.True(t, p.CachedBalance.Equal(dec("6")))
}

func TestRegisterExitStockInsuficiente(t *testing.T) {
	fx := newRegisterFixture([]*entity.Product{{ID: "p1", Unit: "m", CachedBalance: dec("3")}}, nil, nil)

	_, err := fx.uc.RegisterExit(context.Background(), "u2", dto.RegisterExitRequest{
		ProductID: "p1",
		Quantity:  "5",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	// El mensaje informa la cantidad disponible para el operador.
	assert.Contains(t, err.Error(), "disponible 3")

	p, _ := fx.products.GetByID("p1")
	assert.True(t, p.CachedBalance.Equal(dec("3")))
	movs, _ := fx.movs.List()
	assert.Empty(t, movs)
}

func TestRegisterExitPiezaValidaDisponibilidad(t *testing.T) {
	fx := newRegisterFixture(
		[]*entity.Product{{ID: "p1", CachedBalance: decimal.Zero}},
		nil, nil,
		&entity.Movement{ID: "m1", Kind: entity.MovementKindEntry, ProductRef: "p1", PieceLabel: "1500mm", Quantity: ""},
	)

	_, err := fx.uc.RegisterExit(context.Background(), "u2", dto.RegisterExitRequest{
		ProductID:  "p1",
		Quantity:   "2",
		PieceLabel: "1500mm",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientPieces)

	// Con saldo a granel en cero la pieza disponible sale igual: inventarios separados.
	resp, err := fx.uc.RegisterExit(context.Background(), "u2", dto.RegisterExitRequest{
		ProductID:  "p1",
		Quantity:   "",
		PieceLabel: "1500mm",
	})
	require.NoError(t, err)
	assert.Equal(t, "1500mm", resp.PieceLabel)

	p, _ := fx.products.GetByID("p1")
	assert.True(t, p.CachedBalance.IsZero())
}
