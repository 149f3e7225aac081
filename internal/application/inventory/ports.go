package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el append al libro
// de movimientos y la actualización del saldo cacheado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// BalanceReportGenerator produce el reporte de valorización de stock en PDF a
// partir de la vista de saldos proyectados.
type BalanceReportGenerator interface {
	GenerateBalanceReport(ctx context.Context, balances *dto.BalanceListResponse) ([]byte, error)
}
