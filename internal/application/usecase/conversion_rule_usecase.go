package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ConversionRuleUseCase CRUD de reglas de conversión compra→stock. Editar una
// regla afecta solo entradas futuras: las cantidades ya convertidas quedaron
// persistidas en el libro.
type ConversionRuleUseCase struct {
	repo repository.ConversionRuleRepository
}

// NewConversionRuleUseCase construye el caso de uso.
func NewConversionRuleUseCase(repo repository.ConversionRuleRepository) *ConversionRuleUseCase {
	return &ConversionRuleUseCase{repo: repo}
}

// Create crea una regla. Ambos factores deben ser positivos.
func (uc *ConversionRuleUseCase) Create(in dto.ConversionRuleRequest) (*dto.ConversionRuleResponse, error) {
	purchaseFactor := inventory.ParseQuantity(in.PurchaseFactor)
	stockFactor := inventory.ParseQuantity(in.StockFactor)
	if in.Name == "" || !purchaseFactor.GreaterThan(decimal.Zero) || !stockFactor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	rule := &entity.ConversionRule{
		ID:             uuid.New().String(),
		Name:           in.Name,
		PurchaseFactor: purchaseFactor,
		PurchaseUnit:   in.PurchaseUnit,
		StockFactor:    stockFactor,
		StockUnit:      in.StockUnit,
	}
	if err := uc.repo.Create(rule); err != nil {
		return nil, err
	}
	return toConversionRuleResponse(rule), nil
}

// GetByID obtiene una regla por ID.
func (uc *ConversionRuleUseCase) GetByID(id string) (*dto.ConversionRuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	return toConversionRuleResponse(rule), nil
}

// List lista todas las reglas.
func (uc *ConversionRuleUseCase) List() ([]dto.ConversionRuleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConversionRuleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toConversionRuleResponse(r))
	}
	return out, nil
}

// Update actualiza una regla.
func (uc *ConversionRuleUseCase) Update(id string, in dto.ConversionRuleRequest) (*dto.ConversionRuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	purchaseFactor := inventory.ParseQuantity(in.PurchaseFactor)
	stockFactor := inventory.ParseQuantity(in.StockFactor)
	if in.Name == "" || !purchaseFactor.GreaterThan(decimal.Zero) || !stockFactor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	rule.Name = in.Name
	rule.PurchaseFactor = purchaseFactor
	rule.PurchaseUnit = in.PurchaseUnit
	rule.StockFactor = stockFactor
	rule.StockUnit = in.StockUnit
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	return toConversionRuleResponse(rule), nil
}

// Delete elimina una regla.
func (uc *ConversionRuleUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toConversionRuleResponse(r *entity.ConversionRule) *dto.ConversionRuleResponse {
	if r == nil {
		return nil
	}
	return &dto.ConversionRuleResponse{
		ID:             r.ID,
		Name:           r.Name,
		PurchaseFactor: r.PurchaseFactor,
		PurchaseUnit:   r.PurchaseUnit,
		StockFactor:    r.StockFactor,
		StockUnit:      r.StockUnit,
	}
}
