package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El saldo cacheado no se
// acepta ni se edita por aquí: solo lo mueven entradas, salidas y la
// reconciliación del proyector.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo con saldo en cero.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Code:             in.Code,
		GlobalCode:       in.GlobalCode,
		Description:      in.Description,
		Unit:             in.Unit,
		PurchaseUnit:     in.PurchaseUnit,
		Color:            in.Color,
		LocationID:       in.LocationID,
		AddressingID:     in.AddressingID,
		SupplierID:       in.SupplierID,
		GroupID:          in.GroupID,
		ConversionRuleID: in.ConversionRuleID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza campos del producto. No permite tocar el saldo cacheado.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.GlobalCode != nil {
		product.GlobalCode = *in.GlobalCode
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.PurchaseUnit != nil {
		product.PurchaseUnit = *in.PurchaseUnit
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.LocationID != nil {
		product.LocationID = *in.LocationID
	}
	if in.AddressingID != nil {
		product.AddressingID = *in.AddressingID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.GroupID != nil {
		product.GroupID = *in.GroupID
	}
	if in.ConversionRuleID != nil {
		product.ConversionRuleID = *in.ConversionRuleID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos del catálogo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID. Sus movimientos quedan en el libro y
// aparecerán como huérfanos en los diagnósticos de consulta.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Code:             p.Code,
		GlobalCode:       p.GlobalCode,
		Description:      p.Description,
		Unit:             p.Unit,
		PurchaseUnit:     p.PurchaseUnit,
		Color:            p.Color,
		LocationID:       p.LocationID,
		AddressingID:     p.AddressingID,
		SupplierID:       p.SupplierID,
		GroupID:          p.GroupID,
		ConversionRuleID: p.ConversionRuleID,
		CachedBalance:    p.CachedBalance,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
