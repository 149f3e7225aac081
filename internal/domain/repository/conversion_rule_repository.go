package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// ConversionRuleRepository puerto de persistencia para reglas de conversión
// compra→stock.
type ConversionRuleRepository interface {
	Create(rule *entity.ConversionRule) error
	GetByID(id string) (*entity.ConversionRule, error)
	List() ([]*entity.ConversionRule, error)
	Update(rule *entity.ConversionRule) error
	Delete(id string) error
}
