package inventory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// Fakes en memoria para probar los casos de uso sin base de datos.
// Protegidos con mutex porque la reconciliación escribe desde goroutines.

type fakeProductRepo struct {
	mu sync.Mutex
	// byID preserva punteros compartidos a propósito: las pruebas inspeccionan
	// los cambios de saldo directamente sobre las entidades sembradas.
	byID map[string]*entity.Product
	// casRejects fuerza fallos de CompareAndSetCachedBalance por producto,
	// simulando contención (las primeras n llamadas devuelven false).
	casRejects map[string]int
	casCalls   int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: make(map[string]*entity.Product), casRejects: make(map[string]int)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateCachedBalance(id string, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CachedBalance = balance
	return nil
}

func (r *fakeProductRepo) CompareAndSetCachedBalance(id string, oldBalance, newBalance decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.casCalls++
	p, ok := r.byID[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if n := r.casRejects[id]; n > 0 {
		r.casRejects[id] = n - 1
		return false, nil
	}
	if !inventory.WithinTolerance(p.CachedBalance, oldBalance) {
		return false, nil
	}
	p.CachedBalance = newBalance
	return true, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

type fakeMovementRepo struct {
	mu   sync.Mutex
	movs []*entity.Movement
}

func newFakeMovementRepo(movs ...*entity.Movement) *fakeMovementRepo {
	return &fakeMovementRepo{movs: movs}
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movs = append(r.movs, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List() ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Movement, len(r.movs))
	copy(out, r.movs)
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(productRef string) ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Movement
	for _, m := range r.movs {
		if m.ProductRef == productRef {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) UpdateProductRef(movementID, newProductRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movs {
		if m.ID == movementID {
			m.ProductRef = newProductRef
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	r := &fakeSupplierRepo{byID: make(map[string]*entity.Supplier)}
	for _, s := range suppliers {
		r.byID[s.ID] = s
	}
	return r
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error       { r.byID[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) { return r.byID[id], nil }
func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error { r.byID[s.ID] = s; return nil }
func (r *fakeSupplierRepo) Delete(id string) error          { delete(r.byID, id); return nil }

type fakeRuleRepo struct {
	byID map[string]*entity.ConversionRule
}

func newFakeRuleRepo(rules ...*entity.ConversionRule) *fakeRuleRepo {
	r := &fakeRuleRepo{byID: make(map[string]*entity.ConversionRule)}
	for _, rule := range rules {
		r.byID[rule.ID] = rule
	}
	return r
}

func (r *fakeRuleRepo) Create(rule *entity.ConversionRule) error        { r.byID[rule.ID] = rule; return nil }
func (r *fakeRuleRepo) GetByID(id string) (*entity.ConversionRule, error) { return r.byID[id], nil }
func (r *fakeRuleRepo) List() ([]*entity.ConversionRule, error) {
	out := make([]*entity.ConversionRule, 0, len(r.byID))
	for _, rule := range r.byID {
		out = append(out, rule)
	}
	return out, nil
}
func (r *fakeRuleRepo) Update(rule *entity.ConversionRule) error { r.byID[rule.ID] = rule; return nil }
func (r *fakeRuleRepo) Delete(id string) error                   { delete(r.byID, id); return nil }

type fakeAddressingRepo struct {
	byID map[string]*entity.Addressing
}

func newFakeAddressingRepo(addrs ...*entity.Addressing) *fakeAddressingRepo {
	r := &fakeAddressingRepo{byID: make(map[string]*entity.Addressing)}
	for _, a := range addrs {
		r.byID[a.ID] = a
	}
	return r
}

func (r *fakeAddressingRepo) Create(a *entity.Addressing) error        { r.byID[a.ID] = a; return nil }
func (r *fakeAddressingRepo) GetByID(id string) (*entity.Addressing, error) { return r.byID[id], nil }
func (r *fakeAddressingRepo) List() ([]*entity.Addressing, error) {
	out := make([]*entity.Addressing, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeAddressingRepo) Update(a *entity.Addressing) error { r.byID[a.ID] = a; return nil }
func (r *fakeAddressingRepo) Delete(id string) error            { delete(r.byID, id); return nil }

type fakeCatalogRepo struct {
	items []*entity.CatalogItem
}

func newFakeCatalogRepo(items ...*entity.CatalogItem) *fakeCatalogRepo {
	return &fakeCatalogRepo{items: items}
}

func (r *fakeCatalogRepo) Create(item *entity.CatalogItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeCatalogRepo) GetByID(kind entity.CatalogKind, id string) (*entity.CatalogItem, error) {
	for _, it := range r.items {
		if it.Kind == kind && it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogRepo) ListByKind(kind entity.CatalogKind) ([]*entity.CatalogItem, error) {
	var out []*entity.CatalogItem
	for _, it := range r.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) Update(item *entity.CatalogItem) error {
	for i, it := range r.items {
		if it.Kind == item.Kind && it.ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCatalogRepo) Delete(kind entity.CatalogKind, id string) error {
	for i, it := range r.items {
		if it.Kind == kind && it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner ejecuta fn directamente con los fakes: los fakes son atómicos
// por operación, suficiente para probar la lógica de los casos de uso.
type fakeTxRunner struct {
	movs     *fakeMovementRepo
	products *fakeProductRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(t.movs, t.products)
}

var (
	_ repository.ProductRepository       = (*fakeProductRepo)(nil)
	_ repository.MovementRepository      = (*fakeMovementRepo)(nil)
	_ repository.MovementRelinkRepository = (*fakeMovementRepo)(nil)
	_ repository.SupplierRepository      = (*fakeSupplierRepo)(nil)
	_ repository.ConversionRuleRepository = (*fakeRuleRepo)(nil)
	_ repository.AddressingRepository    = (*fakeAddressingRepo)(nil)
	_ repository.CatalogItemRepository   = (*fakeCatalogRepo)(nil)
	_ TxRunner                           = (*fakeTxRunner)(nil)
)
