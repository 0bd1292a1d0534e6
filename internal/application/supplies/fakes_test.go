package supplies_test

import (
	"context"
	"sort"

	"github.com/serviza/dotaciones-api/internal/application/supplies"
	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/ledger"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria: el store reutiliza los folds de ledger como oráculo de
// saldos, de modo que los fakes y el adaptador SQL comparten la misma semántica.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product
	employees map[string]*entity.Employee
	posts     map[string]*entity.Post
	movements []*entity.Movement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  map[string]*entity.Product{},
		employees: map[string]*entity.Employee{},
		posts:     map[string]*entity.Post{},
	}
}

func (s *fakeStore) addProduct(id string, category entity.ProductCategory) *entity.Product {
	p := &entity.Product{ID: id, Code: id, Name: id, Category: category, Active: true}
	s.products[id] = p
	return p
}

func (s *fakeStore) addEmployee(id string, active bool) {
	s.employees[id] = &entity.Employee{ID: id, FullName: "Empleado " + id, Active: active}
}

func (s *fakeStore) addPost(id string, active bool) {
	s.posts[id] = &entity.Post{ID: id, Name: "Puesto " + id, Active: active}
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	for i, m := range r.s.movements {
		if m.ID == id {
			r.s.movements = append(r.s.movements[:i], r.s.movements[i+1:]...)
			return nil
		}
	}
	return domain.ErrMovementNotFound
}

func (r *fakeMovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].OccurredOn.Equal(out[j].OccurredOn) {
			return out[i].OccurredOn.Before(out[j].OccurredOn)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeMovementRepo) WarehouseBalance(productID string) (int64, error) {
	return ledger.WarehouseBalance(r.s.movements, productID), nil
}

func (r *fakeMovementRepo) HolderBalance(productID string, holder entity.Holder) (int64, error) {
	return ledger.HolderBalance(r.s.movements, productID, holder), nil
}

func (r *fakeMovementRepo) HasMovements(productID string) (bool, error) {
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}

// GetForUpdate no bloquea nada en memoria; basta con devolver la fila.
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r *fakeProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if onlyActive && !p.Active {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Active = false
	return nil
}

type fakeEmployeeRepo struct{ s *fakeStore }

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.s.employees[id], nil
}

type fakePostRepo struct{ s *fakeStore }

func (r *fakePostRepo) GetByID(id string) (*entity.Post, error) {
	return r.s.posts[id], nil
}

// fakeTxRunner ejecuta el callback directamente sobre el store compartido.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(&fakeMovementRepo{s: t.s}, &fakeProductRepo{s: t.s})
}

// fixture agrupa el store y los casos de uso bajo prueba.
type fixture struct {
	store    *fakeStore
	register *supplies.RegisterMovementUseCase
	del      *supplies.DeleteMovementUseCase
	movRepo  repository.MovementRepository
}

func newFixture() *fixture {
	s := newFakeStore()
	tx := &fakeTxRunner{s: s}
	return &fixture{
		store:    s,
		register: supplies.NewRegisterMovementUseCase(tx, &fakeProductRepo{s: s}, &fakeEmployeeRepo{s: s}, &fakePostRepo{s: s}),
		del:      supplies.NewDeleteMovementUseCase(tx),
		movRepo:  &fakeMovementRepo{s: s},
	}
}
