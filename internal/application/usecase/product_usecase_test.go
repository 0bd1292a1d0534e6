package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviza/dotaciones-api/internal/application/usecase"
	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

// Dobles mínimos del catálogo: un mapa como repositorio y un ledger de bandera
// para simular productos con y sin movimientos.

type memProductRepo struct {
	products       map[string]*entity.Product
	forUpdateCalls int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	r.forUpdateCalls++
	return r.products[id], nil
}

func (r *memProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if onlyActive && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Deactivate(id string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Active = false
	return nil
}

// stubLedger responde HasMovements con una bandera fija; el resto del puerto
// no participa en el catálogo.
type stubLedger struct {
	has bool
}

func (s *stubLedger) Create(*entity.Movement) error            { return nil }
func (s *stubLedger) GetByID(string) (*entity.Movement, error) { return nil, nil }
func (s *stubLedger) Delete(string) error                      { return nil }
func (s *stubLedger) ListByProduct(string) ([]*entity.Movement, error) {
	return nil, nil
}
func (s *stubLedger) WarehouseBalance(string) (int64, error) { return 0, nil }
func (s *stubLedger) HolderBalance(string, entity.Holder) (int64, error) {
	return 0, nil
}
func (s *stubLedger) HasMovements(string) (bool, error) { return s.has, nil }

// stubTxRunner ejecuta el callback directamente sobre los dobles compartidos.
type stubTxRunner struct {
	repo   *memProductRepo
	ledger *stubLedger
}

func (t *stubTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(t.ledger, t.repo)
}

func newCatalog(repo *memProductRepo, ledger *stubLedger) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(repo, &stubTxRunner{repo: repo, ledger: ledger})
}

func TestProductCreate_DerivaCodigo(t *testing.T) {
	uc := newCatalog(newMemProductRepo(), &stubLedger{})

	p, err := uc.Create("Camisa Institucional", "Talla M", entity.CategoryIndividual)
	require.NoError(t, err)
	assert.Equal(t, "CAMISA INSTITUCIONAL TALLA M", p.Code)
	assert.True(t, p.Active)
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	uc := newCatalog(newMemProductRepo(), &stubLedger{})

	_, err := uc.Create("", "x", entity.CategoryIndividual)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("Casco", "", "PERSONAL")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc := newCatalog(newMemProductRepo(), &stubLedger{})

	_, err := uc.Create("Casco", "", entity.CategoryCollective)
	require.NoError(t, err)
	_, err = uc.Create("Casco", "", entity.CategoryCollective)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc := newCatalog(newMemProductRepo(), &stubLedger{})

	_, err := uc.GetByID("nope")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// La categoría puede cambiarse mientras el producto no tenga movimientos.
func TestProductUpdate_CategoriaLibreSinMovimientos(t *testing.T) {
	repo := newMemProductRepo()
	uc := newCatalog(repo, &stubLedger{has: false})

	p, err := uc.Create("Radio", "", entity.CategoryCollective)
	require.NoError(t, err)

	updated, err := uc.Update(p.ID, "Radio portátil", "", entity.CategoryIndividual)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryIndividual, updated.Category)
	assert.Equal(t, "RADIO PORTATIL", updated.Code)
}

// Con movimientos registrados la categoría queda congelada; los demás campos
// siguen siendo editables.
func TestProductUpdate_CategoriaCongeladaConMovimientos(t *testing.T) {
	repo := newMemProductRepo()
	uc := newCatalog(repo, &stubLedger{has: true})

	p, err := uc.Create("Radio", "", entity.CategoryCollective)
	require.NoError(t, err)

	_, err = uc.Update(p.ID, "Radio", "", entity.CategoryIndividual)
	assert.ErrorIs(t, err, domain.ErrCategoryLocked)

	updated, err := uc.Update(p.ID, "Radio VHF", "Canal 2", entity.CategoryCollective)
	require.NoError(t, err)
	assert.Equal(t, "RADIO VHF CANAL 2", updated.Code)
	assert.Equal(t, entity.CategoryCollective, updated.Category)
}

// Update verifica y escribe bajo el lock de la fila (SELECT ... FOR UPDATE),
// no con una lectura suelta: así un movimiento concurrente no puede colarse
// entre la verificación de HasMovements y la escritura de la categoría.
func TestProductUpdate_TomaElLockDelProducto(t *testing.T) {
	repo := newMemProductRepo()
	uc := newCatalog(repo, &stubLedger{has: false})

	p, err := uc.Create("Guantes", "Nitrilo", entity.CategoryIndividual)
	require.NoError(t, err)
	require.Zero(t, repo.forUpdateCalls)

	_, err = uc.Update(p.ID, "Guantes", "Carnaza", entity.CategoryIndividual)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.forUpdateCalls)

	_, err = uc.Update("nope", "Guantes", "", entity.CategoryIndividual)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductDeactivate(t *testing.T) {
	repo := newMemProductRepo()
	uc := newCatalog(repo, &stubLedger{})

	p, err := uc.Create("Chaleco", "", entity.CategoryIndividual)
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(p.ID))
	stored, _ := repo.GetByID(p.ID)
	assert.False(t, stored.Active)

	assert.ErrorIs(t, uc.Deactivate("nope"), domain.ErrProductNotFound)
}
