package repository

import "github.com/serviza/dotaciones-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia del catálogo de dotación (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Es el punto
	// de serialización de todas las escrituras del ledger sobre ese producto.
	GetForUpdate(id string) (*entity.Product, error)
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Deactivate(id string) error
}
