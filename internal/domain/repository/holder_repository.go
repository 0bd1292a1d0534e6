package repository

import "github.com/serviza/dotaciones-api/internal/domain/entity"

// EmployeeRepository es el puerto de solo lectura hacia el módulo de RRHH.
type EmployeeRepository interface {
	GetByID(id string) (*entity.Employee, error)
}

// PostRepository es el puerto de solo lectura hacia el módulo de supervisión.
type PostRepository interface {
	GetByID(id string) (*entity.Post, error)
}
