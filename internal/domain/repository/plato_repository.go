package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// PlatoRepository define el puerto de persistencia para Plato.
type PlatoRepository interface {
	Create(plato *entity.Plato) error
	GetByCodigo(codigo string) (*entity.Plato, error)
	List(limit, offset int) ([]*entity.Plato, error)
	ListActivos() ([]*entity.Plato, error)
	Update(plato *entity.Plato) error
	Delete(codigo string) error
	Search(term string) ([]*entity.Plato, error)
}
