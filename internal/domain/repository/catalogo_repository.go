package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// CatalogoRepository define el puerto de persistencia común de los catálogos
// (distritos, tipos de documento, roles, tipos de plato). Una implementación
// por tabla. limit <= 0 lista todo: los catálogos son pequeños y la consola
// pagina en memoria.
type CatalogoRepository interface {
	Create(item *entity.ItemCatalogo) error
	GetByCodigo(codigo string) (*entity.ItemCatalogo, error)
	List(limit, offset int) ([]*entity.ItemCatalogo, error)
	ListActivos() ([]*entity.ItemCatalogo, error)
	Update(item *entity.ItemCatalogo) error
	Delete(codigo string) error
	Search(term string) ([]*entity.ItemCatalogo, error)
}
