package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByCodigo(codigo string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(codigo string) error
	Search(term string) ([]*entity.Cliente, error)
}
