package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido.
// Las operaciones de lectura devuelven el pedido con sus detalles cargados.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByCodigo(codigo string) (*entity.Pedido, error)
	List(limit, offset int) ([]*entity.Pedido, error)
	ListActivos() ([]*entity.Pedido, error)
	Update(pedido *entity.Pedido) error
	Delete(codigo string) error
	Search(term string) ([]*entity.Pedido, error)
}
