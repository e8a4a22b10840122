package reportes

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// BoletaGenerator genera la representación imprimible (PDF) de un pedido.
type BoletaGenerator interface {
	GenerarBoleta(pedido *entity.Pedido, cliente *entity.Cliente, empleado *entity.Empleado) ([]byte, error)
}

// PedidoExporter produce el archivo de exportación (XLSX) de una lista de pedidos.
type PedidoExporter interface {
	ExportarPedidos(pedidos []*entity.Pedido) ([]byte, error)
}
