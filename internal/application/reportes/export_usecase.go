package reportes

import (
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// ExportUseCase exporta el listado completo de pedidos a XLSX.
type ExportUseCase struct {
	pedidos  repository.PedidoRepository
	exporter PedidoExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(pedidos repository.PedidoRepository, exporter PedidoExporter) *ExportUseCase {
	return &ExportUseCase{pedidos: pedidos, exporter: exporter}
}

// Exportar devuelve los bytes del archivo XLSX con todos los pedidos.
func (uc *ExportUseCase) Exportar() ([]byte, error) {
	list, err := uc.pedidos.List(0, 0)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportarPedidos(list)
}
