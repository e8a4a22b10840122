package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/reportes"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

var _ reportes.PedidoExporter = (*PedidoExporter)(nil)

// PedidoExporter exporta pedidos a XLSX: una fila por línea de pedido, con
// los campos de cabecera repetidos para poder filtrar en la hoja.
type PedidoExporter struct{}

// NewPedidoExporter construye el exportador.
func NewPedidoExporter() *PedidoExporter {
	return &PedidoExporter{}
}

// ExportarPedidos genera el archivo y devuelve sus bytes.
func (e *PedidoExporter) ExportarPedidos(pedidos []*entity.Pedido) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"codigo",
		"etiqueta",
		"estado",
		"cliente",
		"empleado",
		"creado_en",
		"plato",
		"plato_nombre",
		"cantidad",
		"precio_unitario",
		"subtotal",
		"total_pedido",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	row := 2
	for _, p := range pedidos {
		for _, d := range p.Detalles {
			cells := []interface{}{
				p.Codigo,
				p.Etiqueta,
				p.Estado,
				p.ClienteCodigo,
				p.EmpleadoCodigo,
				p.CreadoEn.Format("2006-01-02 15:04:05"),
				d.PlatoCodigo,
				d.PlatoNombre,
				d.Cantidad,
				d.PrecioUnitario.StringFixed(2),
				d.Subtotal().StringFixed(2),
				p.Total.StringFixed(2),
			}
			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", row, err)
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}
