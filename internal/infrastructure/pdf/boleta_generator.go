// Package pdf implementa la boleta imprimible de un pedido.
//
// Layout de la página A4:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Restaurante  │  N° Pedido + Fecha    │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE / ATENDIDO POR                       │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Plato | P.Unit | Subtotal      │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL                                        │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Restaurante-api/internal/application/reportes"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 140, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reportes.BoletaGenerator = (*MarotoBoletaGenerator)(nil)

// MarotoBoletaGenerator implementa reportes.BoletaGenerator usando Maroto v2.
type MarotoBoletaGenerator struct {
	restaurante string
}

// NewMarotoBoletaGenerator construye el generador con el nombre a imprimir en cabecera.
func NewMarotoBoletaGenerator(restaurante string) *MarotoBoletaGenerator {
	return &MarotoBoletaGenerator{restaurante: restaurante}
}

// GenerarBoleta genera el PDF y devuelve sus bytes.
func (g *MarotoBoletaGenerator) GenerarBoleta(pedido *entity.Pedido, cliente *entity.Cliente, empleado *entity.Empleado) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Boleta de pedido", true).
		WithAuthor(g.restaurante, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(personasRow(cliente, empleado))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(pedido.Detalles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(pedido))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: restaurante (izq) y N° de pedido + fecha (der).
func (g *MarotoBoletaGenerator) headerRow(pedido *entity.Pedido) core.Row {
	fecha := pedido.CreadoEn.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.restaurante, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado: "+pedido.Estado, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("BOLETA DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(pedido.Codigo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// personasRow: cliente y empleado que atendió (pueden faltar en pedidos de barra).
func personasRow(cliente *entity.Cliente, empleado *entity.Empleado) core.Row {
	nombreCliente := "—"
	if cliente != nil {
		nombreCliente = cliente.Nombres + " " + cliente.ApellidoPaterno
	}
	nombreEmpleado := "—"
	if empleado != nil {
		nombreEmpleado = empleado.Nombres + " " + empleado.ApellidoPaterno
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cliente: "+nombreCliente, props.Text{Size: 9, Top: 1}),
			text.New("Atendido por: "+nombreEmpleado, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Plato", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea del pedido.
func tableDetailRows(detalles []entity.DetallePedido) []core.Row {
	result := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				d.PlatoNombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"S/ "+d.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"S/ "+d.Subtotal().StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total a pagar alineado a la derecha.
func totalRow(pedido *entity.Pedido) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("S/ "+pedido.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}
