package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// DetallePedidoRequest línea de pedido en la entrada.
type DetallePedidoRequest struct {
	PlatoCodigo string `json:"plato"`
	Cantidad    int    `json:"cantidad"`
}

// PedidoRequest entrada para crear o actualizar un pedido. El total nunca se
// recibe del cliente: lo calcula el servidor a partir de los detalles.
type PedidoRequest struct {
	Codigo         string                 `json:"codigo"`
	Etiqueta       string                 `json:"etiqueta"`
	Estado         string                 `json:"estado_pedido"`
	ClienteCodigo  string                 `json:"cliente"`
	EmpleadoCodigo string                 `json:"empleado"`
	Detalles       []DetallePedidoRequest `json:"detalles"`
	Activo         bool                   `json:"estado"`
}

// DetallePedidoResponse línea de pedido en la salida. PlatoNombre viaja
// desnormalizado.
type DetallePedidoResponse struct {
	PlatoCodigo    string          `json:"plato"`
	PlatoNombre    string          `json:"plato_nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// PedidoResponse salida de un pedido con su total autoritativo.
type PedidoResponse struct {
	Codigo         string                  `json:"codigo"`
	Etiqueta       string                  `json:"etiqueta"`
	Estado         string                  `json:"estado_pedido"`
	ClienteCodigo  string                  `json:"cliente"`
	EmpleadoCodigo string                  `json:"empleado"`
	Total          decimal.Decimal         `json:"total"`
	Detalles       []DetallePedidoResponse `json:"detalles"`
	Activo         bool                    `json:"estado"`
	CreadoEn       time.Time               `json:"creado_en"`
}

// Clave devuelve la clave primaria del recurso.
func (r PedidoResponse) Clave() string { return r.Codigo }

// EsActivo indica si el recurso está activo.
func (r PedidoResponse) EsActivo() bool { return r.Activo }

// TotalPrevio recalcula Σ cantidad×precio como vista previa local.
// El valor autoritativo sigue siendo Total, calculado por el servidor.
func (r PedidoResponse) TotalPrevio() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.Detalles {
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	return total.Round(2)
}

// NewPedidoResponse mapea la entidad al DTO de salida.
func NewPedidoResponse(e *entity.Pedido) PedidoResponse {
	detalles := make([]DetallePedidoResponse, 0, len(e.Detalles))
	for _, d := range e.Detalles {
		detalles = append(detalles, DetallePedidoResponse{
			PlatoCodigo:    d.PlatoCodigo,
			PlatoNombre:    d.PlatoNombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	return PedidoResponse{
		Codigo:         e.Codigo,
		Etiqueta:       e.Etiqueta,
		Estado:         e.Estado,
		ClienteCodigo:  e.ClienteCodigo,
		EmpleadoCodigo: e.EmpleadoCodigo,
		Total:          e.Total,
		Detalles:       detalles,
		Activo:         e.Activo,
		CreadoEn:       e.CreadoEn,
	}
}

// NewPedidoResponseList mapea una lista de entidades.
func NewPedidoResponseList(list []*entity.Pedido) []PedidoResponse {
	out := make([]PedidoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewPedidoResponse(e))
	}
	return out
}
