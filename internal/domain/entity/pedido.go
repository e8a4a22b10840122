package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido. En el wire Estado viaja como string libre; el servidor
// valida contra este conjunto al actualizar.
const (
	EstadoPendiente  = "Pendiente"
	EstadoEnProceso  = "En Proceso"
	EstadoCompletado = "Completado"
	EstadoCancelado  = "Cancelado"
)

// EstadoValido indica si el valor pertenece al conjunto de estados conocidos.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoEnProceso, EstadoCompletado, EstadoCancelado:
		return true
	}
	return false
}

// DetallePedido es una línea del pedido. PlatoNombre viene desnormalizado
// para que el ticket no dependa de cambios posteriores en la carta.
type DetallePedido struct {
	PlatoCodigo    string
	PlatoNombre    string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Subtotal devuelve Cantidad × PrecioUnitario.
func (d DetallePedido) Subtotal() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}

// Pedido representa un pedido del restaurante. Total es el valor
// autoritativo calculado por el servidor; los clientes lo recalculan solo
// como vista previa.
type Pedido struct {
	Codigo         string
	Etiqueta       string
	Estado         string
	ClienteCodigo  string
	EmpleadoCodigo string
	Total          decimal.Decimal
	Detalles       []DetallePedido
	Activo         bool
	CreadoEn       time.Time
}

// CalcularTotal devuelve Σ cantidad×precio unitario, redondeado a 2 decimales.
func (p Pedido) CalcularTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Detalles {
		total = total.Add(d.Subtotal())
	}
	return total.Round(2)
}
