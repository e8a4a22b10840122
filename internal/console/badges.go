package console

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// BadgeActivo etiqueta textual del flag activo.
func BadgeActivo(activo bool) string {
	if activo {
		return "● Activo"
	}
	return "○ Inactivo"
}

// BadgeEstadoPedido etiqueta del estado del pedido. Los estados desconocidos
// se muestran tal cual para no ocultar datos viejos.
func BadgeEstadoPedido(estado string) string {
	switch estado {
	case entity.EstadoPendiente:
		return "⏳ " + estado
	case entity.EstadoEnProceso:
		return "🔥 " + estado
	case entity.EstadoCompletado:
		return "✔ " + estado
	case entity.EstadoCancelado:
		return "✖ " + estado
	default:
		return estado
	}
}
