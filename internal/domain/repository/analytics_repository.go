package repository

import "github.com/shopspring/decimal"

// AnalyticsRepository consultas agregadas para el tablero del back-office.
type AnalyticsRepository interface {
	ContarPedidosPorEstado() (map[string]int, error)
	VentasDelDia() (decimal.Decimal, error)
	ContarCatalogos() (distritos, platos, clientes, empleados int, err error)
}
