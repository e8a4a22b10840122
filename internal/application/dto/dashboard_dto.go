package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados para la pantalla inicial del back-office.
type DashboardResponse struct {
	PedidosPorEstado map[string]int  `json:"pedidos_por_estado"`
	VentasDelDia     decimal.Decimal `json:"ventas_del_dia"`
	Distritos        int             `json:"distritos"`
	Platos           int             `json:"platos"`
	Clientes         int             `json:"clientes"`
	Empleados        int             `json:"empleados"`
}
