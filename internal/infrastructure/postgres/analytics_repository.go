package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas para el tablero.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// ContarPedidosPorEstado agrupa los pedidos activos por estado.
func (r *AnalyticsRepo) ContarPedidosPorEstado() (map[string]int, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT estado, COUNT(*) FROM pedidos WHERE activo GROUP BY estado`)
	if err != nil {
		return nil, fmt.Errorf("pedidos por estado: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var estado string
		var n int
		if err := rows.Scan(&estado, &n); err != nil {
			return nil, fmt.Errorf("scan estado: %w", err)
		}
		out[estado] = n
	}
	return out, rows.Err()
}

// VentasDelDia suma el total de los pedidos completados de hoy.
func (r *AnalyticsRepo) VentasDelDia() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(total), 0) FROM pedidos
		WHERE estado = 'Completado' AND creado_en::date = CURRENT_DATE`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ventas del día: %w", err)
	}
	return total, nil
}

// ContarCatalogos devuelve los conteos de las tablas principales.
func (r *AnalyticsRepo) ContarCatalogos() (distritos, platos, clientes, empleados int, err error) {
	err = r.q.QueryRow(context.Background(), `
		SELECT
			(SELECT COUNT(*) FROM distritos),
			(SELECT COUNT(*) FROM platos),
			(SELECT COUNT(*) FROM clientes),
			(SELECT COUNT(*) FROM empleados)`).
		Scan(&distritos, &platos, &clientes, &empleados)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("contar catálogos: %w", err)
	}
	return distritos, platos, clientes, empleados, nil
}
