package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository. Recibe el pool (no un
// Querier) porque pedido y detalles se escriben en la misma transacción.
type PedidoRepo struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository construye el adaptador.
func NewPedidoRepository(pool *pgxpool.Pool) *PedidoRepo {
	return &PedidoRepo{pool: pool}
}

const pedidoColumns = `codigo, etiqueta, estado, cliente, empleado, total, activo, creado_en`

func scanPedido(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	err := row.Scan(
		&p.Codigo, &p.Etiqueta, &p.Estado, &p.ClienteCodigo, &p.EmpleadoCodigo,
		&p.Total, &p.Activo, &p.CreadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func insertDetalles(ctx context.Context, tx pgx.Tx, pedido *entity.Pedido) error {
	for i, d := range pedido.Detalles {
		_, err := tx.Exec(ctx, `
			INSERT INTO pedido_detalles (pedido, linea, plato, plato_nombre, cantidad, precio_unitario)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			pedido.Codigo, i+1, d.PlatoCodigo, d.PlatoNombre, d.Cantidad, d.PrecioUnitario,
		)
		if err != nil {
			return fmt.Errorf("insert detalle: %w", err)
		}
	}
	return nil
}

// Create persiste el pedido y sus detalles en una transacción.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO pedidos (`+pedidoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pedido.Codigo, pedido.Etiqueta, pedido.Estado, pedido.ClienteCodigo,
		pedido.EmpleadoCodigo, pedido.Total, pedido.Activo, pedido.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	if err := insertDetalles(ctx, tx, pedido); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un pedido con sus detalles. Devuelve nil si no existe.
func (r *PedidoRepo) GetByCodigo(codigo string) (*entity.Pedido, error) {
	ctx := context.Background()
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE codigo = $1`
	p, err := scanPedido(r.pool.QueryRow(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	detalles, err := r.loadDetalles(ctx, []string{p.Codigo})
	if err != nil {
		return nil, err
	}
	p.Detalles = detalles[p.Codigo]
	return p, nil
}

// List lista pedidos (más recientes primero). limit <= 0 devuelve todo.
func (r *PedidoRepo) List(limit, offset int) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos ORDER BY creado_en DESC OFFSET $1`
	args := []any{offset}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	return r.queryList(query, args...)
}

// ListActivos lista solo los pedidos activos.
func (r *PedidoRepo) ListActivos() ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE activo ORDER BY creado_en DESC`
	return r.queryList(query)
}

// Update actualiza el pedido y reemplaza sus detalles en una transacción.
func (r *PedidoRepo) Update(pedido *entity.Pedido) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE pedidos SET etiqueta = $2, estado = $3, cliente = $4, empleado = $5,
			total = $6, activo = $7
		WHERE codigo = $1`,
		pedido.Codigo, pedido.Etiqueta, pedido.Estado, pedido.ClienteCodigo,
		pedido.EmpleadoCodigo, pedido.Total, pedido.Activo,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM pedido_detalles WHERE pedido = $1`, pedido.Codigo); err != nil {
		return fmt.Errorf("delete detalles: %w", err)
	}
	if err := insertDetalles(ctx, tx, pedido); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete elimina un pedido; los detalles caen por FK ON DELETE CASCADE.
func (r *PedidoRepo) Delete(codigo string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM pedidos WHERE codigo = $1`, codigo)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca por etiqueta o código de cliente.
func (r *PedidoRepo) Search(term string) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos
		WHERE etiqueta ILIKE '%' || $1 || '%'
			OR cliente ILIKE '%' || $1 || '%'
		ORDER BY creado_en DESC`
	return r.queryList(query, term)
}

func (r *PedidoRepo) queryList(query string, args ...any) ([]*entity.Pedido, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	var codigos []string
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
		codigos = append(codigos, p.Codigo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	detalles, err := r.loadDetalles(ctx, codigos)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.Detalles = detalles[p.Codigo]
	}
	return list, nil
}

// loadDetalles carga en lote los detalles de los pedidos indicados.
func (r *PedidoRepo) loadDetalles(ctx context.Context, codigos []string) (map[string][]entity.DetallePedido, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT pedido, plato, plato_nombre, cantidad, precio_unitario
		FROM pedido_detalles WHERE pedido = ANY($1) ORDER BY pedido, linea`, codigos)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.DetallePedido, len(codigos))
	for rows.Next() {
		var pedido string
		var d entity.DetallePedido
		if err := rows.Scan(&pedido, &d.PlatoCodigo, &d.PlatoNombre, &d.Cantidad, &d.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		out[pedido] = append(out[pedido], d)
	}
	return out, rows.Err()
}
