package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.PlatoRepository = (*PlatoRepo)(nil)

// PlatoRepo implementación de PlatoRepository.
type PlatoRepo struct {
	q Querier
}

// NewPlatoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlatoRepository(q Querier) *PlatoRepo {
	return &PlatoRepo{q: q}
}

const platoColumns = `codigo, nombre, descripcion, precio, costo, tipo_plato, activo, creado_en`

func scanPlato(row pgx.Row) (*entity.Plato, error) {
	var p entity.Plato
	err := row.Scan(
		&p.Codigo, &p.Nombre, &p.Descripcion, &p.Precio, &p.Costo,
		&p.TipoPlatoCodigo, &p.Activo, &p.CreadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo plato.
func (r *PlatoRepo) Create(plato *entity.Plato) error {
	query := `
		INSERT INTO platos (` + platoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		plato.Codigo, plato.Nombre, plato.Descripcion, plato.Precio, plato.Costo,
		plato.TipoPlatoCodigo, plato.Activo, plato.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plato: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un plato por código. Devuelve nil si no existe.
func (r *PlatoRepo) GetByCodigo(codigo string) (*entity.Plato, error) {
	query := `SELECT ` + platoColumns + ` FROM platos WHERE codigo = $1`
	p, err := scanPlato(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plato: %w", err)
	}
	return p, nil
}

// List lista platos ordenados por nombre. limit <= 0 devuelve todo.
func (r *PlatoRepo) List(limit, offset int) ([]*entity.Plato, error) {
	query := `SELECT ` + platoColumns + ` FROM platos ORDER BY nombre OFFSET $1`
	args := []any{offset}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	return r.queryList(query, args...)
}

// ListActivos lista solo los platos activos.
func (r *PlatoRepo) ListActivos() ([]*entity.Plato, error) {
	query := `SELECT ` + platoColumns + ` FROM platos WHERE activo ORDER BY nombre`
	return r.queryList(query)
}

// Update actualiza un plato.
func (r *PlatoRepo) Update(plato *entity.Plato) error {
	query := `
		UPDATE platos SET nombre = $2, descripcion = $3, precio = $4, costo = $5,
			tipo_plato = $6, activo = $7
		WHERE codigo = $1`
	tag, err := r.q.Exec(context.Background(), query,
		plato.Codigo, plato.Nombre, plato.Descripcion, plato.Precio, plato.Costo,
		plato.TipoPlatoCodigo, plato.Activo,
	)
	if err != nil {
		return fmt.Errorf("update plato: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un plato por código.
func (r *PlatoRepo) Delete(codigo string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM platos WHERE codigo = $1`, codigo)
	if err != nil {
		return fmt.Errorf("delete plato: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca por nombre o descripción.
func (r *PlatoRepo) Search(term string) ([]*entity.Plato, error) {
	query := `SELECT ` + platoColumns + ` FROM platos
		WHERE nombre ILIKE '%' || $1 || '%'
			OR descripcion ILIKE '%' || $1 || '%'
		ORDER BY nombre`
	return r.queryList(query, term)
}

func (r *PlatoRepo) queryList(query string, args ...any) ([]*entity.Plato, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list platos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plato
	for rows.Next() {
		p, err := scanPlato(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plato: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
