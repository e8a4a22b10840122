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

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo implementación de CatalogoRepository parametrizada por tabla.
// Todas las tablas de catálogo comparten el mismo esquema (codigo, nombre,
// activo, creado_en).
type CatalogoRepo struct {
	q     Querier
	table string
}

// NewDistritoRepository catálogo de distritos.
func NewDistritoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q, table: "distritos"}
}

// NewTipoDocumentoRepository catálogo de tipos de documento.
func NewTipoDocumentoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q, table: "tipos_documento"}
}

// NewRolRepository catálogo de roles del personal.
func NewRolRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q, table: "roles"}
}

// NewTipoPlatoRepository catálogo de tipos de plato.
func NewTipoPlatoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q, table: "tipos_plato"}
}

// Create persiste un nuevo ítem.
func (r *CatalogoRepo) Create(item *entity.ItemCatalogo) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (codigo, nombre, activo, creado_en)
		VALUES ($1, $2, $3, $4)`, r.table)
	_, err := r.q.Exec(context.Background(), query,
		item.Codigo, item.Nombre, item.Activo, item.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// GetByCodigo obtiene un ítem por código. Devuelve nil si no existe.
func (r *CatalogoRepo) GetByCodigo(codigo string) (*entity.ItemCatalogo, error) {
	query := fmt.Sprintf(`
		SELECT codigo, nombre, activo, creado_en
		FROM %s WHERE codigo = $1`, r.table)
	var item entity.ItemCatalogo
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&item.Codigo, &item.Nombre, &item.Activo, &item.CreadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return &item, nil
}

// List lista ítems ordenados por nombre. limit <= 0 devuelve todo.
func (r *CatalogoRepo) List(limit, offset int) ([]*entity.ItemCatalogo, error) {
	query := fmt.Sprintf(`
		SELECT codigo, nombre, activo, creado_en
		FROM %s ORDER BY nombre OFFSET $1`, r.table)
	args := []any{offset}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	return r.queryList(query, args...)
}

// ListActivos lista solo ítems activos.
func (r *CatalogoRepo) ListActivos() ([]*entity.ItemCatalogo, error) {
	query := fmt.Sprintf(`
		SELECT codigo, nombre, activo, creado_en
		FROM %s WHERE activo ORDER BY nombre`, r.table)
	return r.queryList(query)
}

// Update actualiza nombre y estado.
func (r *CatalogoRepo) Update(item *entity.ItemCatalogo) error {
	query := fmt.Sprintf(`
		UPDATE %s SET nombre = $2, activo = $3 WHERE codigo = $1`, r.table)
	tag, err := r.q.Exec(context.Background(), query, item.Codigo, item.Nombre, item.Activo)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem por código. Eliminar un código inexistente devuelve
// ErrNotFound: el segundo DELETE sobre el mismo recurso debe fallar.
func (r *CatalogoRepo) Delete(codigo string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE codigo = $1`, r.table)
	tag, err := r.q.Exec(context.Background(), query, codigo)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca por nombre (ILIKE).
func (r *CatalogoRepo) Search(term string) ([]*entity.ItemCatalogo, error) {
	query := fmt.Sprintf(`
		SELECT codigo, nombre, activo, creado_en
		FROM %s WHERE nombre ILIKE '%%' || $1 || '%%' ORDER BY nombre`, r.table)
	return r.queryList(query, term)
}

func (r *CatalogoRepo) queryList(query string, args ...any) ([]*entity.ItemCatalogo, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	var list []*entity.ItemCatalogo
	for rows.Next() {
		var item entity.ItemCatalogo
		if err := rows.Scan(&item.Codigo, &item.Nombre, &item.Activo, &item.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
