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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `codigo, tipo_documento, numero_documento, nombres,
	apellido_paterno, apellido_materno, direccion, telefono, email, activo, creado_en`

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.Codigo, &c.TipoDocumentoCodigo, &c.NumeroDocumento, &c.Nombres,
		&c.ApellidoPaterno, &c.ApellidoMaterno, &c.Direccion, &c.Telefono,
		&c.Email, &c.Activo, &c.CreadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.Codigo, cliente.TipoDocumentoCodigo, cliente.NumeroDocumento, cliente.Nombres,
		cliente.ApellidoPaterno, cliente.ApellidoMaterno, cliente.Direccion, cliente.Telefono,
		cliente.Email, cliente.Activo, cliente.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un cliente por código. Devuelve nil si no existe.
func (r *ClienteRepo) GetByCodigo(codigo string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE codigo = $1`
	c, err := scanCliente(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// List lista clientes ordenados por nombre. limit <= 0 devuelve todo.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes ORDER BY nombres OFFSET $1`
	args := []any{offset}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	return r.queryList(query, args...)
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET tipo_documento = $2, numero_documento = $3, nombres = $4,
			apellido_paterno = $5, apellido_materno = $6, direccion = $7, telefono = $8,
			email = $9, activo = $10
		WHERE codigo = $1`
	tag, err := r.q.Exec(context.Background(), query,
		cliente.Codigo, cliente.TipoDocumentoCodigo, cliente.NumeroDocumento, cliente.Nombres,
		cliente.ApellidoPaterno, cliente.ApellidoMaterno, cliente.Direccion, cliente.Telefono,
		cliente.Email, cliente.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por código.
func (r *ClienteRepo) Delete(codigo string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE codigo = $1`, codigo)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca por nombres, apellidos o número de documento.
func (r *ClienteRepo) Search(term string) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes
		WHERE nombres ILIKE '%' || $1 || '%'
			OR apellido_paterno ILIKE '%' || $1 || '%'
			OR numero_documento ILIKE '%' || $1 || '%'
		ORDER BY nombres`
	return r.queryList(query, term)
}

func (r *ClienteRepo) queryList(query string, args ...any) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
