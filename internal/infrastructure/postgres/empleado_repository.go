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

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación de EmpleadoRepository.
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

const empleadoColumns = `codigo, tipo_documento, numero_documento, nombres,
	apellido_paterno, apellido_materno, direccion, telefono, email, rol, distrito,
	fecha_nacimiento, salario, activo, creado_en`

func scanEmpleado(row pgx.Row) (*entity.Empleado, error) {
	var e entity.Empleado
	err := row.Scan(
		&e.Codigo, &e.TipoDocumentoCodigo, &e.NumeroDocumento, &e.Nombres,
		&e.ApellidoPaterno, &e.ApellidoMaterno, &e.Direccion, &e.Telefono, &e.Email,
		&e.RolCodigo, &e.DistritoCodigo, &e.FechaNacimiento, &e.Salario, &e.Activo, &e.CreadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un nuevo empleado.
func (r *EmpleadoRepo) Create(empleado *entity.Empleado) error {
	query := `
		INSERT INTO empleados (` + empleadoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		empleado.Codigo, empleado.TipoDocumentoCodigo, empleado.NumeroDocumento, empleado.Nombres,
		empleado.ApellidoPaterno, empleado.ApellidoMaterno, empleado.Direccion, empleado.Telefono,
		empleado.Email, empleado.RolCodigo, empleado.DistritoCodigo, empleado.FechaNacimiento,
		empleado.Salario, empleado.Activo, empleado.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un empleado por código. Devuelve nil si no existe.
func (r *EmpleadoRepo) GetByCodigo(codigo string) (*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados WHERE codigo = $1`
	e, err := scanEmpleado(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return e, nil
}

// List lista empleados ordenados por nombre. limit <= 0 devuelve todo.
func (r *EmpleadoRepo) List(limit, offset int) ([]*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados ORDER BY nombres OFFSET $1`
	args := []any{offset}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	return r.queryList(query, args...)
}

// ListActivos lista solo los empleados activos.
func (r *EmpleadoRepo) ListActivos() ([]*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados WHERE activo ORDER BY nombres`
	return r.queryList(query)
}

// Update actualiza un empleado.
func (r *EmpleadoRepo) Update(empleado *entity.Empleado) error {
	query := `
		UPDATE empleados SET tipo_documento = $2, numero_documento = $3, nombres = $4,
			apellido_paterno = $5, apellido_materno = $6, direccion = $7, telefono = $8,
			email = $9, rol = $10, distrito = $11, fecha_nacimiento = $12, salario = $13,
			activo = $14
		WHERE codigo = $1`
	tag, err := r.q.Exec(context.Background(), query,
		empleado.Codigo, empleado.TipoDocumentoCodigo, empleado.NumeroDocumento, empleado.Nombres,
		empleado.ApellidoPaterno, empleado.ApellidoMaterno, empleado.Direccion, empleado.Telefono,
		empleado.Email, empleado.RolCodigo, empleado.DistritoCodigo, empleado.FechaNacimiento,
		empleado.Salario, empleado.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empleado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado por código.
func (r *EmpleadoRepo) Delete(codigo string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM empleados WHERE codigo = $1`, codigo)
	if err != nil {
		return fmt.Errorf("delete empleado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca por nombres o apellidos.
func (r *EmpleadoRepo) Search(term string) ([]*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados
		WHERE nombres ILIKE '%' || $1 || '%'
			OR apellido_paterno ILIKE '%' || $1 || '%'
		ORDER BY nombres`
	return r.queryList(query, term)
}

func (r *EmpleadoRepo) queryList(query string, args ...any) ([]*entity.Empleado, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empleado
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
