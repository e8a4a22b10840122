package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// EmpleadoRepository define el puerto de persistencia para Empleado.
type EmpleadoRepository interface {
	Create(empleado *entity.Empleado) error
	GetByCodigo(codigo string) (*entity.Empleado, error)
	List(limit, offset int) ([]*entity.Empleado, error)
	ListActivos() ([]*entity.Empleado, error)
	Update(empleado *entity.Empleado) error
	Delete(codigo string) error
	Search(term string) ([]*entity.Empleado, error)
}
