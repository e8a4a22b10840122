package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// EmpleadoUseCase casos de uso de empleados. Las referencias a rol y distrito
// se validan contra sus catálogos al crear.
type EmpleadoUseCase struct {
	repo      repository.EmpleadoRepository
	roles     repository.CatalogoRepository
	distritos repository.CatalogoRepository
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(repo repository.EmpleadoRepository, roles, distritos repository.CatalogoRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo, roles: roles, distritos: distritos}
}

// Create crea un empleado validando que rol y distrito existan.
func (uc *EmpleadoUseCase) Create(in dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if strings.TrimSpace(in.Nombres) == "" || strings.TrimSpace(in.NumeroDocumento) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.RolCodigo != "" {
		rol, err := uc.roles.GetByCodigo(in.RolCodigo)
		if err != nil {
			return nil, err
		}
		if rol == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.DistritoCodigo != "" {
		distrito, err := uc.distritos.GetByCodigo(in.DistritoCodigo)
		if err != nil {
			return nil, err
		}
		if distrito == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	codigo := strings.TrimSpace(in.Codigo)
	if codigo == "" {
		codigo = uuid.New().String()
	}
	empleado := &entity.Empleado{
		Codigo:              codigo,
		TipoDocumentoCodigo: in.TipoDocumentoCodigo,
		NumeroDocumento:     strings.TrimSpace(in.NumeroDocumento),
		Nombres:             strings.TrimSpace(in.Nombres),
		ApellidoPaterno:     in.ApellidoPaterno,
		ApellidoMaterno:     in.ApellidoMaterno,
		Direccion:           in.Direccion,
		Telefono:            in.Telefono,
		Email:               in.Email,
		RolCodigo:           in.RolCodigo,
		DistritoCodigo:      in.DistritoCodigo,
		FechaNacimiento:     in.FechaNacimiento,
		Salario:             in.Salario,
		Activo:              in.Activo,
		CreadoEn:            time.Now(),
	}
	if err := uc.repo.Create(empleado); err != nil {
		return nil, err
	}
	out := dto.NewEmpleadoResponse(empleado)
	return &out, nil
}

// GetByCodigo obtiene un empleado por su código.
func (uc *EmpleadoUseCase) GetByCodigo(codigo string) (*dto.EmpleadoResponse, error) {
	empleado, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewEmpleadoResponse(empleado)
	return &out, nil
}

// List lista todos los empleados.
func (uc *EmpleadoUseCase) List(page dto.PageRequest) ([]dto.EmpleadoResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.NewEmpleadoResponseList(list), nil
}

// ListActivos lista solo los empleados activos. El filtrado es del backend:
// los consumidores no vuelven a filtrar.
func (uc *EmpleadoUseCase) ListActivos() ([]dto.EmpleadoResponse, error) {
	list, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	return dto.NewEmpleadoResponseList(list), nil
}

// Update actualiza los datos del empleado.
func (uc *EmpleadoUseCase) Update(codigo string, in dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if strings.TrimSpace(in.Nombres) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.TipoDocumentoCodigo = in.TipoDocumentoCodigo
	existing.NumeroDocumento = in.NumeroDocumento
	existing.Nombres = strings.TrimSpace(in.Nombres)
	existing.ApellidoPaterno = in.ApellidoPaterno
	existing.ApellidoMaterno = in.ApellidoMaterno
	existing.Direccion = in.Direccion
	existing.Telefono = in.Telefono
	existing.Email = in.Email
	existing.RolCodigo = in.RolCodigo
	existing.DistritoCodigo = in.DistritoCodigo
	existing.FechaNacimiento = in.FechaNacimiento
	existing.Salario = in.Salario
	existing.Activo = in.Activo
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	out := dto.NewEmpleadoResponse(existing)
	return &out, nil
}

// Delete elimina un empleado por código.
func (uc *EmpleadoUseCase) Delete(codigo string) error {
	return uc.repo.Delete(codigo)
}

// Search busca empleados por nombre.
func (uc *EmpleadoUseCase) Search(term string) ([]dto.EmpleadoResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.ListActivos()
	}
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	return dto.NewEmpleadoResponseList(list), nil
}
