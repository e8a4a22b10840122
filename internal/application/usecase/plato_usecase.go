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

// PlatoUseCase casos de uso de la carta.
type PlatoUseCase struct {
	repo  repository.PlatoRepository
	tipos repository.CatalogoRepository
}

// NewPlatoUseCase construye el caso de uso.
func NewPlatoUseCase(repo repository.PlatoRepository, tipos repository.CatalogoRepository) *PlatoUseCase {
	return &PlatoUseCase{repo: repo, tipos: tipos}
}

// Create crea un plato. El precio no puede ser negativo y el tipo de plato,
// si viene, debe existir.
func (uc *PlatoUseCase) Create(in dto.PlatoRequest) (*dto.PlatoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.TipoPlatoCodigo != "" {
		tipo, err := uc.tipos.GetByCodigo(in.TipoPlatoCodigo)
		if err != nil {
			return nil, err
		}
		if tipo == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	codigo := strings.TrimSpace(in.Codigo)
	if codigo == "" {
		codigo = uuid.New().String()
	}
	plato := &entity.Plato{
		Codigo:          codigo,
		Nombre:          strings.TrimSpace(in.Nombre),
		Descripcion:     in.Descripcion,
		Precio:          in.Precio,
		Costo:           in.Costo,
		TipoPlatoCodigo: in.TipoPlatoCodigo,
		Activo:          in.Activo,
		CreadoEn:        time.Now(),
	}
	if err := uc.repo.Create(plato); err != nil {
		return nil, err
	}
	out := dto.NewPlatoResponse(plato)
	return &out, nil
}

// GetByCodigo obtiene un plato por su código.
func (uc *PlatoUseCase) GetByCodigo(codigo string) (*dto.PlatoResponse, error) {
	plato, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if plato == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewPlatoResponse(plato)
	return &out, nil
}

// List lista todos los platos.
func (uc *PlatoUseCase) List(page dto.PageRequest) ([]dto.PlatoResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.NewPlatoResponseList(list), nil
}

// ListActivos lista solo los platos activos.
func (uc *PlatoUseCase) ListActivos() ([]dto.PlatoResponse, error) {
	list, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	return dto.NewPlatoResponseList(list), nil
}

// Update actualiza los datos del plato.
func (uc *PlatoUseCase) Update(codigo string, in dto.PlatoRequest) (*dto.PlatoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Nombre = strings.TrimSpace(in.Nombre)
	existing.Descripcion = in.Descripcion
	existing.Precio = in.Precio
	existing.Costo = in.Costo
	existing.TipoPlatoCodigo = in.TipoPlatoCodigo
	existing.Activo = in.Activo
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	out := dto.NewPlatoResponse(existing)
	return &out, nil
}

// Delete elimina un plato por código.
func (uc *PlatoUseCase) Delete(codigo string) error {
	return uc.repo.Delete(codigo)
}

// Search busca platos por nombre o descripción.
func (uc *PlatoUseCase) Search(term string) ([]dto.PlatoResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.ListActivos()
	}
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	return dto.NewPlatoResponseList(list), nil
}
