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

// CatalogoUseCase casos de uso comunes de los catálogos (distritos, tipos de
// documento, roles, tipos de plato). Una instancia por catálogo, compartiendo
// la misma lógica sobre repositorios distintos.
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso sobre el repositorio del catálogo.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// Create crea un ítem. Si no viene código, el servidor lo asigna.
func (uc *CatalogoUseCase) Create(in dto.ItemCatalogoRequest) (*dto.ItemCatalogoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	codigo := strings.TrimSpace(in.Codigo)
	if codigo == "" {
		codigo = uuid.New().String()
	}
	item := &entity.ItemCatalogo{
		Codigo:   codigo,
		Nombre:   strings.TrimSpace(in.Nombre),
		Activo:   in.Activo,
		CreadoEn: time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	out := dto.NewItemCatalogoResponse(item)
	return &out, nil
}

// GetByCodigo obtiene un ítem por su código.
func (uc *CatalogoUseCase) GetByCodigo(codigo string) (*dto.ItemCatalogoResponse, error) {
	item, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewItemCatalogoResponse(item)
	return &out, nil
}

// List lista todos los ítems del catálogo (activos e inactivos).
func (uc *CatalogoUseCase) List(page dto.PageRequest) ([]dto.ItemCatalogoResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.NewItemCatalogoResponseList(list), nil
}

// ListActivos lista solo los ítems activos.
func (uc *CatalogoUseCase) ListActivos() ([]dto.ItemCatalogoResponse, error) {
	list, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	return dto.NewItemCatalogoResponseList(list), nil
}

// Update actualiza nombre y estado del ítem.
func (uc *CatalogoUseCase) Update(codigo string, in dto.ItemCatalogoRequest) (*dto.ItemCatalogoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
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
	existing.Activo = in.Activo
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	out := dto.NewItemCatalogoResponse(existing)
	return &out, nil
}

// Delete elimina el ítem. La ausencia de error es la única señal de éxito.
func (uc *CatalogoUseCase) Delete(codigo string) error {
	return uc.repo.Delete(codigo)
}

// Search busca ítems por nombre.
func (uc *CatalogoUseCase) Search(term string) ([]dto.ItemCatalogoResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.ListActivos()
	}
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	return dto.NewItemCatalogoResponseList(list), nil
}
