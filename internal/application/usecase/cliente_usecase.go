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

// ClienteUseCase casos de uso de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente. Nombres y número de documento son obligatorios.
func (uc *ClienteUseCase) Create(in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(in.Nombres) == "" || strings.TrimSpace(in.NumeroDocumento) == "" {
		return nil, domain.ErrInvalidInput
	}
	codigo := strings.TrimSpace(in.Codigo)
	if codigo == "" {
		codigo = uuid.New().String()
	}
	cliente := &entity.Cliente{
		Codigo:              codigo,
		TipoDocumentoCodigo: in.TipoDocumentoCodigo,
		NumeroDocumento:     strings.TrimSpace(in.NumeroDocumento),
		Nombres:             strings.TrimSpace(in.Nombres),
		ApellidoPaterno:     in.ApellidoPaterno,
		ApellidoMaterno:     in.ApellidoMaterno,
		Direccion:           in.Direccion,
		Telefono:            in.Telefono,
		Email:               in.Email,
		Activo:              in.Activo,
		CreadoEn:            time.Now(),
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	out := dto.NewClienteResponse(cliente)
	return &out, nil
}

// GetByCodigo obtiene un cliente por su código.
func (uc *ClienteUseCase) GetByCodigo(codigo string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewClienteResponse(cliente)
	return &out, nil
}

// List lista clientes. No existe listado "solo activos" para clientes: el
// endpoint nunca existió en el backend original y los consumidores filtran
// en memoria.
func (uc *ClienteUseCase) List(page dto.PageRequest) ([]dto.ClienteResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.NewClienteResponseList(list), nil
}

// Update actualiza los datos del cliente.
func (uc *ClienteUseCase) Update(codigo string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
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
	existing.Activo = in.Activo
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	out := dto.NewClienteResponse(existing)
	return &out, nil
}

// Delete elimina un cliente por código.
func (uc *ClienteUseCase) Delete(codigo string) error {
	return uc.repo.Delete(codigo)
}

// Search busca clientes por nombre o número de documento.
func (uc *ClienteUseCase) Search(term string) ([]dto.ClienteResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.List(dto.PageRequest{})
	}
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	return dto.NewClienteResponseList(list), nil
}
