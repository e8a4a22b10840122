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

// PedidoUseCase casos de uso de pedidos. El total es autoritativo del
// servidor: se recalcula en cada escritura a partir de los detalles, con el
// precio vigente del plato al momento de tomar el pedido.
type PedidoUseCase struct {
	repo   repository.PedidoRepository
	platos repository.PlatoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository, platos repository.PlatoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, platos: platos}
}

// resolverDetalles convierte las líneas de la petición en detalles con precio
// unitario y nombre desnormalizado tomados de la carta.
func (uc *PedidoUseCase) resolverDetalles(in []dto.DetallePedidoRequest) ([]entity.DetallePedido, error) {
	detalles := make([]entity.DetallePedido, 0, len(in))
	for _, d := range in {
		if d.Cantidad <= 0 || d.PlatoCodigo == "" {
			return nil, domain.ErrInvalidInput
		}
		plato, err := uc.platos.GetByCodigo(d.PlatoCodigo)
		if err != nil {
			return nil, err
		}
		if plato == nil {
			return nil, domain.ErrInvalidInput
		}
		detalles = append(detalles, entity.DetallePedido{
			PlatoCodigo:    plato.Codigo,
			PlatoNombre:    plato.Nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: plato.Precio,
		})
	}
	return detalles, nil
}

// Create registra un pedido. El estado inicial es Pendiente salvo que venga
// uno válido en la petición.
func (uc *PedidoUseCase) Create(in dto.PedidoRequest) (*dto.PedidoResponse, error) {
	if len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoPendiente
	}
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrEstadoInvalido
	}
	detalles, err := uc.resolverDetalles(in.Detalles)
	if err != nil {
		return nil, err
	}
	codigo := strings.TrimSpace(in.Codigo)
	if codigo == "" {
		codigo = uuid.New().String()
	}
	pedido := &entity.Pedido{
		Codigo:         codigo,
		Etiqueta:       in.Etiqueta,
		Estado:         estado,
		ClienteCodigo:  in.ClienteCodigo,
		EmpleadoCodigo: in.EmpleadoCodigo,
		Detalles:       detalles,
		Activo:         true,
		CreadoEn:       time.Now(),
	}
	pedido.Total = pedido.CalcularTotal()
	if err := uc.repo.Create(pedido); err != nil {
		return nil, err
	}
	out := dto.NewPedidoResponse(pedido)
	return &out, nil
}

// GetByCodigo obtiene un pedido con sus detalles.
func (uc *PedidoUseCase) GetByCodigo(codigo string) (*dto.PedidoResponse, error) {
	pedido, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewPedidoResponse(pedido)
	return &out, nil
}

// List lista todos los pedidos.
func (uc *PedidoUseCase) List(page dto.PageRequest) ([]dto.PedidoResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.NewPedidoResponseList(list), nil
}

// ListActivos lista solo los pedidos activos.
func (uc *PedidoUseCase) ListActivos() ([]dto.PedidoResponse, error) {
	list, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	return dto.NewPedidoResponseList(list), nil
}

// Update actualiza etiqueta, estado y detalles, recalculando el total.
// Un estado fuera del conjunto conocido se rechaza: el backend original
// aceptaba cualquier string y eso dejaba pedidos imposibles de filtrar.
func (uc *PedidoUseCase) Update(codigo string, in dto.PedidoRequest) (*dto.PedidoResponse, error) {
	existing, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if in.Estado != "" {
		if !entity.EstadoValido(in.Estado) {
			return nil, domain.ErrEstadoInvalido
		}
		existing.Estado = in.Estado
	}
	if in.Etiqueta != "" {
		existing.Etiqueta = in.Etiqueta
	}
	if in.ClienteCodigo != "" {
		existing.ClienteCodigo = in.ClienteCodigo
	}
	if in.EmpleadoCodigo != "" {
		existing.EmpleadoCodigo = in.EmpleadoCodigo
	}
	if len(in.Detalles) > 0 {
		detalles, err := uc.resolverDetalles(in.Detalles)
		if err != nil {
			return nil, err
		}
		existing.Detalles = detalles
	}
	existing.Total = existing.CalcularTotal()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	out := dto.NewPedidoResponse(existing)
	return &out, nil
}

// Delete elimina un pedido por código.
func (uc *PedidoUseCase) Delete(codigo string) error {
	return uc.repo.Delete(codigo)
}

// Search busca pedidos por etiqueta o código de cliente.
func (uc *PedidoUseCase) Search(term string) ([]dto.PedidoResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.ListActivos()
	}
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	return dto.NewPedidoResponseList(list), nil
}
