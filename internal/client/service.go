package client

import (
	"net/http"
	"net/url"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
)

// Resource lo que el SDK necesita de cada recurso: una clave estable para
// identificarlo y el flag de activo para el filtrado en memoria.
type Resource interface {
	Clave() string
	EsActivo() bool
}

// Service acceso genérico a un recurso de la API. T es el tipo de respuesta
// y Req el cuerpo de las escrituras. Cada constructor fija la ruta base, el
// nombre del parámetro de búsqueda y si el recurso expone /active.
type Service[T Resource, Req any] struct {
	c           *Client
	basePath    string
	searchParam string
	hasActive   bool
}

func newService[T Resource, Req any](c *Client, basePath, searchParam string, hasActive bool) *Service[T, Req] {
	return &Service[T, Req]{c: c, basePath: basePath, searchParam: searchParam, hasActive: hasActive}
}

// List devuelve todos los registros, activos e inactivos.
func (s *Service[T, Req]) List() ([]T, error) {
	var out dto.DataResponse[[]T]
	if err := s.c.doJSON(http.MethodGet, s.basePath, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListActive devuelve solo los activos. Cuando el recurso no expone /active
// (clientes) cae a List y filtra en memoria.
func (s *Service[T, Req]) ListActive() ([]T, error) {
	if !s.hasActive {
		all, err := s.List()
		if err != nil {
			return nil, err
		}
		activos := make([]T, 0, len(all))
		for _, item := range all {
			if item.EsActivo() {
				activos = append(activos, item)
			}
		}
		return activos, nil
	}
	var out dto.DataResponse[[]T]
	if err := s.c.doJSON(http.MethodGet, s.basePath+"/active", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Get obtiene un registro por código.
func (s *Service[T, Req]) Get(codigo string) (*T, error) {
	var out dto.DataResponse[T]
	if err := s.c.doJSON(http.MethodGet, s.basePath+"/"+url.PathEscape(codigo), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create crea un registro.
func (s *Service[T, Req]) Create(in Req) (*T, error) {
	var out dto.DataResponse[T]
	if err := s.c.doJSON(http.MethodPost, s.basePath, nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Update actualiza un registro por código.
func (s *Service[T, Req]) Update(codigo string, in Req) (*T, error) {
	var out dto.DataResponse[T]
	if err := s.c.doJSON(http.MethodPut, s.basePath+"/"+url.PathEscape(codigo), nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Delete elimina un registro. La ausencia de error es la señal de éxito.
func (s *Service[T, Req]) Delete(codigo string) error {
	return s.c.doJSON(http.MethodDelete, s.basePath+"/"+url.PathEscape(codigo), nil, nil, nil)
}

// Search busca con el parámetro propio del recurso (q, nombre o query).
func (s *Service[T, Req]) Search(term string) ([]T, error) {
	query := url.Values{s.searchParam: []string{term}}
	var out dto.DataResponse[[]T]
	if err := s.c.doJSON(http.MethodGet, s.basePath+"/search", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Constructores por recurso. Los nombres de parámetro de búsqueda difieren
// entre recursos por razones históricas de la API y se conservan tal cual.

func NewDistritoService(c *Client) *Service[dto.ItemCatalogoResponse, dto.ItemCatalogoRequest] {
	return newService[dto.ItemCatalogoResponse, dto.ItemCatalogoRequest](c, "/distritos", "q", true)
}

func NewTipoDocumentoService(c *Client) *Service[dto.ItemCatalogoResponse, dto.ItemCatalogoRequest] {
	return newService[dto.ItemCatalogoResponse, dto.ItemCatalogoRequest](c, "/tipos-documento", "q", true)
}

func NewRolService(c *Client) *Service[dto.ItemCatalogoResponse, dto.ItemCatalogoRequest] {
	return newService[dto.ItemCatalogoResponse, dto.ItemCatalogoRequest](c, "/roles", "q", true)
}

func NewTipoPlatoService(c *Client) *Service[dto.ItemCatalogoResponse, dto.ItemCatalogoRequest] {
	return newService[dto.ItemCatalogoResponse, dto.ItemCatalogoRequest](c, "/tipos-plato", "q", true)
}

func NewEmpleadoService(c *Client) *Service[dto.EmpleadoResponse, dto.EmpleadoRequest] {
	return newService[dto.EmpleadoResponse, dto.EmpleadoRequest](c, "/empleados", "nombre", true)
}

// NewClienteService: clientes no tienen /active, ListActive filtra en memoria.
func NewClienteService(c *Client) *Service[dto.ClienteResponse, dto.ClienteRequest] {
	return newService[dto.ClienteResponse, dto.ClienteRequest](c, "/clientes", "query", false)
}

func NewPlatoService(c *Client) *Service[dto.PlatoResponse, dto.PlatoRequest] {
	return newService[dto.PlatoResponse, dto.PlatoRequest](c, "/platos", "query", true)
}

// PedidoService agrega a las operaciones genéricas la boleta PDF y la
// exportación a Excel.
type PedidoService struct {
	*Service[dto.PedidoResponse, dto.PedidoRequest]
}

func NewPedidoService(c *Client) *PedidoService {
	return &PedidoService{
		Service: newService[dto.PedidoResponse, dto.PedidoRequest](c, "/pedidos", "query", true),
	}
}

// Boleta descarga la boleta PDF del pedido.
func (s *PedidoService) Boleta(codigo string) ([]byte, error) {
	return s.c.doRaw("/pedidos/" + url.PathEscape(codigo) + "/boleta")
}

// Export descarga todos los pedidos en un archivo Excel.
func (s *PedidoService) Export() ([]byte, error) {
	return s.c.doRaw("/pedidos/export")
}
