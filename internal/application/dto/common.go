package dto

// DataResponse envuelve toda respuesta exitosa de la API: {"data": ...}.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// ErrorResponse cuerpo de error HTTP. Message es la parte que la consola
// muestra al usuario cuando la respuesta no es 2xx.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageRequest paginación para listados. Limit 0 = sin límite (los catálogos
// son pequeños y los clientes paginan en memoria).
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize corrige valores negativos.
func (p *PageRequest) Normalize() {
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
