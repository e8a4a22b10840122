package dto

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ClienteRequest entrada para crear o actualizar un cliente.
type ClienteRequest struct {
	Codigo              string `json:"codigo"`
	TipoDocumentoCodigo string `json:"tipo_documento"`
	NumeroDocumento     string `json:"numero_documento"`
	Nombres             string `json:"nombres"`
	ApellidoPaterno     string `json:"apellido_paterno"`
	ApellidoMaterno     string `json:"apellido_materno"`
	Direccion           string `json:"direccion"`
	Telefono            string `json:"telefono"`
	Email               string `json:"email"`
	Activo              bool   `json:"estado"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	Codigo              string    `json:"codigo"`
	TipoDocumentoCodigo string    `json:"tipo_documento"`
	NumeroDocumento     string    `json:"numero_documento"`
	Nombres             string    `json:"nombres"`
	ApellidoPaterno     string    `json:"apellido_paterno"`
	ApellidoMaterno     string    `json:"apellido_materno"`
	Direccion           string    `json:"direccion"`
	Telefono            string    `json:"telefono"`
	Email               string    `json:"email"`
	Activo              bool      `json:"estado"`
	CreadoEn            time.Time `json:"creado_en"`
}

// Clave devuelve la clave primaria del recurso.
func (r ClienteResponse) Clave() string { return r.Codigo }

// EsActivo indica si el recurso está activo.
func (r ClienteResponse) EsActivo() bool { return r.Activo }

// NombreCompleto devuelve nombres y apellidos para mostrar en listados.
func (r ClienteResponse) NombreCompleto() string {
	s := r.Nombres + " " + r.ApellidoPaterno
	if r.ApellidoMaterno != "" {
		s += " " + r.ApellidoMaterno
	}
	return s
}

// NewClienteResponse mapea la entidad al DTO de salida.
func NewClienteResponse(e *entity.Cliente) ClienteResponse {
	return ClienteResponse{
		Codigo:              e.Codigo,
		TipoDocumentoCodigo: e.TipoDocumentoCodigo,
		NumeroDocumento:     e.NumeroDocumento,
		Nombres:             e.Nombres,
		ApellidoPaterno:     e.ApellidoPaterno,
		ApellidoMaterno:     e.ApellidoMaterno,
		Direccion:           e.Direccion,
		Telefono:            e.Telefono,
		Email:               e.Email,
		Activo:              e.Activo,
		CreadoEn:            e.CreadoEn,
	}
}

// NewClienteResponseList mapea una lista de entidades.
func NewClienteResponseList(list []*entity.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewClienteResponse(e))
	}
	return out
}
