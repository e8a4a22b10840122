package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// EmpleadoRequest entrada para crear o actualizar un empleado.
type EmpleadoRequest struct {
	Codigo              string          `json:"codigo"`
	TipoDocumentoCodigo string          `json:"tipo_documento"`
	NumeroDocumento     string          `json:"numero_documento"`
	Nombres             string          `json:"nombres"`
	ApellidoPaterno     string          `json:"apellido_paterno"`
	ApellidoMaterno     string          `json:"apellido_materno"`
	Direccion           string          `json:"direccion"`
	Telefono            string          `json:"telefono"`
	Email               string          `json:"email"`
	RolCodigo           string          `json:"rol"`
	DistritoCodigo      string          `json:"distrito"`
	FechaNacimiento     time.Time       `json:"fecha_nacimiento"`
	Salario             decimal.Decimal `json:"salario"`
	Activo              bool            `json:"estado"`
}

// EmpleadoResponse salida de un empleado.
type EmpleadoResponse struct {
	Codigo              string          `json:"codigo"`
	TipoDocumentoCodigo string          `json:"tipo_documento"`
	NumeroDocumento     string          `json:"numero_documento"`
	Nombres             string          `json:"nombres"`
	ApellidoPaterno     string          `json:"apellido_paterno"`
	ApellidoMaterno     string          `json:"apellido_materno"`
	Direccion           string          `json:"direccion"`
	Telefono            string          `json:"telefono"`
	Email               string          `json:"email"`
	RolCodigo           string          `json:"rol"`
	DistritoCodigo      string          `json:"distrito"`
	FechaNacimiento     time.Time       `json:"fecha_nacimiento"`
	Salario             decimal.Decimal `json:"salario"`
	Activo              bool            `json:"estado"`
	CreadoEn            time.Time       `json:"creado_en"`
}

// Clave devuelve la clave primaria del recurso.
func (r EmpleadoResponse) Clave() string { return r.Codigo }

// EsActivo indica si el recurso está activo.
func (r EmpleadoResponse) EsActivo() bool { return r.Activo }

// NombreCompleto devuelve nombres y apellidos para mostrar en listados.
func (r EmpleadoResponse) NombreCompleto() string {
	s := r.Nombres + " " + r.ApellidoPaterno
	if r.ApellidoMaterno != "" {
		s += " " + r.ApellidoMaterno
	}
	return s
}

// NewEmpleadoResponse mapea la entidad al DTO de salida.
func NewEmpleadoResponse(e *entity.Empleado) EmpleadoResponse {
	return EmpleadoResponse{
		Codigo:              e.Codigo,
		TipoDocumentoCodigo: e.TipoDocumentoCodigo,
		NumeroDocumento:     e.NumeroDocumento,
		Nombres:             e.Nombres,
		ApellidoPaterno:     e.ApellidoPaterno,
		ApellidoMaterno:     e.ApellidoMaterno,
		Direccion:           e.Direccion,
		Telefono:            e.Telefono,
		Email:               e.Email,
		RolCodigo:           e.RolCodigo,
		DistritoCodigo:      e.DistritoCodigo,
		FechaNacimiento:     e.FechaNacimiento,
		Salario:             e.Salario,
		Activo:              e.Activo,
		CreadoEn:            e.CreadoEn,
	}
}

// NewEmpleadoResponseList mapea una lista de entidades.
func NewEmpleadoResponseList(list []*entity.Empleado) []EmpleadoResponse {
	out := make([]EmpleadoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewEmpleadoResponse(e))
	}
	return out
}
