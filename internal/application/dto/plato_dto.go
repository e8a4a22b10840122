package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// PlatoRequest entrada para crear o actualizar un plato de la carta.
type PlatoRequest struct {
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	Descripcion     string          `json:"descripcion"`
	Precio          decimal.Decimal `json:"precio"`
	Costo           decimal.Decimal `json:"costo"`
	TipoPlatoCodigo string          `json:"tipo_plato"`
	Activo          bool            `json:"estado"`
}

// PlatoResponse salida de un plato.
type PlatoResponse struct {
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	Descripcion     string          `json:"descripcion"`
	Precio          decimal.Decimal `json:"precio"`
	Costo           decimal.Decimal `json:"costo"`
	TipoPlatoCodigo string          `json:"tipo_plato"`
	Activo          bool            `json:"estado"`
	CreadoEn        time.Time       `json:"creado_en"`
}

// Clave devuelve la clave primaria del recurso.
func (r PlatoResponse) Clave() string { return r.Codigo }

// EsActivo indica si el recurso está activo.
func (r PlatoResponse) EsActivo() bool { return r.Activo }

// NewPlatoResponse mapea la entidad al DTO de salida.
func NewPlatoResponse(e *entity.Plato) PlatoResponse {
	return PlatoResponse{
		Codigo:          e.Codigo,
		Nombre:          e.Nombre,
		Descripcion:     e.Descripcion,
		Precio:          e.Precio,
		Costo:           e.Costo,
		TipoPlatoCodigo: e.TipoPlatoCodigo,
		Activo:          e.Activo,
		CreadoEn:        e.CreadoEn,
	}
}

// NewPlatoResponseList mapea una lista de entidades.
func NewPlatoResponseList(list []*entity.Plato) []PlatoResponse {
	out := make([]PlatoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewPlatoResponse(e))
	}
	return out
}
