package dto

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ItemCatalogoRequest entrada para crear o actualizar un ítem de catálogo.
// Codigo es opcional al crear: si viene vacío el servidor lo asigna.
type ItemCatalogoRequest struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"estado"`
}

// ItemCatalogoResponse salida de un ítem de catálogo.
type ItemCatalogoResponse struct {
	Codigo   string    `json:"codigo"`
	Nombre   string    `json:"nombre"`
	Activo   bool      `json:"estado"`
	CreadoEn time.Time `json:"creado_en"`
}

// Clave devuelve la clave primaria del recurso.
func (r ItemCatalogoResponse) Clave() string { return r.Codigo }

// EsActivo indica si el recurso está activo (borrado lógico).
func (r ItemCatalogoResponse) EsActivo() bool { return r.Activo }

// NewItemCatalogoResponse mapea la entidad al DTO de salida.
func NewItemCatalogoResponse(e *entity.ItemCatalogo) ItemCatalogoResponse {
	return ItemCatalogoResponse{
		Codigo:   e.Codigo,
		Nombre:   e.Nombre,
		Activo:   e.Activo,
		CreadoEn: e.CreadoEn,
	}
}

// NewItemCatalogoResponseList mapea una lista de entidades.
func NewItemCatalogoResponseList(list []*entity.ItemCatalogo) []ItemCatalogoResponse {
	out := make([]ItemCatalogoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewItemCatalogoResponse(e))
	}
	return out
}
