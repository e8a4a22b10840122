package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plato representa un plato de la carta.
type Plato struct {
	Codigo          string
	Nombre          string
	Descripcion     string
	Precio          decimal.Decimal
	Costo           decimal.Decimal // opcional, uso interno
	TipoPlatoCodigo string
	Activo          bool
	CreadoEn        time.Time
}
