package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Empleado representa un miembro del personal del restaurante.
type Empleado struct {
	Codigo              string
	TipoDocumentoCodigo string
	NumeroDocumento     string
	Nombres             string
	ApellidoPaterno     string
	ApellidoMaterno     string // opcional
	Direccion           string
	Telefono            string
	Email               string
	RolCodigo           string
	DistritoCodigo      string
	FechaNacimiento     time.Time
	Salario             decimal.Decimal
	Activo              bool
	CreadoEn            time.Time
}
