package entity

import "time"

// Cliente representa un cliente del restaurante.
// Las referencias (tipo de documento) son códigos de catálogo; no hay
// integridad referencial del lado del cliente de la API.
type Cliente struct {
	Codigo              string
	TipoDocumentoCodigo string
	NumeroDocumento     string
	Nombres             string
	ApellidoPaterno     string
	ApellidoMaterno     string // opcional
	Direccion           string
	Telefono            string
	Email               string
	Activo              bool
	CreadoEn            time.Time
}
