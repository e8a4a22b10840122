package entity

import "time"

// Roles de acceso del personal a la consola de administración.
const (
	RolAdmin  = "admin"
	RolMozo   = "mozo"
	RolCajero = "cajero"
)

// Usuario es la credencial de acceso de un empleado (login de la consola).
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string
	Activo       bool
	CreadoEn     time.Time
}
