package entity

import "time"

// ItemCatalogo es la forma común de los catálogos administrables
// (distritos, tipos de documento, roles, tipos de plato).
// Activo es un borrado lógico: los listados "active" excluyen inactivos.
type ItemCatalogo struct {
	Codigo   string
	Nombre   string
	Activo   bool
	CreadoEn time.Time
}
