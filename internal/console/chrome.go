package console

import (
	"fmt"
	"io"
	"strings"
)

// Seccion entrada del menú lateral.
type Seccion struct {
	Titulo string
	Ruta   string
}

// Secciones del back-office en el orden del menú.
var Secciones = []Seccion{
	{"Dashboard", "/dashboard"},
	{"Distritos", "/distritos"},
	{"Tipos de documento", "/tipos-documento"},
	{"Roles", "/roles"},
	{"Tipos de plato", "/tipos-plato"},
	{"Empleados", "/empleados"},
	{"Clientes", "/clientes"},
	{"Platos", "/platos"},
	{"Pedidos", "/pedidos"},
}

// RenderSidebar dibuja el menú con la sección activa marcada.
func RenderSidebar(w io.Writer, activa string) {
	fmt.Fprintln(w, "┌─ Restaurante ──────────┐")
	for _, s := range Secciones {
		marker := "  "
		if s.Ruta == activa {
			marker = "▸ "
		}
		fmt.Fprintf(w, "│ %s%-21s│\n", marker, s.Titulo)
	}
	fmt.Fprintln(w, "└────────────────────────┘")
}

// RenderBreadcrumb dibuja la miga de pan: Inicio / Sección / Detalle.
func RenderBreadcrumb(w io.Writer, partes ...string) {
	fmt.Fprintln(w, strings.Join(append([]string{"Inicio"}, partes...), " / "))
}
