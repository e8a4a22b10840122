// Package console renderiza el back-office en terminal: tabla genérica por
// recurso con paginación, banner de error y flujo de borrado con
// confirmación en dos pasos.
package console

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/Restaurante-api/internal/client"
	"github.com/jhoicas/Restaurante-api/internal/store"
)

// Column columna de la tabla. Si Render es nil se muestra el valor crudo del
// campo cuyo tag json coincide con Key.
type Column[T client.Resource] struct {
	Key    string
	Label  string
	Render func(item T) string
}

// Table tabla genérica sobre un store. Las columnas con Key "estado" se
// descartan al renderizar: el estado ya se comunica con el badge.
type Table[T client.Resource] struct {
	titulo   string
	basePath string
	columns  []Column[T]
	store    *store.Store[T]

	borrado deleteFlow[T]
}

// NewTable construye la tabla. basePath alimenta las rutas de edición
// (/<basePath>/<codigo>/edit).
func NewTable[T client.Resource](titulo, basePath string, st *store.Store[T], columns []Column[T]) *Table[T] {
	visibles := make([]Column[T], 0, len(columns))
	for _, col := range columns {
		if col.Key == "estado" {
			continue
		}
		visibles = append(visibles, col)
	}
	return &Table[T]{titulo: titulo, basePath: basePath, columns: visibles, store: st}
}

// EditRoute ruta de edición del registro.
func (t *Table[T]) EditRoute(item T) string {
	return "/" + t.basePath + "/" + item.Clave() + "/edit"
}

// Render dibuja la tabla completa: cabecera, cuerpo (o banner de error, que
// lo reemplaza), pie de paginación y el diálogo de confirmación si hay un
// borrado pendiente.
func (t *Table[T]) Render(w io.Writer) {
	snap := t.store.Snapshot()

	fmt.Fprintf(w, "== %s ==\n", t.titulo)

	if snap.Err != "" {
		fmt.Fprintf(w, "[!] %s\n", snap.Err)
		t.renderFooter(w, snap)
		return
	}
	if snap.Loading {
		fmt.Fprintln(w, "Cargando...")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	labels := make([]string, len(t.columns))
	for i, col := range t.columns {
		labels[i] = col.Label
	}
	fmt.Fprintln(tw, strings.Join(labels, "\t"))

	if len(snap.Visible) == 0 {
		fmt.Fprintln(tw, "No hay registros")
	}
	for _, item := range snap.Visible {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			cells[i] = t.cell(col, item)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()

	t.renderFooter(w, snap)
	t.renderDeleteDialog(w)
}

func (t *Table[T]) cell(col Column[T], item T) string {
	if col.Render != nil {
		return col.Render(item)
	}
	return rawValue(item, col.Key)
}

// renderFooter pie "Página X de Y" con los controles deshabilitados
// exactamente en los bordes.
func (t *Table[T]) renderFooter(w io.Writer, snap store.Snapshot[T]) {
	prev := "  Anterior "
	if snap.Page > 1 {
		prev = "[< Anterior]"
	}
	next := " Siguiente  "
	if snap.Page < snap.TotalPages {
		next = "[Siguiente >]"
	}
	fmt.Fprintf(w, "%s Página %d de %d %s\n", prev, snap.Page, snap.TotalPages, next)
}

// rawValue busca por reflexión el campo cuyo tag json coincide con key.
func rawValue[T any](item T, key string) string {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	tp := v.Type()
	for i := 0; i < tp.NumField(); i++ {
		tag := tp.Field(i).Tag.Get("json")
		if name, _, _ := strings.Cut(tag, ","); name == key {
			return fmt.Sprint(v.Field(i).Interface())
		}
	}
	return ""
}
