package console

import (
	"fmt"
	"io"
)

// Fases del flujo de borrado. Hay un único registro pendiente a la vez:
// pedir el borrado de otro reemplaza la selección anterior.
type deletePhase int

const (
	deleteIdle deletePhase = iota
	deleteConfirmando
	deleteEliminando
)

type deleteFlow[T any] struct {
	phase   deletePhase
	pending *T
}

// RequestDelete abre la confirmación para el registro. Si ya había una
// selección pendiente, la reemplaza.
func (t *Table[T]) RequestDelete(item T) {
	t.borrado.phase = deleteConfirmando
	t.borrado.pending = &item
}

// CancelDelete descarta la selección pendiente.
func (t *Table[T]) CancelDelete() {
	t.borrado.phase = deleteIdle
	t.borrado.pending = nil
}

// ConfirmDelete ejecuta el borrado contra el store y vuelve a reposo. El
// store absorbe el error como mensaje; aquí no hay nada que propagar.
func (t *Table[T]) ConfirmDelete() {
	if t.borrado.phase != deleteConfirmando || t.borrado.pending == nil {
		return
	}
	t.borrado.phase = deleteEliminando
	t.store.Delete((*t.borrado.pending).Clave())
	t.borrado.phase = deleteIdle
	t.borrado.pending = nil
}

// PendingDelete expone el registro pendiente de confirmación, si lo hay.
func (t *Table[T]) PendingDelete() (T, bool) {
	if t.borrado.pending == nil {
		var zero T
		return zero, false
	}
	return *t.borrado.pending, true
}

func (t *Table[T]) renderDeleteDialog(w io.Writer) {
	switch t.borrado.phase {
	case deleteConfirmando:
		fmt.Fprintf(w, "¿Eliminar el registro %s? [Confirmar] [Cancelar]\n", (*t.borrado.pending).Clave())
	case deleteEliminando:
		fmt.Fprintln(w, "Eliminando...")
	}
}
