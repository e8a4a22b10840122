// Package store mantiene el estado observable de cada listado de la consola:
// registros cargados, indicador de carga, último error y paginación en
// memoria. Los errores de red nunca se propagan hacia arriba; se absorben
// como mensaje en español listo para mostrar.
package store

import (
	"sync"

	"github.com/jhoicas/Restaurante-api/internal/client"
)

// Servicio lo que el store necesita del SDK. client.Service lo implementa.
type Servicio[T client.Resource] interface {
	List() ([]T, error)
	ListActive() ([]T, error)
	Search(term string) ([]T, error)
	Delete(codigo string) error
}

// Tamaños de página por familia de recurso.
const (
	PageSizeCatalogo = 5
	PageSizeListado  = 10
)

// Snapshot estado inmutable para renderizar.
type Snapshot[T client.Resource] struct {
	Items      []T
	Visible    []T
	Loading    bool
	Err        string
	Page       int
	TotalPages int
}

// Store estado de un listado. Todas las operaciones son seguras para uso
// concurrente; un contador de generación descarta respuestas obsoletas
// cuando dos cargas se solapan.
type Store[T client.Resource] struct {
	mu  sync.Mutex
	svc Servicio[T]

	recurso  string // plural para mensajes ("distritos", "pedidos")
	singular string

	items      []T
	loading    bool
	err        string
	page       int
	pageSize   int
	generation uint64
}

// New construye el store. recurso y singular alimentan los mensajes de error
// ("Error al cargar los distritos", "Error al eliminar el distrito").
func New[T client.Resource](svc Servicio[T], recurso, singular string, pageSize int) *Store[T] {
	if pageSize <= 0 {
		pageSize = PageSizeListado
	}
	return &Store[T]{svc: svc, recurso: recurso, singular: singular, page: 1, pageSize: pageSize}
}

// FetchAll carga todos los registros, activos e inactivos.
func (s *Store[T]) FetchAll() {
	s.fetch(s.svc.List)
}

// FetchActive carga solo los registros activos.
func (s *Store[T]) FetchActive() {
	s.fetch(s.svc.ListActive)
}

// Search busca por término. El término vacío equivale a FetchActive, que es
// el estado canónico del listado sin filtro.
func (s *Store[T]) Search(term string) {
	if term == "" {
		s.FetchActive()
		return
	}
	s.fetch(func() ([]T, error) { return s.svc.Search(term) })
}

// fetch es el ciclo común de carga: marcar loading, llamar al servicio y
// aplicar el resultado solo si ninguna carga más reciente lo dejó obsoleto.
func (s *Store[T]) fetch(load func() ([]T, error)) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	items, err := load()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// Llegó después de una carga más nueva; se descarta.
		return
	}
	s.loading = false
	if err != nil {
		s.err = "Error al cargar los " + s.recurso
		return
	}
	s.items = items
	s.page = 1
}

// Delete elimina por código contra la API y, solo si tuvo éxito, quita el
// registro de la lista local. En fallo los registros quedan intactos y el
// error se guarda como mensaje.
func (s *Store[T]) Delete(codigo string) {
	if err := s.svc.Delete(codigo); err != nil {
		s.mu.Lock()
		s.err = "Error al eliminar el " + s.singular
		s.mu.Unlock()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Clave() != codigo {
			kept = append(kept, item)
		}
	}
	s.items = kept
	if max := s.totalPagesLocked(); s.page > max {
		s.page = max
	}
}

// SetPage cambia de página. Fuera de rango no hace nada.
func (s *Store[T]) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 || page > s.totalPagesLocked() {
		return
	}
	s.page = page
}

// TotalPages páginas según el tamaño local. Nunca menos de 1 para que el
// pie "Página X de Y" siempre tenga sentido.
func (s *Store[T]) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPagesLocked()
}

func (s *Store[T]) totalPagesLocked() int {
	pages := (len(s.items) + s.pageSize - 1) / s.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Visible devuelve la porción de la página actual.
func (s *Store[T]) Visible() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleLocked()
}

func (s *Store[T]) visibleLocked() []T {
	start := (s.page - 1) * s.pageSize
	if start >= len(s.items) {
		return nil
	}
	end := start + s.pageSize
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[start:end]
}

// Snapshot copia el estado actual para renderizar.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return Snapshot[T]{
		Items:      items,
		Visible:    s.visibleLocked(),
		Loading:    s.loading,
		Err:        s.err,
		Page:       s.page,
		TotalPages: s.totalPagesLocked(),
	}
}
