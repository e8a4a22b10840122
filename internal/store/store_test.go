package store_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeServicio servicio en memoria que registra qué método se llamó.
type fakeServicio struct {
	items     []dto.ItemCatalogoResponse
	activos   []dto.ItemCatalogoResponse
	listErr   error
	deleteErr error
	llamadas  []string
}

func (s *fakeServicio) List() ([]dto.ItemCatalogoResponse, error) {
	s.llamadas = append(s.llamadas, "List")
	return s.items, s.listErr
}

func (s *fakeServicio) ListActive() ([]dto.ItemCatalogoResponse, error) {
	s.llamadas = append(s.llamadas, "ListActive")
	return s.activos, s.listErr
}

func (s *fakeServicio) Search(term string) ([]dto.ItemCatalogoResponse, error) {
	s.llamadas = append(s.llamadas, "Search:"+term)
	var out []dto.ItemCatalogoResponse
	for _, it := range s.items {
		if it.Nombre == term {
			out = append(out, it)
		}
	}
	return out, s.listErr
}

func (s *fakeServicio) Delete(codigo string) error {
	s.llamadas = append(s.llamadas, "Delete:"+codigo)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i, it := range s.items {
		if it.Codigo == codigo {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func itemsDePrueba(n int) []dto.ItemCatalogoResponse {
	out := make([]dto.ItemCatalogoResponse, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, dto.ItemCatalogoResponse{
			Codigo: fmt.Sprintf("C%02d", i),
			Nombre: fmt.Sprintf("Ítem %d", i),
			Activo: true,
		})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

// 12 registros con páginas de 5: 3 páginas y la última con 2 registros.
func TestStore_Paginacion_DocePorCinco(t *testing.T) {
	svc := &fakeServicio{items: itemsDePrueba(12)}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)

	st.FetchAll()

	assert.Equal(t, 3, st.TotalPages(), "12 registros entre 5 son 3 páginas")
	assert.Len(t, st.Visible(), 5, "la primera página va llena")

	st.SetPage(3)
	visible := st.Visible()
	require.Len(t, visible, 2, "la última página lleva los 2 restantes")
	assert.Equal(t, "C11", visible[0].Codigo)
	assert.Equal(t, "C12", visible[1].Codigo)
}

func TestStore_SetPage_FueraDeRangoNoCambia(t *testing.T) {
	svc := &fakeServicio{items: itemsDePrueba(12)}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)
	st.FetchAll()
	st.SetPage(2)

	st.SetPage(0)
	assert.Equal(t, 2, st.Snapshot().Page, "página 0 se rechaza")

	st.SetPage(4)
	assert.Equal(t, 2, st.Snapshot().Page, "página más allá del total se rechaza")
}

func TestStore_FetchReiniciaAPrimeraPagina(t *testing.T) {
	svc := &fakeServicio{items: itemsDePrueba(12)}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)
	st.FetchAll()
	st.SetPage(3)

	st.FetchAll()
	assert.Equal(t, 1, st.Snapshot().Page, "una nueva carga vuelve a la página 1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// El store no vuelve a filtrar lo que el servidor ya filtró: si /active trae
// un registro inactivo, se muestra tal cual.
func TestStore_FetchActive_SinFiltradoExtra(t *testing.T) {
	svc := &fakeServicio{activos: []dto.ItemCatalogoResponse{
		{Codigo: "SJL", Nombre: "San Juan de Lurigancho", Activo: true},
		{Codigo: "MIR", Nombre: "Miraflores", Activo: false},
	}}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)

	st.FetchActive()

	snap := st.Snapshot()
	require.Len(t, snap.Items, 2, "lo que devuelve el servidor se guarda sin tocar")
	assert.Equal(t, "MIR", snap.Items[1].Codigo)
}

func TestStore_BusquedaVacia_EquivaleAFetchActive(t *testing.T) {
	svc := &fakeServicio{activos: itemsDePrueba(3)}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)

	st.Search("")

	require.Equal(t, []string{"ListActive"}, svc.llamadas,
		"término vacío no debe llegar al endpoint de búsqueda")
	assert.Len(t, st.Snapshot().Items, 3)
}

func TestStore_BusquedaConTermino_LlamaSearch(t *testing.T) {
	svc := &fakeServicio{items: itemsDePrueba(3)}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)

	st.Search("Ítem 2")

	require.Equal(t, []string{"Search:Ítem 2"}, svc.llamadas)
	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "C02", snap.Items[0].Codigo)
}

func TestStore_ErrorDeCarga_SeAbsorbeComoMensaje(t *testing.T) {
	svc := &fakeServicio{listErr: fmt.Errorf("connection refused")}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)

	st.FetchAll()

	snap := st.Snapshot()
	assert.Equal(t, "Error al cargar los distritos", snap.Err,
		"el error técnico se traduce a mensaje en español")
	assert.False(t, snap.Loading)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_Delete_QuitaElRegistroLocal(t *testing.T) {
	svc := &fakeServicio{items: itemsDePrueba(3)}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)
	st.FetchAll()

	st.Delete("C02")

	snap := st.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "C01", snap.Items[0].Codigo)
	assert.Equal(t, "C03", snap.Items[1].Codigo)
	assert.Empty(t, snap.Err)
}

// Repetir el borrado de un código ya eliminado produce error: la ausencia de
// error es la única señal de éxito, no hay borrado idempotente silencioso.
func TestStore_Delete_RepetidoProduceError(t *testing.T) {
	svc := &fakeServicio{items: itemsDePrueba(3)}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)
	st.FetchAll()

	st.Delete("C02")
	require.Empty(t, st.Snapshot().Err)

	st.Delete("C02")
	assert.Equal(t, "Error al eliminar el distrito", st.Snapshot().Err)
}

// En fallo del borrado los registros quedan intactos: nada de optimismo.
func TestStore_DeleteFallido_NoTocaLosRegistros(t *testing.T) {
	svc := &fakeServicio{items: itemsDePrueba(3), deleteErr: fmt.Errorf("500")}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)
	st.FetchAll()

	st.Delete("C02")

	snap := st.Snapshot()
	assert.Len(t, snap.Items, 3, "el fallo no debe quitar registros")
	assert.Equal(t, "Error al eliminar el distrito", snap.Err)
}

// Al borrar el único registro de la última página, la página actual se
// reajusta para no quedar fuera de rango.
func TestStore_Delete_ReajustaLaPagina(t *testing.T) {
	svc := &fakeServicio{items: itemsDePrueba(6)}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)
	st.FetchAll()
	st.SetPage(2)

	st.Delete("C06")

	snap := st.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.Len(t, snap.Items, 5)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cargas solapadas
// ──────────────────────────────────────────────────────────────────────────────

// gatedServicio bloquea List hasta que el test libera la respuesta, para
// simular dos cargas en vuelo a la vez.
type gatedServicio struct {
	calls chan chan []dto.ItemCatalogoResponse
}

func (s *gatedServicio) List() ([]dto.ItemCatalogoResponse, error) {
	ch := make(chan []dto.ItemCatalogoResponse)
	s.calls <- ch
	return <-ch, nil
}

func (s *gatedServicio) ListActive() ([]dto.ItemCatalogoResponse, error) { return s.List() }

func (s *gatedServicio) Search(string) ([]dto.ItemCatalogoResponse, error) { return s.List() }

func (s *gatedServicio) Delete(string) error { return nil }

// Dos cargas solapadas donde la más vieja resuelve al final: el resultado
// viejo se descarta y el store queda con la carga más reciente.
func TestStore_DescartaRespuestaObsoleta(t *testing.T) {
	svc := &gatedServicio{calls: make(chan chan []dto.ItemCatalogoResponse, 2)}
	st := store.New[dto.ItemCatalogoResponse](svc, "distritos", "distrito", 5)

	done1 := make(chan struct{})
	go func() { st.FetchAll(); close(done1) }()
	ch1 := <-svc.calls

	done2 := make(chan struct{})
	go func() { st.FetchAll(); close(done2) }()
	ch2 := <-svc.calls

	// La segunda carga (más nueva) llega primero.
	ch2 <- []dto.ItemCatalogoResponse{{Codigo: "NUEVO", Nombre: "Resultado vigente", Activo: true}}
	<-done2

	// La primera (vieja) llega después y debe descartarse.
	ch1 <- []dto.ItemCatalogoResponse{{Codigo: "VIEJO", Nombre: "Resultado obsoleto", Activo: true}}
	<-done1

	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "NUEVO", snap.Items[0].Codigo,
		"la respuesta de la carga vieja no debe pisar a la nueva")
}
