package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de catálogo
// ──────────────────────────────────────────────────────────────────────────────

type catalogoRepoFake struct {
	items map[string]*entity.ItemCatalogo
}

func newCatalogoRepoFake(items ...*entity.ItemCatalogo) *catalogoRepoFake {
	r := &catalogoRepoFake{items: map[string]*entity.ItemCatalogo{}}
	for _, it := range items {
		r.items[it.Codigo] = it
	}
	return r
}

func (r *catalogoRepoFake) Create(item *entity.ItemCatalogo) error {
	if _, ok := r.items[item.Codigo]; ok {
		return domain.ErrDuplicate
	}
	r.items[item.Codigo] = item
	return nil
}

func (r *catalogoRepoFake) GetByCodigo(codigo string) (*entity.ItemCatalogo, error) {
	return r.items[codigo], nil
}

func (r *catalogoRepoFake) List(limit, offset int) ([]*entity.ItemCatalogo, error) {
	out := make([]*entity.ItemCatalogo, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *catalogoRepoFake) ListActivos() ([]*entity.ItemCatalogo, error) {
	var out []*entity.ItemCatalogo
	for _, it := range r.items {
		if it.Activo {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *catalogoRepoFake) Update(item *entity.ItemCatalogo) error {
	if _, ok := r.items[item.Codigo]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.Codigo] = item
	return nil
}

func (r *catalogoRepoFake) Delete(codigo string) error {
	if _, ok := r.items[codigo]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, codigo)
	return nil
}

func (r *catalogoRepoFake) Search(term string) ([]*entity.ItemCatalogo, error) {
	var out []*entity.ItemCatalogo
	for _, it := range r.items {
		if strings.Contains(strings.ToLower(it.Nombre), strings.ToLower(term)) {
			out = append(out, it)
		}
	}
	return out, nil
}

func appDistritos(repo *catalogoRepoFake) *fiber.App {
	app := fiber.New()
	h := apphttp.NewCatalogoHandler(usecase.NewCatalogoUseCase(repo), "distrito")
	g := app.Group("/api/distritos")
	g.Get("/", h.List)
	g.Get("/active", h.ListActivos)
	g.Get("/search", h.Search)
	g.Get("/:codigo", h.GetByCodigo)
	g.Post("/", h.Create)
	g.Put("/:codigo", h.Update)
	g.Delete("/:codigo", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireRole("admin"), h.Delete)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogoHandler_List_EnvuelveEnData(t *testing.T) {
	repo := newCatalogoRepoFake(&entity.ItemCatalogo{Codigo: "SJL", Nombre: "San Juan de Lurigancho", Activo: true})
	app := appDistritos(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/distritos/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body, "data", "toda respuesta exitosa viaja envuelta en data")
	assert.Contains(t, string(body["data"]), "SJL")
}

func TestCatalogoHandler_Get_NoEncontrado(t *testing.T) {
	app := appDistritos(newCatalogoRepoFake())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/distritos/NOEXISTE", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "distrito no encontrado", body["message"])
}

func TestCatalogoHandler_Create_SinNombre_Retorna400(t *testing.T) {
	app := appDistritos(newCatalogoRepoFake())

	req := httptest.NewRequest(http.MethodPost, "/api/distritos/", strings.NewReader(`{"codigo":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalogoHandler_Create_Duplicado_Retorna409(t *testing.T) {
	repo := newCatalogoRepoFake(&entity.ItemCatalogo{Codigo: "SJL", Nombre: "San Juan", Activo: true})
	app := appDistritos(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/distritos/",
		strings.NewReader(`{"codigo":"SJL","nombre":"San Juan","estado":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// La búsqueda con término vacío devuelve los activos, no una lista vacía.
func TestCatalogoHandler_Search_TerminoVacioDevuelveActivos(t *testing.T) {
	repo := newCatalogoRepoFake(
		&entity.ItemCatalogo{Codigo: "SJL", Nombre: "San Juan", Activo: true},
		&entity.ItemCatalogo{Codigo: "MIR", Nombre: "Miraflores", Activo: false},
	)
	app := appDistritos(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/distritos/search?q=", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, string(body["data"]), "SJL")
	assert.NotContains(t, string(body["data"]), "MIR", "los inactivos no entran en el estado canónico")
}

// DELETE sin token → 401; con token de mozo → 403; con admin → 204.
func TestCatalogoHandler_Delete_ExigeRolAdmin(t *testing.T) {
	repo := newCatalogoRepoFake(&entity.ItemCatalogo{Codigo: "SJL", Nombre: "San Juan", Activo: true})
	app := appDistritos(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/distritos/SJL", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "sin token no hay borrado")

	req := httptest.NewRequest(http.MethodDelete, "/api/distritos/SJL", nil)
	req.Header.Set("Authorization", tokenForRol(t, "mozo"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "mozo no borra catálogos")

	req = httptest.NewRequest(http.MethodDelete, "/api/distritos/SJL", nil)
	req.Header.Set("Authorization", tokenForRol(t, "admin"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// Borrar dos veces el mismo código: la segunda debe fallar con 404.
func TestCatalogoHandler_Delete_RepetidoRetorna404(t *testing.T) {
	repo := newCatalogoRepoFake(&entity.ItemCatalogo{Codigo: "SJL", Nombre: "San Juan", Activo: true})
	app := appDistritos(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/distritos/SJL", nil)
	req.Header.Set("Authorization", tokenForRol(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/api/distritos/SJL", nil)
	req.Header.Set("Authorization", tokenForRol(t, "admin"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"la ausencia de error es la única señal de éxito")
}
