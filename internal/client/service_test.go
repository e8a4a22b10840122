package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/client"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// apiFake registra la última petición recibida y responde lo configurado.
type apiFake struct {
	t *testing.T

	lastPath   string
	lastQuery  map[string]string
	lastMethod string
	lastAuth   string

	status int
	body   any
}

func (f *apiFake) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.lastPath = r.URL.Path
		f.lastMethod = r.Method
		f.lastAuth = r.Header.Get("Authorization")
		f.lastQuery = map[string]string{}
		for k := range r.URL.Query() {
			f.lastQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		if f.body != nil {
			require.NoError(f.t, json.NewEncoder(w).Encode(f.body))
		}
	}
}

func newTestClient(t *testing.T, f *apiFake) (*client.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return client.New(srv.URL, 5*time.Second, logger.Nop()), srv
}

func envelope(v any) dto.DataResponse[any] {
	return dto.DataResponse[any]{Data: v}
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato genérico
// ──────────────────────────────────────────────────────────────────────────────

func TestService_List_DecodificaElEnvelope(t *testing.T) {
	f := &apiFake{t: t, status: http.StatusOK, body: envelope([]dto.ItemCatalogoResponse{
		{Codigo: "SJL", Nombre: "San Juan de Lurigancho", Activo: true},
	})}
	c, _ := newTestClient(t, f)

	items, err := client.NewDistritoService(c).List()
	require.NoError(t, err)

	assert.Equal(t, "/distritos", f.lastPath)
	require.Len(t, items, 1)
	assert.Equal(t, "SJL", items[0].Codigo)
}

func TestService_Get_NotFound(t *testing.T) {
	f := &apiFake{t: t, status: http.StatusNotFound,
		body: dto.ErrorResponse{Code: "NOT_FOUND", Message: "distrito no encontrado"}}
	c, _ := newTestClient(t, f)

	_, err := client.NewDistritoService(c).Get("NOEXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound, "404 debe mapearse al sentinel de dominio")
}

func TestService_ErrorNo2xx_ExponeElMessage(t *testing.T) {
	f := &apiFake{t: t, status: http.StatusConflict,
		body: dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya existe"}}
	c, _ := newTestClient(t, f)

	_, err := client.NewDistritoService(c).Create(dto.ItemCatalogoRequest{Codigo: "SJL", Nombre: "X"})
	require.Error(t, err)
	assert.Equal(t, "el código ya existe", err.Error(),
		"el message del cuerpo es lo que ve el usuario")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "DUPLICATE", apiErr.Code)
}

func TestService_Delete_EnviaElToken(t *testing.T) {
	f := &apiFake{t: t, status: http.StatusNoContent}
	c, _ := newTestClient(t, f)
	c.SetToken("tok-123")

	require.NoError(t, client.NewDistritoService(c).Delete("SJL"))

	assert.Equal(t, http.MethodDelete, f.lastMethod)
	assert.Equal(t, "/distritos/SJL", f.lastPath)
	assert.Equal(t, "Bearer tok-123", f.lastAuth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Nombres de parámetro de búsqueda por recurso
// ──────────────────────────────────────────────────────────────────────────────

func TestService_Search_ParametroPorRecurso(t *testing.T) {
	cases := []struct {
		nombre string
		buscar func(c *client.Client, term string) error
		path   string
		param  string
	}{
		{"distritos usan q", func(c *client.Client, term string) error {
			_, err := client.NewDistritoService(c).Search(term)
			return err
		}, "/distritos/search", "q"},
		{"empleados usan nombre", func(c *client.Client, term string) error {
			_, err := client.NewEmpleadoService(c).Search(term)
			return err
		}, "/empleados/search", "nombre"},
		{"clientes usan query", func(c *client.Client, term string) error {
			_, err := client.NewClienteService(c).Search(term)
			return err
		}, "/clientes/search", "query"},
		{"platos usan query", func(c *client.Client, term string) error {
			_, err := client.NewPlatoService(c).Search(term)
			return err
		}, "/platos/search", "query"},
		{"pedidos usan query", func(c *client.Client, term string) error {
			_, err := client.NewPedidoService(c).Search(term)
			return err
		}, "/pedidos/search", "query"},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			f := &apiFake{t: t, status: http.StatusOK, body: envelope([]any{})}
			c, _ := newTestClient(t, f)

			require.NoError(t, tc.buscar(c, "lomo"))
			assert.Equal(t, tc.path, f.lastPath)
			assert.Equal(t, "lomo", f.lastQuery[tc.param],
				"el término debe viajar en el parámetro histórico del recurso")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes: sin /active en el backend
// ──────────────────────────────────────────────────────────────────────────────

func TestClienteService_ListActive_FiltraEnMemoria(t *testing.T) {
	f := &apiFake{t: t, status: http.StatusOK, body: envelope([]dto.ClienteResponse{
		{Codigo: "CL1", Nombres: "Ana", Activo: true},
		{Codigo: "CL2", Nombres: "Luis", Activo: false},
		{Codigo: "CL3", Nombres: "Rosa", Activo: true},
	})}
	c, _ := newTestClient(t, f)

	activos, err := client.NewClienteService(c).ListActive()
	require.NoError(t, err)

	assert.Equal(t, "/clientes", f.lastPath,
		"clientes no tiene /active: se pide el listado completo")
	require.Len(t, activos, 2)
	assert.Equal(t, "CL1", activos[0].Codigo)
	assert.Equal(t, "CL3", activos[1].Codigo)
}

func TestDistritoService_ListActive_UsaElEndpoint(t *testing.T) {
	f := &apiFake{t: t, status: http.StatusOK, body: envelope([]dto.ItemCatalogoResponse{})}
	c, _ := newTestClient(t, f)

	_, err := client.NewDistritoService(c).ListActive()
	require.NoError(t, err)
	assert.Equal(t, "/distritos/active", f.lastPath)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_Login_FijaElToken(t *testing.T) {
	f := &apiFake{t: t, status: http.StatusOK,
		body: envelope(dto.LoginResponse{Token: "jwt-abc", Nombre: "Admin", Rol: "admin"})}
	c, _ := newTestClient(t, f)

	out, err := c.Login("admin@resto.pe", "secreta123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", out.Token)

	// La siguiente petición debe salir autenticada.
	f.status = http.StatusNoContent
	f.body = nil
	require.NoError(t, client.NewDistritoService(c).Delete("SJL"))
	assert.Equal(t, "Bearer jwt-abc", f.lastAuth)
}
