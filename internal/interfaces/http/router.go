package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/reportes"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DistritoUC      *usecase.CatalogoUseCase
	TipoDocumentoUC *usecase.CatalogoUseCase
	RolUC           *usecase.CatalogoUseCase
	TipoPlatoUC     *usecase.CatalogoUseCase
	ClienteUC       *usecase.ClienteUseCase
	EmpleadoUC      *usecase.EmpleadoUseCase
	PlatoUC         *usecase.PlatoUseCase
	PedidoUC        *usecase.PedidoUseCase
	DashboardUC     *usecase.DashboardUseCase
	BoletaUC        *reportes.BoletaUseCase
	ExportUC        *reportes.ExportUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Las lecturas son públicas; los DELETE
// exigen Bearer Token con rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	soloAdmin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RolAdmin)}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogos: mismas rutas, handler genérico instanciado por tabla.
	catalogos := []struct {
		path    string
		uc      *usecase.CatalogoUseCase
		recurso string
	}{
		{"/distritos", deps.DistritoUC, "distrito"},
		{"/tipos-documento", deps.TipoDocumentoUC, "tipo de documento"},
		{"/roles", deps.RolUC, "rol"},
		{"/tipos-plato", deps.TipoPlatoUC, "tipo de plato"},
	}
	for _, cat := range catalogos {
		g := api.Group(cat.path)
		h := NewCatalogoHandler(cat.uc, cat.recurso)
		g.Get("/", h.List)
		g.Get("/active", h.ListActivos)
		g.Get("/search", h.Search)
		g.Get("/:codigo", h.GetByCodigo)
		g.Post("/", h.Create)
		g.Put("/:codigo", h.Update)
		g.Delete("/:codigo", append(soloAdmin, h.Delete)...)
	}

	// Empleados (búsqueda por ?nombre=)
	empleados := api.Group("/empleados")
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Get("/", empleadoHandler.List)
	empleados.Get("/active", empleadoHandler.ListActivos)
	empleados.Get("/search", empleadoHandler.Search)
	empleados.Get("/:codigo", empleadoHandler.GetByCodigo)
	empleados.Post("/", empleadoHandler.Create)
	empleados.Put("/:codigo", empleadoHandler.Update)
	empleados.Delete("/:codigo", append(soloAdmin, empleadoHandler.Delete)...)

	// Clientes (sin /active; búsqueda por ?query=)
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/search", clienteHandler.Search)
	clientes.Get("/:codigo", clienteHandler.GetByCodigo)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:codigo", clienteHandler.Update)
	clientes.Delete("/:codigo", append(soloAdmin, clienteHandler.Delete)...)

	// Platos (búsqueda por ?query=)
	platos := api.Group("/platos")
	platoHandler := NewPlatoHandler(deps.PlatoUC)
	platos.Get("/", platoHandler.List)
	platos.Get("/active", platoHandler.ListActivos)
	platos.Get("/search", platoHandler.Search)
	platos.Get("/:codigo", platoHandler.GetByCodigo)
	platos.Post("/", platoHandler.Create)
	platos.Put("/:codigo", platoHandler.Update)
	platos.Delete("/:codigo", append(soloAdmin, platoHandler.Delete)...)

	// Pedidos (búsqueda por ?query=; boleta PDF y export Excel)
	pedidos := api.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.BoletaUC, deps.ExportUC)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/active", pedidoHandler.ListActivos)
	pedidos.Get("/search", pedidoHandler.Search)
	pedidos.Get("/export", pedidoHandler.Export)
	pedidos.Get("/:codigo", pedidoHandler.GetByCodigo)
	pedidos.Get("/:codigo/boleta", pedidoHandler.Boleta)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Put("/:codigo", pedidoHandler.Update)
	pedidos.Delete("/:codigo", append(soloAdmin, pedidoHandler.Delete)...)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Resumen)
}
