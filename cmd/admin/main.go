// Consola de administración del back-office: lista, busca, pagina y elimina
// (con confirmación) los recursos del restaurante contra la API REST.
//
// Comandos:
//
//	secciones                 lista las secciones disponibles
//	abrir <seccion>           abre una sección (distritos, platos, ...)
//	todos                     carga todos los registros de la sección
//	buscar <término>          búsqueda con debounce; vacío = solo activos
//	pagina <n>                cambia de página
//	eliminar <codigo>         pide confirmación de borrado
//	confirmar / cancelar      resuelve el borrado pendiente
//	boleta <codigo>           descarga la boleta PDF de un pedido
//	exportar                  descarga el Excel de pedidos
//	salir
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/client"
	"github.com/jhoicas/Restaurante-api/internal/console"
	"github.com/jhoicas/Restaurante-api/internal/store"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// panel adaptador no genérico sobre un Table[T] para poder guardar todas las
// secciones en el mismo mapa.
type panel struct {
	titulo        string
	render        func()
	fetchAll      func()
	fetchActive   func()
	search        func(term string)
	setPage       func(page int)
	requestDelete func(codigo string) bool
	confirm       func()
	cancel        func()
}

func newPanel[T client.Resource](titulo, basePath string, svc store.Servicio[T], pageSize int, plural, singular string, cols []console.Column[T]) *panel {
	st := store.New(svc, plural, singular, pageSize)
	tbl := console.NewTable(titulo, basePath, st, cols)
	deb := store.NewDebouncer(store.DelayBusqueda)
	return &panel{
		titulo:      titulo,
		render:      func() { tbl.Render(os.Stdout) },
		fetchAll:    st.FetchAll,
		fetchActive: st.FetchActive,
		search: func(term string) {
			deb.Do(func() { st.Search(term) })
		},
		setPage: st.SetPage,
		requestDelete: func(codigo string) bool {
			for _, item := range st.Snapshot().Items {
				if item.Clave() == codigo {
					tbl.RequestDelete(item)
					return true
				}
			}
			return false
		},
		confirm: tbl.ConfirmDelete,
		cancel:  tbl.CancelDelete,
	}
}

func catalogoColumns() []console.Column[dto.ItemCatalogoResponse] {
	return []console.Column[dto.ItemCatalogoResponse]{
		{Key: "codigo", Label: "Código"},
		{Key: "nombre", Label: "Nombre"},
		{Key: "estado", Label: "Estado"},
		{Key: "activo", Label: "Activo", Render: func(r dto.ItemCatalogoResponse) string {
			return console.BadgeActivo(r.Activo)
		}},
	}
}

func buildPanels(c *client.Client) map[string]*panel {
	panels := map[string]*panel{
		"distritos": newPanel("Distritos", "distritos", client.NewDistritoService(c),
			store.PageSizeCatalogo, "distritos", "distrito", catalogoColumns()),
		"tipos-documento": newPanel("Tipos de documento", "tipos-documento", client.NewTipoDocumentoService(c),
			store.PageSizeCatalogo, "tipos de documento", "tipo de documento", catalogoColumns()),
		"roles": newPanel("Roles", "roles", client.NewRolService(c),
			store.PageSizeCatalogo, "roles", "rol", catalogoColumns()),
		"tipos-plato": newPanel("Tipos de plato", "tipos-plato", client.NewTipoPlatoService(c),
			store.PageSizeCatalogo, "tipos de plato", "tipo de plato", catalogoColumns()),
		"empleados": newPanel("Empleados", "empleados", client.NewEmpleadoService(c),
			store.PageSizeListado, "empleados", "empleado", []console.Column[dto.EmpleadoResponse]{
				{Key: "codigo", Label: "Código"},
				{Key: "nombre", Label: "Nombre", Render: dto.EmpleadoResponse.NombreCompleto},
				{Key: "rol", Label: "Rol"},
				{Key: "distrito", Label: "Distrito"},
				{Key: "salario", Label: "Salario", Render: func(r dto.EmpleadoResponse) string {
					return console.FormatMoney(r.Salario)
				}},
				{Key: "activo", Label: "Activo", Render: func(r dto.EmpleadoResponse) string {
					return console.BadgeActivo(r.Activo)
				}},
			}),
		"clientes": newPanel("Clientes", "clientes", client.NewClienteService(c),
			store.PageSizeListado, "clientes", "cliente", []console.Column[dto.ClienteResponse]{
				{Key: "codigo", Label: "Código"},
				{Key: "nombre", Label: "Nombre", Render: dto.ClienteResponse.NombreCompleto},
				{Key: "numero_documento", Label: "Documento"},
				{Key: "telefono", Label: "Teléfono"},
				{Key: "activo", Label: "Activo", Render: func(r dto.ClienteResponse) string {
					return console.BadgeActivo(r.Activo)
				}},
			}),
		"platos": newPanel("Platos", "platos", client.NewPlatoService(c),
			store.PageSizeListado, "platos", "plato", []console.Column[dto.PlatoResponse]{
				{Key: "codigo", Label: "Código"},
				{Key: "nombre", Label: "Nombre"},
				{Key: "tipo_plato", Label: "Tipo"},
				{Key: "precio", Label: "Precio", Render: func(r dto.PlatoResponse) string {
					return console.FormatMoney(r.Precio)
				}},
				{Key: "activo", Label: "Activo", Render: func(r dto.PlatoResponse) string {
					return console.BadgeActivo(r.Activo)
				}},
			}),
		"pedidos": newPanel("Pedidos", "pedidos", client.NewPedidoService(c),
			store.PageSizeListado, "pedidos", "pedido", []console.Column[dto.PedidoResponse]{
				{Key: "codigo", Label: "Código"},
				{Key: "etiqueta", Label: "Etiqueta"},
				{Key: "estado_pedido", Label: "Estado", Render: func(r dto.PedidoResponse) string {
					return console.BadgeEstadoPedido(r.Estado)
				}},
				{Key: "cliente", Label: "Cliente"},
				{Key: "total", Label: "Total", Render: func(r dto.PedidoResponse) string {
					return console.FormatMoney(r.Total)
				}},
			}),
	}
	return panels
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	c := client.New(cfg.Admin.APIBaseURL, cfg.Admin.Timeout, log)

	// Login opcional: sin credenciales la consola funciona en solo lectura
	// (los DELETE exigen token con rol admin).
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		if _, err := c.Login(email, os.Getenv("ADMIN_PASSWORD")); err != nil {
			fmt.Fprintln(os.Stderr, "login fallido:", err)
		}
	}

	panels := buildPanels(c)
	pedidos := client.NewPedidoService(c)

	var actual *panel
	fmt.Println("Consola de administración. Escriba 'secciones' para empezar.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "", "ayuda":
			fmt.Println("comandos: secciones, abrir, todos, buscar, pagina, eliminar, confirmar, cancelar, boleta, exportar, salir")
		case "secciones":
			console.RenderSidebar(os.Stdout, "")
		case "abrir":
			p, ok := panels[arg]
			if !ok {
				fmt.Println("sección desconocida:", arg)
				continue
			}
			actual = p
			console.RenderBreadcrumb(os.Stdout, p.titulo)
			p.fetchActive()
			p.render()
		case "salir":
			return
		case "boleta":
			pdf, err := pedidos.Boleta(arg)
			if err != nil {
				fmt.Println("boleta:", err)
				continue
			}
			nombre := "boleta-" + arg + ".pdf"
			if err := os.WriteFile(nombre, pdf, 0o644); err != nil {
				fmt.Println("guardar boleta:", err)
				continue
			}
			fmt.Println("guardada", nombre)
		case "exportar":
			xlsx, err := pedidos.Export()
			if err != nil {
				fmt.Println("exportar:", err)
				continue
			}
			if err := os.WriteFile("pedidos.xlsx", xlsx, 0o644); err != nil {
				fmt.Println("guardar excel:", err)
				continue
			}
			fmt.Println("guardado pedidos.xlsx")
		default:
			if actual == nil {
				fmt.Println("abra una sección primero ('abrir platos')")
				continue
			}
			switch cmd {
			case "todos":
				actual.fetchAll()
				actual.render()
			case "buscar":
				actual.search(arg)
			case "pagina":
				n, err := strconv.Atoi(arg)
				if err != nil {
					fmt.Println("página inválida:", arg)
					continue
				}
				actual.setPage(n)
				actual.render()
			case "eliminar":
				if !actual.requestDelete(arg) {
					fmt.Println("no hay un registro con código", arg)
					continue
				}
				actual.render()
			case "confirmar":
				actual.confirm()
				actual.render()
			case "cancelar":
				actual.cancel()
				actual.render()
			default:
				fmt.Println("comando desconocido:", cmd)
			}
		}
	}
}
