package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/negocio-api/internal/application/auth"
	appsync "github.com/minegocio/negocio-api/internal/application/sync"
	"github.com/minegocio/negocio-api/internal/application/usecase"
	"github.com/minegocio/negocio-api/pkg/logger"
)

// RouterDeps dependencias para el router. UsuarioUC y SyncUC son excluyentes:
// se monta el grupo del backend configurado y el otro queda nil.
type RouterDeps struct {
	ClienteUC  *usecase.ClienteUseCase
	VendedorUC *usecase.VendedorUseCase
	ProductoUC *usecase.ProductoUseCase
	PedidoUC   *usecase.PedidoUseCase
	PedidoPDF  *usecase.PedidoPDFUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	SyncUC     *appsync.UserSyncUseCase
	AuthUC     *auth.AuthUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	api := app.Group("/api")

	// Auth (público, sin tokens: la sesión vive en el front)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Clientes
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Vendedores
	vendedores := api.Group("/vendedores")
	vendedorHandler := NewVendedorHandler(deps.VendedorUC)
	vendedores.Get("/", vendedorHandler.List)
	vendedores.Post("/", vendedorHandler.Create)
	vendedores.Get("/:id", vendedorHandler.GetByID)
	vendedores.Put("/:id", vendedorHandler.Update)
	vendedores.Delete("/:id", vendedorHandler.Delete)

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Pedidos
	pedidos := api.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.PedidoPDF)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Get("/:id/pdf", pedidoHandler.PDF)
	pedidos.Put("/:id", pedidoHandler.Update)
	pedidos.Delete("/:id", pedidoHandler.Delete)

	// Usuarios sobre archivo JSON (backend "file")
	if deps.UsuarioUC != nil {
		usuarios := api.Group("/usuarios")
		usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
		usuarios.Get("/", usuarioHandler.List)
		usuarios.Post("/", usuarioHandler.Create)
		usuarios.Put("/:username", usuarioHandler.Update)
		usuarios.Delete("/:username", usuarioHandler.Delete)
	}

	// Caché del directorio remoto (backend "sheets")
	if deps.SyncUC != nil {
		syncGroup := api.Group("/sync/usuarios")
		syncHandler := NewSyncHandler(deps.SyncUC)
		syncGroup.Get("/", syncHandler.List)
		syncGroup.Post("/refresh", syncHandler.Refresh)
		syncGroup.Put("/:oldUsername", syncHandler.Update)
	}
}
