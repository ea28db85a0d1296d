package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"

	"github.com/minegocio/negocio-api/internal/application/auth"
	appsync "github.com/minegocio/negocio-api/internal/application/sync"
	"github.com/minegocio/negocio-api/internal/application/usecase"
	"github.com/minegocio/negocio-api/internal/domain/repository"
	"github.com/minegocio/negocio-api/internal/infrastructure/jsonfile"
	"github.com/minegocio/negocio-api/internal/infrastructure/memory"
	infrapdf "github.com/minegocio/negocio-api/internal/infrastructure/pdf"
	"github.com/minegocio/negocio-api/internal/infrastructure/sheets"
	httpRouter "github.com/minegocio/negocio-api/internal/interfaces/http"
	"github.com/minegocio/negocio-api/pkg/config"
	"github.com/minegocio/negocio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("users_backend", cfg.Users.Backend).
		Msg("iniciando aplicación")

	clienteRepo := memory.NewClienteRepository()
	vendedorRepo := memory.NewVendedorRepository()
	productoRepo := memory.NewProductoRepository()
	pedidoRepo := memory.NewPedidoRepository()

	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, clienteRepo, vendedorRepo, productoRepo)
	pedidoPDFUC := usecase.NewPedidoPDFUseCase(pedidoRepo, infrapdf.NewMarotoPedidoGenerator())

	// Directorio de usuarios: archivo JSON local o caché de la hoja remota,
	// según USERS_BACKEND. Nunca ambos.
	var (
		directory repository.UserDirectory
		usuarioUC *usecase.UsuarioUseCase
		syncUC    *appsync.UserSyncUseCase
	)
	switch cfg.Users.Backend {
	case config.UsersBackendSheets:
		client := sheets.NewClient(
			cfg.Sheets.URL,
			time.Duration(cfg.Sheets.TimeoutSeconds)*time.Second,
			log,
		)
		syncUC = appsync.NewUserSyncUseCase(
			client,
			time.Duration(cfg.Sheets.RefetchDelayMS)*time.Millisecond,
			log,
		)
		// La carga inicial puede fallar sin tumbar el proceso: el directorio
		// queda "no disponible" hasta un refresh exitoso.
		if err := syncUC.Refresh(context.Background()); err != nil {
			log.Warn().Err(err).Msg("carga inicial de usuarios remotos falló")
		}
		directory = syncUC
	default:
		store := jsonfile.NewUsuarioStore(cfg.Users.FilePath)
		usuarioUC = usecase.NewUsuarioUseCase(store)
		directory = store
	}

	authUC := auth.NewAuthUseCase(directory)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Negocio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:  usecase.NewClienteUseCase(clienteRepo),
		VendedorUC: usecase.NewVendedorUseCase(vendedorRepo),
		ProductoUC: usecase.NewProductoUseCase(productoRepo),
		PedidoUC:   pedidoUC,
		PedidoPDF:  pedidoPDFUC,
		UsuarioUC:  usuarioUC,
		SyncUC:     syncUC,
		AuthUC:     authUC,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
