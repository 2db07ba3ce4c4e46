package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-fichas-ws/internal/config"
	"go-fichas-ws/internal/handler"
	"go-fichas-ws/internal/middleware"
	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"
	"go-fichas-ws/internal/service"
	"go-fichas-ws/internal/ws"
	"go-fichas-ws/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	// 1. Config (reads .env when present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("config", "err", err)
	}

	// 2. Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalw("database connect", "err", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Client{},
		&model.Chip{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderProduct{},
	); err != nil {
		log.Fatalw("migrate", "err", err)
	}

	// 3. WebSocket hub (push channel that tells the desktop UI to refetch)
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	clientRepo := repository.NewClientRepo(db)
	chipRepo := repository.NewChipRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	authService := service.NewAuthService(userRepo, cfg.TokenTTL)
	groupService := service.NewGroupService(groupRepo, wsHub)
	clientService := service.NewClientService(clientRepo, groupRepo, wsHub)
	chipService := service.NewChipService(chipRepo, clientRepo, wsHub)
	categoryService := service.NewCategoryService(categoryRepo, wsHub)
	productService := service.NewProductService(productRepo, categoryRepo, wsHub)
	orderService := service.NewOrderService(orderRepo, db, wsHub)
	dashService := service.NewDashboardService(orderRepo)

	authHandler := handler.NewAuthHandler(authService)
	groupHandler := handler.NewGroupHandler(groupService)
	clientHandler := handler.NewClientHandler(clientService)
	chipHandler := handler.NewChipHandler(chipService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	dashHandler := handler.NewDashboardHandler(dashService)
	exportHandler := handler.NewExportHandler(chipService, orderService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Fichas POS API v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	protected.Get("/dashboard/summary", dashHandler.Summary)

	protected.Get("/groups", groupHandler.List)
	protected.Post("/groups", groupHandler.Create)
	protected.Put("/groups/:id", groupHandler.Rename)
	protected.Delete("/groups/:id", groupHandler.Delete)

	protected.Get("/clients", clientHandler.List)
	protected.Get("/clients/:id", clientHandler.Find)
	protected.Post("/clients", clientHandler.Create)
	protected.Delete("/clients/:id", clientHandler.Delete)

	protected.Get("/chips", chipHandler.List)
	protected.Get("/chips/export", exportHandler.Chips)
	protected.Post("/chips", chipHandler.Create)
	protected.Delete("/chips/:id", chipHandler.Delete)

	protected.Get("/categories", categoryHandler.List)
	protected.Post("/categories", categoryHandler.Create)
	protected.Put("/categories/:id", categoryHandler.Rename)
	protected.Delete("/categories/:id", categoryHandler.Delete)

	protected.Get("/products", productHandler.List)
	protected.Post("/products", productHandler.Create)
	protected.Delete("/products/:id", productHandler.Delete)

	protected.Get("/orders", orderHandler.List)
	protected.Get("/orders/export", exportHandler.Orders)
	protected.Post("/orders", orderHandler.Create)
	protected.Post("/orders/check", orderHandler.Check)
	protected.Delete("/orders/:id", orderHandler.Delete)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(cfg.Address); err != nil {
			log.Fatalw("listen", "err", err)
		}
	}()
	log.Infow("server started", "address", cfg.Address)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatalw("forced shutdown", "err", err)
	}
	log.Info("server exited")
}
