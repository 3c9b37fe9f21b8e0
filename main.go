package main

import (
	"log"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"

	"project-user-api/config"
	"project-user-api/middleware"
	"project-user-api/routes"
	"project-user-api/tempstore"
	"project-user-api/utils"
)

func main() {
	logger := log.New(os.Stdout, "USER-API: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(config.AppConfig.Environment)

	if config.AppConfig.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.AppConfig.SentryDSN,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			logger.Printf("Sentry initialization failed: %v", err)
		}
	}

	// Initialize database connection
	if err := config.ConnectDB(); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Temp-auth accounts live in Redis when it is configured, otherwise in
	// process memory.
	var tempUsers tempstore.Store
	if config.AppConfig.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.Redis.Address,
			Password: config.AppConfig.Redis.Password,
			DB:       config.AppConfig.Redis.DB,
		})
		tempUsers = tempstore.NewRedisStore(client, config.AppConfig.TempUserTTL)
		logger.Println("Temp-auth store: redis")
	} else {
		tempUsers = tempstore.NewMemoryStore()
		logger.Println("Temp-auth store: memory")
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	app.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(app, config.DB, tempUsers)

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": "1.0.0",
		})
	})

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
