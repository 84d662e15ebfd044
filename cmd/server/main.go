package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"server/cmd/migration/initialize"
	"server/cmd/migration/seed"
	"server/internal/app"
	"server/internal/handlers"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	log := logger.New("main")

	application, err := app.New()
	if err != nil {
		log.Er("failed to initialize application", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Er("failed to close application", err)
		}
	}()

	// Table creation failures are logged but not fatal so the process can
	// still come up and surface 500s instead of crash-looping.
	if err := initialize.InitializeTables(application.Database.SQL, log); err != nil {
		log.Er("failed to initialize tables", err)
	}

	if application.Config.DatabaseSeed {
		if err := seed.Seed(application.Database.SQL, log); err != nil {
			log.Er("failed to seed database", err)
		}
	}

	fiberApp := fiber.New(fiber.Config{
		AppName: "Handsome OALA API",
	})

	application.Middleware.Register(fiberApp)

	if err := handlers.Router(fiberApp, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down server")
		if err := fiberApp.Shutdown(); err != nil {
			log.Er("failed to shutdown server", err)
		}
	}()

	address := fmt.Sprintf("%s:%d", application.Config.ServerHost, application.Config.ServerPort)
	log.Info("Starting server", "address", address)
	if err := fiberApp.Listen(address); err != nil {
		log.Er("server stopped with error", err)
		os.Exit(1)
	}

	log.Info("Server stopped")
}
