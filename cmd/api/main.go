package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"takaful_quote/internal/adapter/http/routes"
	"takaful_quote/internal/infrastructure/config"
	"takaful_quote/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Takaful Quote API
// @version         1.0
// @description     Agent-facing Takaful quote flow (customer, details, quote) with draft persistence, eligibility exceptions and payment links.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.For("app", "main").Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(logger.Options{
		ServiceName: "takaful-quote",
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		logger.For("app", "main").Error().Err(err).Msg("failed to startup the application")
		stop()
		os.Exit(1)
	}
}
