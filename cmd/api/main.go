package main

import (
	_ "product_estimator/docs"
	"product_estimator/internal/adapter/http/routes"
	"product_estimator/internal/infrastructure/config"
	"product_estimator/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Product Estimator API
// @version         1.0
// @description     Room-by-room product estimates with category-driven companion products.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}
