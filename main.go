package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront/config"
	_ "storefront/docs"
	"storefront/server"
	"storefront/utils"
)

// @title Storefront Cart API
// @version 1.0
// @description Cart and checkout API
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	logger, err := utils.NewLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	router, cleanup, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize server", "error", err)
	}
	defer cleanup()

	port := ":" + cfg.Port
	logger.Info("server starting", "port", port, "env", cfg.AppEnv)
	logger.Info("swagger ui", "url", "http://localhost:"+cfg.Port+"/swagger/index.html")

	if err := router.Run(port); err != nil {
		logger.Fatal("failed to start server", "error", err)
	}
}
