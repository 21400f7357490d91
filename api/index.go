package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/server"
	"storefront/utils"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		logger, err := utils.NewLogger(cfg.AppEnv)
		if err != nil {
			initErr = err
			return
		}
		router, _, initErr = server.New(cfg, logger)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, initErr.Error(), http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
