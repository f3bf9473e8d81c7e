package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/solarmach/internal/catalog"
	"github.com/solarmach/internal/config"
	"github.com/solarmach/internal/db"
	"github.com/solarmach/internal/handler"
	"github.com/solarmach/internal/mailer"
	"github.com/solarmach/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	api := handler.NewAPI(db.DB, catalog.Default(), mailer.New(cfg.Mail))
	r := router.SetupRouter(api, cfg.SessionSecret, "")

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
