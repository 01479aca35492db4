package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/EstiloSalon01/salon-agenda/internal/config"
	dbpkg "github.com/EstiloSalon01/salon-agenda/internal/db"
	"github.com/EstiloSalon01/salon-agenda/internal/metrics"
	"github.com/EstiloSalon01/salon-agenda/internal/middleware"
	"github.com/EstiloSalon01/salon-agenda/internal/routes"
)

func main() {

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(os.Stdout)

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
