package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"power-bidding/internal/api/handlers"
	"power-bidding/internal/api/middleware"
	"power-bidding/internal/config"
	"power-bidding/internal/forecast"
	"power-bidding/internal/pipeline"
	"power-bidding/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	production := os.Getenv("API_ENV") == "production"
	setupLogger(production)

	cfg := loadConfig()

	// Environment overrides the config file.
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.Server.StaticDir = dir
	}

	st := store.New()
	if len(cfg.Sources) > 0 {
		n, err := st.Load(cfg.Sources)
		if err != nil {
			log.Warn().Err(err).Msg("initial load failed, store is empty")
		} else {
			log.Info().Int("observations", n).Msg("historical data loaded")
		}
	} else {
		log.Warn().Msg("no sources configured, store starts empty")
	}

	noise := forecast.NewNoise()
	pl := pipeline.New(st, forecast.New(noise), noise, cfg.Forecast.WindowSize)
	h := handlers.New(st, pl, cfg)

	if production {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RateLimit(rate.Limit(50), 100))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/status", h.Status)
		api.GET("/historical", h.Historical)
		api.POST("/forecast", h.Forecast)
		api.POST("/optimize", h.Optimize)
	}

	serveStatic(router, cfg.Server.StaticDir)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func setupLogger(production bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if !production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
}

func loadConfig() *config.Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("no config file, using defaults")
			return config.Default()
		}
		log.Fatal().Err(err).Str("path", path).Msg("config load failed")
	}
	return cfg
}

// serveStatic serves the dashboard SPA if its build output exists.
func serveStatic(router *gin.Engine, staticDir string) {
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err != nil {
		log.Info().Str("dir", staticDir).Msg("static directory not found, skipping static file serving")
		return
	}
	router.Static("/assets", staticDir+"/assets")
	router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if len(path) >= 4 && path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "Not found"})
			return
		}
		c.File(staticDir + "/index.html")
	})
	log.Info().Str("dir", staticDir).Msg("serving static files")
}
