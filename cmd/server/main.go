package main

import (
	"context"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/Nickolas-Loukas/the-secret-word/game"
	"github.com/Nickolas-Loukas/the-secret-word/migrations"
	"github.com/Nickolas-Loukas/the-secret-word/storage"
	"github.com/Nickolas-Loukas/the-secret-word/words"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	if len(allowedOrigins) == 0 {
		return r
	}

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Origin",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	godotenv.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	var allowedOrigins []string
	if origins, exists := os.LookupEnv("ALLOWED_ORIGINS"); exists {
		allowedOrigins = strings.Split(origins, ",")
	}

	language := words.LanguageGreek
	if lang, exists := os.LookupEnv("WORDS_LANGUAGE"); exists {
		language = lang
	}

	var store storage.Store
	if pgurl, exists := os.LookupEnv("POSTGRES_URL"); exists {
		if err := migrations.Migrate(pgurl); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
		pgRepo, err := storage.NewPostgresRepo(context.Background(), pgurl)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pgRepo.Close()
		store = pgRepo
		log.Info().Msg("using postgres store")
	} else {
		store = storage.NewMemoryStore()
		log.Info().Msg("no POSTGRES_URL set, using in-memory store")
	}

	registry := game.NewRegistry()
	service := game.NewService(store, registry, words.Dictionary{}, language)
	handler := game.NewGameHandler(store, service)

	r := CreateServer(allowedOrigins)
	handler.RegisterRoutes(r)

	port := "5000"
	if p, exists := os.LookupEnv("PORT"); exists {
		port = p
	}

	log.Info().Str("port", port).Str("language", language).Msg("server listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("couldn't start server")
	}
}
