package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vmxio.com/kana-quiz/internal/config"
	"vmxio.com/kana-quiz/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// 1) DB
	db, err := OpenDB(cfg.DB.Path)
	if err != nil {
		zl.Fatal("open db", zap.Error(err))
	}
	if err := AutoMigrate(db); err != nil {
		zl.Fatal("migrate", zap.Error(err))
	}

	// 2) Seed decks (if missing or stale)
	seeded, err := EnsureDecks(db)
	if err != nil {
		zl.Fatal("seed", zap.Error(err))
	}
	for _, m := range seeded {
		zl.Info("seeded deck", zap.String("mode", string(m)), zap.String("db", cfg.DB.Path))
	}
	decks, err := LoadDecks(db)
	if err != nil {
		zl.Fatal("load decks", zap.Error(err))
	}

	// 3) Generators; a deck that cannot fill a batch stops startup here
	svc, err := NewQuizService(db, decks, cfg.Quiz.BatchSize, zl)
	if err != nil {
		zl.Fatal("quiz", zap.Error(err))
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := NewRouter(cfg, svc, zl)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go RunSessionJanitor(ctx, svc, sessionTTL, zl)

	go func() {
		zl.Info("listening",
			zap.String("addr", srv.Addr),
			zap.Bool("secureCookies", cfg.Cookies.Secure),
			zap.Int("batchSize", cfg.Quiz.BatchSize),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("run", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}

// NewRouter wires middleware and the API routes.
func NewRouter(cfg *config.Config, svc *QuizService, zl *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(zl), RequestLogger(zl))

	// --- CORS: configured origins + any localhost:port ---
	allowed := cfg.CORS.AllowedOrigins
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if slices.Contains(allowed, origin) {
				return true
			}
			return strings.HasPrefix(origin, "http://localhost:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", sessionHeader},
		ExposeHeaders:    []string{sessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api/v1")
	{
		// Decks
		api.GET("/modes", ListModes(svc))
		api.GET("/decks/:mode", GetDeck(svc))

		// Current session
		sess := api.Group("/session", EnsureSession(svc, cfg.Cookies.Secure, zl))
		sess.GET("", GetSession(svc))
		sess.POST("/batch", NewBatch(svc))
		sess.PUT("/mode", SwitchMode(svc))
		sess.PUT("/answers", SelectAnswer(svc))
		sess.POST("/submit", Submit(svc))
	}

	return r
}
