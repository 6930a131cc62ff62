package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"identity-server/internal/config"
	apphttp "identity-server/internal/http"
	"identity-server/internal/repository"
	"identity-server/internal/repository/memory"
	"identity-server/internal/repository/sqlite"
	"identity-server/internal/token"
	"identity-server/internal/usecase"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var users repository.UserRepository
	switch cfg.Database.Backend {
	case "memory":
		logger.Info("using in-memory user store")
		users = memory.NewUserRepository()
	case "sqlite":
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			logger.Fatalf("open database: %v", err)
		}
		defer db.Close()

		repo := sqlite.NewUserRepository(db)
		if err := repo.Init(ctx); err != nil {
			logger.Fatalf("init user repository: %v", err)
		}
		users = repo
	default:
		logger.Fatalf("unknown database backend %q", cfg.Database.Backend)
	}

	tokens := token.NewJWTManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		cfg.Auth.Issuer,
	)

	registerUser := usecase.NewRegisterUser(users)
	loginUser := usecase.NewLoginUser(users, tokens)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(registerUser, loginUser, users, tokens, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
