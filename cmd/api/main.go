package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"tingz-storefront/internal/config"
	"tingz-storefront/internal/db"
	"tingz-storefront/internal/httpserver"
	"tingz-storefront/internal/mailer"
	catalogrepo "tingz-storefront/internal/repository/catalog"
	cartsvc "tingz-storefront/internal/service/cart"
	catalogsvc "tingz-storefront/internal/service/catalog"
	ordersvc "tingz-storefront/internal/service/order"
	sessionsvc "tingz-storefront/internal/service/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var pool *pgxpool.Pool
	var repo catalogrepo.Repository
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		repo = catalogrepo.NewPostgres(pool, logger)
	case config.BackendFile:
		repo = catalogrepo.NewFile(cfg.ProductsFile, logger)
	case config.BackendMemory:
		repo = catalogrepo.NewMemory(nil)
	default:
		logger.Fatalf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	cartService := cartsvc.New()
	catalogService := catalogsvc.New(repo, cartService, logger)
	sessionService := sessionsvc.New(cfg.AdminEmail, logger)
	orderMailer := mailer.NewSMTP(mailer.Config{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		To:   cfg.OrderEmailTo,
	}, logger)
	orderService := ordersvc.New(orderMailer, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		CatalogSvc: catalogService,
		CartSvc:    cartService,
		SessionSvc: sessionService,
		OrderSvc:   orderService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (catalog backend: %s)", cfg.HTTPAddr, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
