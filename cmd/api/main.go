package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/evenlode/parley/backend/internal/config"
	"github.com/evenlode/parley/backend/internal/handler"
	"github.com/evenlode/parley/backend/internal/model/persona"
	"github.com/evenlode/parley/backend/internal/service/chat"
	"github.com/evenlode/parley/backend/internal/service/completion"
	"github.com/evenlode/parley/backend/internal/service/credential"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	personaStore := persona.NewMemoryStore(persona.Seed())

	credentialStore := credential.NewMemoryStore(cfg.Upstream.APIKey)
	if _, ok := credentialStore.Get(); ok {
		log.Println("upstream credential loaded from environment")
	} else {
		log.Println("no upstream credential configured, waiting for credential save")
	}

	completionClient := completion.NewHTTPClient(cfg.Upstream.BaseURL, cfg.Upstream.Model, cfg.Upstream.Timeout)
	chatService := chat.NewService(personaStore, credentialStore, completionClient)

	router := handler.NewRouter(personaStore, chatService, credentialStore)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Parley backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
