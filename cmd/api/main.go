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

	"github.com/zhouzirui/pokedex/backend/internal/config"
	"github.com/zhouzirui/pokedex/backend/internal/dataset"
	"github.com/zhouzirui/pokedex/backend/internal/handler"
	"github.com/zhouzirui/pokedex/backend/internal/metrics"
	"github.com/zhouzirui/pokedex/backend/internal/model/pokemon"
	"github.com/zhouzirui/pokedex/backend/internal/service/catalog"
	"github.com/zhouzirui/pokedex/backend/internal/service/events"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	records, err := loadRecords(cfg.Data)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}
	store := pokemon.NewMemoryStore(records)
	log.Printf("loaded %d pokemon", store.Len())

	hub := events.NewHub()
	catalogOpts := []catalog.Option{
		catalog.WithPublisher(hub),
		catalog.WithIconTemplate(cfg.Data.IconURLTemplate),
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		catalogOpts = append(catalogOpts, catalog.WithPublisher(m))
		log.Println("prometheus metrics enabled at /metrics")
	} else {
		log.Println("prometheus metrics disabled by configuration")
	}

	catalogSvc := catalog.NewService(store, catalogOpts...)

	router := handler.NewRouter(catalogSvc, hub, handler.Options{
		StaticDir:   cfg.Server.StaticDir,
		CORSOrigins: cfg.Server.CORSOrigins,
		Metrics:     m,
	})

	startServer(ctx, cfg.Server, router)
}

func loadRecords(cfg config.DataConfig) ([]pokemon.Pokemon, error) {
	if cfg.File == "" {
		log.Println("POKEDEX_DATA_FILE not set, using built-in seed")
		return pokemon.Seed(), nil
	}
	return dataset.LoadFile(cfg.File)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Pokedex backend listening on %s", addr)
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
