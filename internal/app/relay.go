package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/weflow-hq/gewe-go/internal/callback"
	"github.com/weflow-hq/gewe-go/internal/config"
	"github.com/weflow-hq/gewe-go/internal/logger"
	"github.com/weflow-hq/gewe-go/internal/storage"
	"github.com/weflow-hq/gewe-go/pkg/publishers"
)

const shutdownGrace = 5 * time.Second

// Relay wires together the callback server, dedup store, and publishers
// and runs until cancelled.
type Relay struct {
	cfg    *config.Config
	store  storage.Store
	fanout *publishers.Fanout
	server *callback.Server
	log    logger.Logger
}

// NewRelay builds a relay runtime from config files.
func NewRelay(ctx context.Context, cfg *config.Config, log logger.Logger) (*Relay, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		MessageTTL:      cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("open dedup store: %w", err)
	}

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		store.Close()
		return nil, fmt.Errorf("no publishers configured")
	}

	pubRegistry := publishers.DefaultRegistry()
	pubClients, err := publishers.BuildAll(ctx, pubRegistry, enabledPublishers, log)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	log.InfoObj("publishers registry loaded", "publishers", enabledPublishers)

	server := callback.NewServer(cfg.CallbackPath, store, fanout, log)

	return &Relay{
		cfg:    cfg,
		store:  store,
		fanout: fanout,
		server: server,
		log:    log,
	}, nil
}

// Run serves callbacks until the context is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	if r == nil || r.server == nil {
		return fmt.Errorf("relay is not initialized")
	}

	r.log.InfoObj("relay starting", "relay_state", map[string]any{
		"listen_addr":      r.cfg.ListenAddr,
		"callback_path":    r.cfg.CallbackPath,
		"publishers_count": r.fanout.Size(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- r.server.Start(r.cfg.ListenAddr)
	}()

	select {
	case <-ctx.Done():
		r.log.InfoObj("relay shutting down", "reason", ctx.Err())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := r.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown callback server: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("callback server: %w", err)
		}
		return nil
	}
}

// Close releases the relay's resources.
func (r *Relay) Close() error {
	if r == nil || r.store == nil {
		return nil
	}
	return r.store.Close()
}
