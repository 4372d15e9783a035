package worker

import (
	"context"
	"errors"
	"time"

	"github.com/freshmart-next/internal/config"
	"github.com/freshmart-next/internal/logger"
	"github.com/freshmart-next/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	cartPruneInterval = time.Hour
)

// Service is the async queue service.
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService creates the queue service.
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the asynq server and the periodic cart prune loop.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.CartService != nil {
		go s.runCartPruneLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop shuts the asynq server down.
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runCartPruneLoop periodically drops cart lines whose product was removed
// from the catalog.
func (s *Service) runCartPruneLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.CartService == nil {
		return
	}
	runOnce := func() {
		if _, err := s.consumer.CartService.PruneOrphanLines(); err != nil {
			logger.Warnw("worker_cart_prune_failed", "error", err)
		}
	}
	runOnce()

	ticker := time.NewTicker(cartPruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
