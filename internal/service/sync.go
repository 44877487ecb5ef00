package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/gateway"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

type SchedulerConfig struct {
	Interval          time.Duration
	StartupDelay      time.Duration
	BootstrapLookback time.Duration
}

// Scheduler pulls movements from the gateway on a fixed interval, tracking
// a monotonic watermark. RunOnce is the whole pass; the timer is just a
// wrapper around it so tests and the manual trigger share the code path.
type Scheduler struct {
	repo     domain.Repository
	client   gateway.Client
	ingestor *Ingestor
	cfg      SchedulerConfig
	logger   *logger.Logger

	mu      sync.Mutex
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

func NewScheduler(repo domain.Repository, client gateway.Client, ingestor *Ingestor, cfg SchedulerConfig, log *logger.Logger) *Scheduler {
	return &Scheduler{
		repo:     repo,
		client:   client,
		ingestor: ingestor,
		cfg:      cfg,
		logger:   log,
	}
}

// RunOnce executes one watermark-to-now pull. Per-movement failures are
// logged and skipped. The watermark advances to the instant the pull started
// whenever listing was attempted, so a transient gateway error shifts the
// window forward instead of stalling it; only an unconfigured gateway leaves
// the cursor untouched.
func (s *Scheduler) RunOnce(ctx context.Context) domain.SyncResult {
	watermark, err := s.repo.GetSyncWatermark(ctx)
	if err != nil {
		s.logger.Error(ctx, "Failed to read sync watermark", "error", err)
		return domain.SyncResult{Error: err.Error()}
	}

	startedAt := time.Now()
	from := startedAt.Add(-s.cfg.BootstrapLookback)
	if watermark != nil {
		from = watermark.LastSyncAt
	}

	movements, err := s.client.ListMovements(ctx, from, startedAt)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayUnconfigured) {
			s.logger.Warn(ctx, "Sync skipped, gateway not configured")
			return domain.SyncResult{Error: err.Error()}
		}

		s.logger.Error(ctx, "Failed to list movements",
			"from", from,
			"to", startedAt,
			"error", err,
		)
		s.advanceWatermark(ctx, startedAt)
		return domain.SyncResult{Error: err.Error()}
	}

	result := domain.SyncResult{}
	for _, movement := range movements {
		if !movement.IsIncomingTransfer() {
			continue
		}
		result.Discovered++

		if _, err := s.ingestor.Ingest(ctx, movement); err != nil {
			s.logger.Error(ctx, "Failed to ingest movement",
				"movement_id", movement.ID,
				"error", err,
			)
			continue
		}
		result.Processed++
	}

	s.advanceWatermark(ctx, startedAt)

	s.logger.Info(ctx, "Sync pass completed",
		"from", from,
		"to", startedAt,
		"discovered", result.Discovered,
		"processed", result.Processed,
	)

	return result
}

func (s *Scheduler) advanceWatermark(ctx context.Context, to time.Time) {
	if err := s.repo.SaveSyncWatermark(ctx, to); err != nil {
		s.logger.Error(ctx, "Failed to advance sync watermark",
			"to", to,
			"error", err,
		)
	}
}

// Start launches the periodic loop after the startup grace delay. An
// in-flight pass always finishes; Stop only interrupts the waits between
// passes.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.running = true

	go s.loop()
}

func (s *Scheduler) loop() {
	defer close(s.doneCh)

	select {
	case <-time.After(s.cfg.StartupDelay):
	case <-s.stopCh:
		return
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	// Passes run on a detached context so a shutdown between watermark read
	// and save cannot leave the cursor half-advanced.
	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	close(s.stopCh)
	<-s.doneCh
	s.running = false

	s.logger.Info(context.Background(), "Sync scheduler stopped")
}
