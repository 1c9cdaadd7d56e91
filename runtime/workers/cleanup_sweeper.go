package workers

import (
	"context"
	"log/slog"
	"time"
	"whisperwall/clock"
	"whisperwall/contract"
	"whisperwall/domain/event"
)

var _ contract.Worker = (*CleanupSweeper)(nil)

// CleanupSweeper periodically reclaims stale zone and emotion aggregates
// and samples the process memory.
type CleanupSweeper struct {
	log           *slog.Logger
	clock         clock.Clock
	interval      time.Duration
	registry      contract.IRegistry
	probe         contract.IMemoryProbe
	telemetryChan chan<- event.Event
}

func NewCleanupSweeper(log *slog.Logger, clk clock.Clock, interval time.Duration, registry contract.IRegistry,
	probe contract.IMemoryProbe, telemetryChan chan<- event.Event) *CleanupSweeper {
	return &CleanupSweeper{
		log:           log,
		clock:         clk,
		interval:      interval,
		registry:      registry,
		probe:         probe,
		telemetryChan: telemetryChan,
	}
}

func (w *CleanupSweeper) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping cleanup sweeper")
			return nil
		case <-ticker.C():
			if err := w.Sweep(ctx); err != nil {
				w.log.Error("Cleanup sweep failed", "error", err)
			}
		}
	}
}

func (w *CleanupSweeper) Sweep(ctx context.Context) error {
	res, err := w.registry.Sweep(ctx)
	if err != nil {
		return err
	}
	w.emit(event.New(event.SweepType, event.Swept{Result: res}))
	w.log.Info("Stale activity swept",
		"zones_removed", res.ZonesRemoved,
		"emotions_removed", res.EmotionsRemoved,
		"buckets_pruned", res.BucketsPruned)

	if w.probe == nil {
		return nil
	}
	snapshot, err := w.registry.Snapshot(ctx)
	if err != nil {
		return err
	}
	usage, err := w.probe.Sample()
	if err != nil {
		w.log.Warn("Unable to sample memory", "error", err)
		return nil
	}
	w.emit(event.New(event.MemorySampleType, event.MemorySample{
		RSS:       usage.RSS,
		HeapAlloc: usage.HeapAlloc,
		Sessions:  snapshot.Sessions,
	}))
	w.log.Info("Memory sampled",
		"rss_mb", usage.RSS/1024/1024,
		"heap_alloc_mb", usage.HeapAlloc/1024/1024,
		"sessions", snapshot.Sessions,
		"active_users", snapshot.TotalActive)
	return nil
}

func (w *CleanupSweeper) emit(evt event.Event) {
	select {
	case w.telemetryChan <- evt:
	default:
		w.log.Debug("Observability telemetry event lost")
	}
}
