package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/domain/event"

	"github.com/robfig/cron/v3"
)

var _ contract.Worker = (*ContentExpiry)(nil)

// ContentExpiry deletes whispers past their expiry on a cron schedule.
type ContentExpiry struct {
	log           *slog.Logger
	schedule      string
	whispers      contract.IWhisperStore
	telemetryChan chan<- event.Event
	parser        cron.Parser
}

func NewContentExpiry(log *slog.Logger, schedule string, whispers contract.IWhisperStore,
	telemetryChan chan<- event.Event) *ContentExpiry {
	return &ContentExpiry{
		log:           log,
		schedule:      schedule,
		whispers:      whispers,
		telemetryChan: telemetryChan,
		parser:        cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

// Run returns an error only for an invalid schedule, the supervisor retries it.
func (w *ContentExpiry) Run(ctx context.Context) error {
	c := cron.New(cron.WithParser(w.parser), cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(w.schedule, func() { w.Expire(ctx) }); err != nil {
		return fmt.Errorf("invalid expiry schedule %q: %w", w.schedule, err)
	}
	c.Start()
	w.log.Info("Content expiry scheduled", "schedule", w.schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	w.log.Debug("Context done, content expiry stopped")
	return nil
}

func (w *ContentExpiry) Expire(ctx context.Context) {
	deleted, err := w.whispers.DeleteExpired(ctx)
	if err != nil {
		w.log.Error("Unable to delete expired whispers", "error", err)
		return
	}
	w.log.Info("Expired whispers deleted", "count", deleted)
	select {
	case w.telemetryChan <- event.New(event.SweepType, event.Swept{Result: domain.SweepResult{WhispersRemoved: int(deleted)}}):
	default:
		w.log.Debug("Observability telemetry event lost")
	}
}
