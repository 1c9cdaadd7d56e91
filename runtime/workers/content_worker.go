package workers

import (
	"context"
	"log/slog"
	"whisperwall/contract"
	"whisperwall/domain"
)

// Ensure *ContentWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*ContentWorker)(nil)

// ContentWorker turns create-content commands accepted by the registry into whispers.
// Several units may drain the same channel.
type ContentWorker struct {
	commands <-chan domain.CreateWhisper
	service  contract.IWhisperService
	log      *slog.Logger
}

func NewContentWorker(
	commands <-chan domain.CreateWhisper,
	service contract.IWhisperService,
	log *slog.Logger) *ContentWorker {
	return &ContentWorker{
		commands: commands,
		service:  service,
		log:      log,
	}
}

func (w *ContentWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return nil
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			whisper, job, err := w.service.Create(ctx, cmd)
			if err != nil {
				w.log.Warn("Whisper rejected", "session_id", cmd.SessionID, "zone", cmd.Zone, "error", err)
				continue
			}
			if job != nil {
				w.log.Debug("Whisper created with a reply job", "whisper_id", whisper.ID, "job_id", job.ID)
			}
		}
	}
}
