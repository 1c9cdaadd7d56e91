package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
	"whisperwall/clock"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/domain/event"
	"whisperwall/errors"
	"whisperwall/moderation"

	"github.com/google/uuid"
)

var _ contract.IWhisperService = (*WhisperService)(nil)

type WhisperConfig struct {
	ReplyProbability float64
	ReplyMinDelay    time.Duration
	ReplyMaxDelay    time.Duration
	WhisperTTL       time.Duration
}

// WhisperService is the create-whisper use case: persist, fan out, and maybe
// schedule a generated reply. It is also where generated replies come back in.
type WhisperService struct {
	log           *slog.Logger
	clock         clock.Clock
	zones         domain.Zones
	cfg           WhisperConfig
	whispers      contract.IWhisperStore
	jobs          contract.IJobStore
	broadcaster   contract.IBroadcaster
	censor        contract.ICensor
	audit         contract.IAuditLog
	rng           contract.Random
	index         contract.IWhisperIndex
	telemetryChan chan<- event.Event
}

func NewWhisperService(log *slog.Logger, clk clock.Clock, zones domain.Zones, cfg WhisperConfig,
	whispers contract.IWhisperStore, jobs contract.IJobStore, broadcaster contract.IBroadcaster,
	censor contract.ICensor, audit contract.IAuditLog, rng contract.Random,
	telemetryChan chan<- event.Event) *WhisperService {
	if cfg.ReplyMaxDelay < cfg.ReplyMinDelay {
		cfg.ReplyMaxDelay = cfg.ReplyMinDelay
	}
	if rng == nil {
		rng = SystemRandom{}
	}
	return &WhisperService{
		log:           log,
		clock:         clk,
		zones:         zones,
		cfg:           cfg,
		whispers:      whispers,
		jobs:          jobs,
		broadcaster:   broadcaster,
		censor:        censor,
		audit:         audit,
		rng:           rng,
		telemetryChan: telemetryChan,
	}
}

// WithIndex makes stored whispers searchable.
func (s *WhisperService) WithIndex(index contract.IWhisperIndex) *WhisperService {
	s.index = index
	return s
}

// Create stores the whisper and broadcasts it. With probability ReplyProbability
// a reply job is enqueued, due between ReplyMinDelay and ReplyMaxDelay from now.
// A failed enqueue does not undo the whisper, the returned job is then nil.
func (s *WhisperService) Create(ctx context.Context, cmd domain.CreateWhisper) (domain.Whisper, *domain.Job, error) {
	if err := domain.ValidateCreateWhisper(cmd); err != nil {
		return domain.Whisper{}, nil, err
	}
	if !s.zones.Allowed(cmd.Zone) {
		return domain.Whisper{}, nil, fmt.Errorf("%w: %q", errors.ErrUnknownZone, cmd.Zone)
	}

	now := s.clock.Now()
	content, words := s.censor.Censor(cmd.Content)
	whisper := domain.Whisper{
		ID:        uuid.NewString(),
		Content:   content,
		Zone:      cmd.Zone,
		Emotion:   cmd.Emotion,
		Status:    domain.WhisperPosted,
		Language:  moderation.DetectLanguage(cmd.Content),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.WhisperTTL),
	}
	if err := s.whispers.Create(ctx, whisper); err != nil {
		return domain.Whisper{}, nil, err
	}
	s.reportCensored(whisper.ID, words)
	s.indexWhisper(whisper)
	s.log.Info("Whisper created", "whisper_id", whisper.ID, "zone", whisper.Zone, "language", whisper.Language)
	s.broadcast(ctx, whisper)

	if s.rng.Float64() >= s.cfg.ReplyProbability {
		return whisper, nil, nil
	}
	job, err := s.jobs.Enqueue(ctx, whisper.ID, whisper.Zone, whisper.Emotion, s.replyDelay().Milliseconds())
	if err != nil {
		s.log.Error("Unable to schedule reply", "whisper_id", whisper.ID, "error", err)
		return whisper, nil, nil
	}
	whisper.Status = domain.WhisperQueued
	s.audit.Record(domain.AuditEntry{
		JobID:    job.ID,
		TargetID: job.TargetID,
		Action:   domain.AuditEnqueued,
		Status:   job.Status,
		At:       now,
	})
	s.log.Debug("Reply scheduled", "whisper_id", whisper.ID, "job_id", job.ID, "run_at", job.RunAt)
	return whisper, &job, nil
}

// PublishReply stores the generated content as a reply to the job target and broadcasts it.
func (s *WhisperService) PublishReply(ctx context.Context, job domain.Job, content string) (domain.Whisper, error) {
	now := s.clock.Now()
	censored, words := s.censor.Censor(content)
	parentID := job.TargetID
	reply := domain.Whisper{
		ID:        uuid.NewString(),
		Content:   censored,
		Zone:      job.Zone,
		Emotion:   job.Emotion,
		Status:    domain.WhisperPosted,
		ParentID:  &parentID,
		IsReply:   true,
		Language:  moderation.DetectLanguage(content),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.WhisperTTL),
	}
	if err := s.whispers.Create(ctx, reply); err != nil {
		return domain.Whisper{}, err
	}
	s.reportCensored(reply.ID, words)
	s.indexWhisper(reply)
	s.broadcast(ctx, reply)
	return reply, nil
}

func (s *WhisperService) Get(ctx context.Context, id string) (domain.Whisper, error) {
	return s.whispers.Get(ctx, id)
}

// Search resolves index hits against the store. Hits whose whisper expired
// meanwhile are skipped and removed from the index.
func (s *WhisperService) Search(ctx context.Context, q domain.SearchQuery) ([]domain.Whisper, error) {
	if s.index == nil {
		return nil, errors.ErrSearchUnavailable
	}
	ids, err := s.index.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	res := make([]domain.Whisper, 0, len(ids))
	var stale []string
	for _, id := range ids {
		w, err := s.whispers.Get(ctx, id)
		if stderrors.Is(err, errors.ErrWhisperNotFound) {
			stale = append(stale, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		if !w.ExpiresAt.IsZero() && !w.ExpiresAt.After(now) {
			stale = append(stale, id)
			continue
		}
		res = append(res, w)
	}
	if len(stale) > 0 {
		if err := s.index.Delete(stale...); err != nil {
			s.log.Warn("Unable to prune search index", "count", len(stale), "error", err)
		}
	}
	return res, nil
}

func (s *WhisperService) indexWhisper(w domain.Whisper) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(w); err != nil {
		s.log.Warn("Whisper not searchable", "whisper_id", w.ID, "error", err)
	}
}

// replyDelay draws uniformly in [ReplyMinDelay, ReplyMaxDelay] at millisecond precision.
func (s *WhisperService) replyDelay() time.Duration {
	minMs := s.cfg.ReplyMinDelay.Milliseconds()
	spread := s.cfg.ReplyMaxDelay.Milliseconds() - minMs
	return time.Duration(minMs+s.rng.Int63n(spread+1)) * time.Millisecond
}

// broadcast sends the whisper to every session, then to the sessions of its zone.
func (s *WhisperService) broadcast(ctx context.Context, w domain.Whisper) {
	payload := event.ToWhisperPayload(w)
	if err := s.broadcaster.BroadcastGlobal(ctx, event.NewContent{WhisperPayload: payload}); err != nil {
		s.log.Warn("Unable to broadcast whisper", "whisper_id", w.ID, "error", err)
	}
	if err := s.broadcaster.BroadcastZone(ctx, w.Zone, event.ZoneContent{WhisperPayload: payload}); err != nil {
		s.log.Warn("Unable to broadcast whisper to zone", "whisper_id", w.ID, "zone", w.Zone, "error", err)
	}
}

func (s *WhisperService) reportCensored(id string, words []string) {
	if len(words) == 0 || s.telemetryChan == nil {
		return
	}
	select {
	case s.telemetryChan <- event.New(event.CensorshipHitType, event.Censored{WhisperID: id, Words: words}):
	default:
		s.log.Debug("Observability telemetry event lost")
	}
}

// SystemRandom draws from the shared math/rand source, safe for concurrent use.
type SystemRandom struct{}

func (SystemRandom) Float64() float64 { return rand.Float64() }
func (SystemRandom) Int63n(n int64) int64 { return rand.Int63n(n) }
