package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"
	"whisperwall/clock"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/domain/event"
	errs "whisperwall/errors"
	"whisperwall/ratelimit"
)

var _ contract.IRegistry = (*Registry)(nil)
var _ contract.Worker = (*Registry)(nil)

type RegistryConfig struct {
	IPLimit              int
	IPWindow             time.Duration
	ContentSpacing       time.Duration
	PulseSpacing         time.Duration
	IdleTimeout          time.Duration
	ReauthInterval       time.Duration
	ZoneStaleness        time.Duration
	EmotionStaleness     time.Duration
	HousekeepingInterval time.Duration
	SinkTimeout          time.Duration
	CommandBuffer        int
}

// TokenValidator resolves an authenticate token to a user id.
type TokenValidator func(token string) (string, error)

type session struct {
	id           domain.SessionID
	ip           string
	sink         contract.SessionSink
	connectedAt  time.Time
	zone         *domain.Zone
	emotion      *domain.Emotion
	lastActivity time.Time
	messageCount int
	userID       string
	nextReauth   time.Time
}

// Stats counts what happened at the real-time boundary. Drops are silent for
// clients, these counters are how they are observed.
type Stats struct {
	Accepted          int64
	RateLimitDrops    int64
	ValidationDrops   int64
	DeliveryDrops     int64
	BackpressureDrops int64
}

// Registry owns every live session, zone activity and emotion pulse.
// All state is mutated by the Run goroutine only: public methods send a
// closure on the command channel and wait for it to be applied.
type Registry struct {
	log            *slog.Logger
	clock          clock.Clock
	zones          domain.Zones
	cfg            RegistryConfig
	ipLimiter      *ratelimit.FixedWindow
	contentLimiter *ratelimit.Spacing
	pulseLimiter   *ratelimit.Spacing
	commands       chan func(ctx context.Context)
	content        chan<- domain.CreateWhisper
	telemetry      chan<- event.Event
	authenticate   TokenValidator

	accepted          atomic.Int64
	rateLimitDrops    atomic.Int64
	validationDrops   atomic.Int64
	deliveryDrops     atomic.Int64
	backpressureDrops atomic.Int64

	// Owned by Run
	sessions      map[domain.SessionID]*session
	zoneActivity  map[domain.Zone]*domain.ZoneActivity
	emotionPulses map[domain.Emotion]*domain.EmotionPulse
}

func NewRegistry(log *slog.Logger, clk clock.Clock, zones domain.Zones, cfg RegistryConfig,
	content chan<- domain.CreateWhisper, telemetry chan<- event.Event, authenticate TokenValidator) *Registry {
	if cfg.HousekeepingInterval <= 0 {
		cfg.HousekeepingInterval = 5 * time.Second
	}
	if cfg.SinkTimeout <= 0 {
		cfg.SinkTimeout = 200 * time.Millisecond
	}
	return &Registry{
		log:            log,
		clock:          clk,
		zones:          zones,
		cfg:            cfg,
		ipLimiter:      ratelimit.NewFixedWindow(cfg.IPLimit, cfg.IPWindow),
		contentLimiter: ratelimit.NewSpacing(cfg.ContentSpacing),
		pulseLimiter:   ratelimit.NewSpacing(cfg.PulseSpacing),
		commands:       make(chan func(ctx context.Context), cfg.CommandBuffer),
		content:        content,
		telemetry:      telemetry,
		authenticate:   authenticate,
		sessions:       make(map[domain.SessionID]*session),
		zoneActivity:   make(map[domain.Zone]*domain.ZoneActivity),
		emotionPulses:  make(map[domain.Emotion]*domain.EmotionPulse),
	}
}

// Run is the single owner loop. Idle timeouts and reauthentication prompts
// are checked on every housekeeping tick.
func (r *Registry) Run(ctx context.Context) error {
	ticker := r.clock.NewTicker(r.cfg.HousekeepingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			r.log.Debug("Context done, registry closed every session")
			return nil
		case cmd := <-r.commands:
			cmd(ctx)
		case <-ticker.C():
			r.housekeep(ctx)
		}
	}
}

// query runs fn on the owner loop. The result travels over its own buffered
// channel, a caller giving up early never reads memory the loop still writes.
func query[T any](ctx context.Context, r *Registry, fn func(ctx context.Context) T) (T, error) {
	out := make(chan T, 1)
	if err := r.call(ctx, func(loopCtx context.Context) { out <- fn(loopCtx) }); err != nil {
		var zero T
		return zero, err
	}
	return <-out, nil
}

// call hands fn to the owner loop and waits until it was applied.
func (r *Registry) call(ctx context.Context, fn func(ctx context.Context)) error {
	done := make(chan struct{})
	cmd := func(loopCtx context.Context) {
		defer close(done)
		fn(loopCtx)
	}
	select {
	case r.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Registry) Connect(ctx context.Context, id domain.SessionID, ip string, sink contract.SessionSink) error {
	return r.call(ctx, func(ctx context.Context) {
		now := r.clock.Now()
		if previous, ok := r.sessions[id]; ok {
			r.log.Warn("Session id reused, replacing connection", "session_id", id)
			r.removeSession(ctx, previous, now)
		}
		r.sessions[id] = &session{
			id:           id,
			ip:           ip,
			sink:         sink,
			connectedAt:  now,
			lastActivity: now,
			nextReauth:   now.Add(r.cfg.ReauthInterval),
		}
		r.log.Debug("Session connected", "session_id", id, "ip", ip)
	})
}

func (r *Registry) Disconnect(ctx context.Context, id domain.SessionID) error {
	return r.call(ctx, func(ctx context.Context) {
		if s, ok := r.sessions[id]; ok {
			r.removeSession(ctx, s, r.clock.Now())
		}
	})
}

// Handle applies one inbound event. A non-nil error means the event was
// dropped; the transport must not report it to the sender.
func (r *Registry) Handle(ctx context.Context, id domain.SessionID, in domain.InboundEvent) error {
	res, err := query(ctx, r, func(ctx context.Context) error {
		return r.handle(ctx, id, in)
	})
	if err != nil {
		return err
	}
	return res
}

func (r *Registry) BroadcastGlobal(ctx context.Context, e event.DomainEvent) error {
	return r.call(ctx, func(ctx context.Context) {
		for _, s := range r.sessions {
			r.deliver(ctx, s, e)
		}
	})
}

// BroadcastZone only reaches sessions currently joined to zone.
func (r *Registry) BroadcastZone(ctx context.Context, zone domain.Zone, e event.DomainEvent) error {
	return r.call(ctx, func(ctx context.Context) {
		for _, s := range r.sessions {
			if s.zone != nil && *s.zone == zone {
				r.deliver(ctx, s, e)
			}
		}
	})
}

func (r *Registry) Snapshot(ctx context.Context) (domain.RegistrySnapshot, error) {
	snapshot, err := query(ctx, r, func(ctx context.Context) domain.RegistrySnapshot {
		var snapshot domain.RegistrySnapshot
		snapshot.Sessions = len(r.sessions)
		snapshot.TotalActive = r.totalActive()
		for _, za := range r.zoneActivity {
			snapshot.Zones = append(snapshot.Zones, *za)
		}
		for _, ep := range r.emotionPulses {
			snapshot.Emotions = append(snapshot.Emotions, *ep)
		}
		return snapshot
	})
	sort.Slice(snapshot.Zones, func(i, j int) bool { return snapshot.Zones[i].Zone < snapshot.Zones[j].Zone })
	sort.Slice(snapshot.Emotions, func(i, j int) bool { return snapshot.Emotions[i].Emotion < snapshot.Emotions[j].Emotion })
	return snapshot, err
}

// Sweep reclaims stale aggregates: emotions without a pulse for EmotionStaleness
// and empty zones idle for ZoneStaleness. A zone with users is never removed.
func (r *Registry) Sweep(ctx context.Context) (domain.SweepResult, error) {
	return query(ctx, r, func(ctx context.Context) domain.SweepResult {
		var res domain.SweepResult
		now := r.clock.Now()
		for emotion, ep := range r.emotionPulses {
			if now.Sub(ep.LastPulse) > r.cfg.EmotionStaleness {
				delete(r.emotionPulses, emotion)
				res.EmotionsRemoved++
			}
		}
		for zone, za := range r.zoneActivity {
			if za.Users == 0 && now.Sub(za.LastActivity) > r.cfg.ZoneStaleness {
				delete(r.zoneActivity, zone)
				res.ZonesRemoved++
			}
		}
		res.BucketsPruned = r.ipLimiter.Prune(now) + r.contentLimiter.Prune(now) + r.pulseLimiter.Prune(now)
		return res
	})
}

// Housekeep runs the idle and reauthentication checks now.
func (r *Registry) Housekeep(ctx context.Context) error {
	return r.call(ctx, r.housekeep)
}

func (r *Registry) Stats() Stats {
	return Stats{
		Accepted:          r.accepted.Load(),
		RateLimitDrops:    r.rateLimitDrops.Load(),
		ValidationDrops:   r.validationDrops.Load(),
		DeliveryDrops:     r.deliveryDrops.Load(),
		BackpressureDrops: r.backpressureDrops.Load(),
	}
}

func (r *Registry) handle(ctx context.Context, id domain.SessionID, in domain.InboundEvent) error {
	s, ok := r.sessions[id]
	if !ok {
		return r.drop(event.DropValidation, in.Name, id, errs.ErrSessionClosed)
	}
	now := r.clock.Now()
	if !r.ipLimiter.Allow(s.ip, now) {
		return r.drop(event.DropRateLimit, in.Name, id, errs.ErrRateLimited)
	}

	var err error
	switch in.Name {
	case domain.InboundJoinZone:
		err = r.joinZone(ctx, s, in, now)
	case domain.InboundEmotionPulse:
		err = r.emotionPulse(ctx, s, in, now)
	case domain.InboundCreateContent:
		err = r.createContent(ctx, s, in, now)
	case domain.InboundAuthenticate:
		err = r.authenticateSession(s, in, now)
	default:
		err = fmt.Errorf("%w: %q", errs.ErrUnknownEvent, in.Name)
	}

	switch {
	case err == nil:
	case errors.Is(err, errs.ErrRateLimited):
		return r.drop(event.DropRateLimit, in.Name, id, err)
	case errors.Is(err, errs.ErrBackpressure):
		return r.drop(event.DropBackpressure, in.Name, id, err)
	default:
		return r.drop(event.DropValidation, in.Name, id, err)
	}

	r.accepted.Add(1)
	s.messageCount++
	s.lastActivity = now
	return nil
}

func (r *Registry) joinZone(ctx context.Context, s *session, in domain.InboundEvent, now time.Time) error {
	payload, err := domain.DecodeJoinZone(in.Data)
	if err != nil {
		return err
	}
	zone := domain.Zone(payload.Zone)
	if !r.zones.Allowed(zone) {
		return fmt.Errorf("%w: %q", errs.ErrUnknownZone, zone)
	}

	if s.zone != nil && *s.zone == zone {
		r.zoneActivity[zone].LastActivity = now
		r.broadcastZoneActivity(ctx, zone)
		return nil
	}
	if s.zone != nil {
		previous := *s.zone
		r.leaveZone(s, now)
		r.broadcastZoneActivity(ctx, previous)
	}

	za, ok := r.zoneActivity[zone]
	if !ok {
		za = &domain.ZoneActivity{Zone: zone}
		r.zoneActivity[zone] = za
	}
	za.Users++
	za.LastActivity = now
	s.zone = &zone
	r.broadcastZoneActivity(ctx, zone)
	return nil
}

func (r *Registry) leaveZone(s *session, now time.Time) {
	if s.zone == nil {
		return
	}
	if za, ok := r.zoneActivity[*s.zone]; ok {
		if za.Users > 0 {
			za.Users--
		}
		za.LastActivity = now
	}
	s.zone = nil
}

func (r *Registry) emotionPulse(ctx context.Context, s *session, in domain.InboundEvent, now time.Time) error {
	payload, err := domain.DecodeEmotionPulse(in.Data)
	if err != nil {
		return err
	}
	if !r.pulseLimiter.Allow(string(s.id), now) {
		return errs.ErrRateLimited
	}
	emotion := domain.Emotion(payload.Emotion)
	s.emotion = &emotion
	r.recordPulse(ctx, emotion, now)
	return nil
}

func (r *Registry) createContent(ctx context.Context, s *session, in domain.InboundEvent, now time.Time) error {
	payload, err := domain.DecodeCreateContent(in.Data)
	if err != nil {
		return err
	}
	zone := domain.Zone(payload.Zone)
	if !r.zones.Allowed(zone) {
		return fmt.Errorf("%w: %q", errs.ErrUnknownZone, zone)
	}
	if !r.contentLimiter.Allow(string(s.id), now) {
		return errs.ErrRateLimited
	}

	cmd := domain.CreateWhisper{
		SessionID: s.id,
		IP:        s.ip,
		Content:   payload.Content,
		Zone:      zone,
		Emotion:   domain.Emotion(payload.Emotion),
		At:        now,
	}
	select {
	case r.content <- cmd:
	default:
		return errs.ErrBackpressure
	}
	if cmd.Emotion != "" {
		r.recordPulse(ctx, cmd.Emotion, now)
	}
	return nil
}

func (r *Registry) authenticateSession(s *session, in domain.InboundEvent, now time.Time) error {
	if r.authenticate == nil {
		return errs.ErrAuthDisabled
	}
	payload, err := domain.DecodeAuthenticate(in.Data)
	if err != nil {
		return err
	}
	userID, err := r.authenticate(payload.Token)
	if err != nil {
		return err
	}
	s.userID = userID
	s.nextReauth = now.Add(r.cfg.ReauthInterval)
	return nil
}

func (r *Registry) recordPulse(ctx context.Context, emotion domain.Emotion, now time.Time) {
	ep, ok := r.emotionPulses[emotion]
	if !ok {
		ep = &domain.EmotionPulse{Emotion: emotion}
		r.emotionPulses[emotion] = ep
	}
	ep.Count++
	ep.LastPulse = now

	update := event.EmotionPulseUpdate{
		Emotion:     emotion,
		Pulse:       event.Pulse{Count: ep.Count, LastPulse: event.Millis(ep.LastPulse)},
		TotalPulses: r.totalPulses(),
	}
	for _, s := range r.sessions {
		r.deliver(ctx, s, update)
	}
}

func (r *Registry) broadcastZoneActivity(ctx context.Context, zone domain.Zone) {
	za, ok := r.zoneActivity[zone]
	if !ok {
		return
	}
	update := event.ZoneActivityUpdate{
		Zone:        zone,
		Activity:    event.Activity{Users: za.Users, LastActivity: event.Millis(za.LastActivity)},
		TotalActive: r.totalActive(),
	}
	for _, s := range r.sessions {
		r.deliver(ctx, s, update)
	}
}

// deliver is best effort: a slow or full session loses the event, the loop never waits on it.
func (r *Registry) deliver(ctx context.Context, s *session, e event.DomainEvent) {
	deliveryCtx, cancel := context.WithTimeout(ctx, r.cfg.SinkTimeout)
	defer cancel()
	if err := s.sink.Consume(deliveryCtx, e); err != nil {
		r.deliveryDrops.Add(1)
		r.emit(event.New(event.DropType, event.Dropped{
			Reason: event.DropDelivery, EventName: string(e.EventName()), SessionID: s.id,
		}))
		r.log.Debug("Event not delivered", "session_id", s.id, "event", e.EventName(), "error", err)
	}
}

func (r *Registry) housekeep(ctx context.Context) {
	now := r.clock.Now()
	for _, s := range r.sessions {
		if s.zone == nil && now.Sub(s.lastActivity) >= r.cfg.IdleTimeout {
			r.log.Info("Idle session disconnected", "session_id", s.id,
				"connected_for", now.Sub(s.connectedAt).String())
			r.removeSession(ctx, s, now)
			continue
		}
		if r.cfg.ReauthInterval > 0 && !now.Before(s.nextReauth) {
			r.deliver(ctx, s, event.Reauthenticate{At: now.UnixMilli()})
			s.nextReauth = now.Add(r.cfg.ReauthInterval)
		}
	}
}

// removeSession leaves the zone, tells everyone about it and hangs up the sink.
// Rate buckets of the session expire on their own.
func (r *Registry) removeSession(ctx context.Context, s *session, now time.Time) {
	delete(r.sessions, s.id)
	if s.zone != nil {
		zone := *s.zone
		r.leaveZone(s, now)
		r.broadcastZoneActivity(ctx, zone)
	}
	s.sink.Close()
	r.log.Debug("Session removed", "session_id", s.id, "messages", s.messageCount)
}

func (r *Registry) closeAll() {
	for id, s := range r.sessions {
		s.sink.Close()
		delete(r.sessions, id)
	}
	for zone := range r.zoneActivity {
		r.zoneActivity[zone].Users = 0
	}
}

func (r *Registry) drop(reason event.DropReason, name string, id domain.SessionID, err error) error {
	switch reason {
	case event.DropRateLimit:
		r.rateLimitDrops.Add(1)
		r.log.Debug("Inbound event dropped", "reason", reason, "event", name, "session_id", id)
	case event.DropBackpressure:
		r.backpressureDrops.Add(1)
		r.log.Warn("Inbound event dropped", "reason", reason, "event", name, "session_id", id)
	default:
		r.validationDrops.Add(1)
		r.log.Warn("Inbound event dropped", "reason", reason, "event", name, "session_id", id, "error", err)
	}
	r.emit(event.New(event.DropType, event.Dropped{Reason: reason, EventName: name, SessionID: id}))
	return err
}

func (r *Registry) emit(evt event.Event) {
	if r.telemetry == nil {
		return
	}
	select {
	case r.telemetry <- evt:
	default:
		r.log.Debug("Observability telemetry event lost")
	}
}

func (r *Registry) totalActive() int {
	total := 0
	for _, za := range r.zoneActivity {
		total += za.Users
	}
	return total
}

func (r *Registry) totalPulses() int {
	total := 0
	for _, ep := range r.emotionPulses {
		total += ep.Count
	}
	return total
}
