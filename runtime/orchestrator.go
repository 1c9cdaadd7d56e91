package runtime

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"whisperwall/clock"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/domain/event"
	"whisperwall/moderation"
	"whisperwall/runtime/workers"
	"whisperwall/services"
)

//go:embed censored/*.txt
var censoredFS embed.FS

const censoredDir = "censored"

type OrchestratorConfig struct {
	NumberOfWorkers      int
	CharReplacement      rune
	Zones                domain.Zones
	Whisper              services.WhisperConfig
	Scheduler            workers.SchedulerConfig
	CleanupInterval      time.Duration
	ExpirySchedule       string
	MetricInterval       time.Duration
	LowCapacityThreshold int
}

// Dependencies are the collaborators built by the binary and shared with the transports.
type Dependencies struct {
	Jobs      contract.IJobStore
	Whispers  contract.IWhisperStore
	Audit     contract.IAuditLog
	Index     contract.IWhisperIndex
	Generator contract.IGenerator
	Metrics   event.Metrics
	Probe     contract.IMemoryProbe
	Random    contract.Random
}

// Orchestrator builds the services and supervises every background loop:
// the registry, the content workers, the job scheduler, the sweepers and telemetry.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	clock      clock.Clock
	cfg        OrchestratorConfig
	deps       Dependencies
	supervisor contract.ISupervisor
	registry   *Registry
	content    chan domain.CreateWhisper
	telemetry  chan event.Event
	extra      []contract.Worker

	prepared       bool
	workers        []contract.Worker
	whisperService *services.WhisperService
	jobService     *services.JobService
	scheduler      *workers.JobScheduler
}

func NewOrchestrator(log *slog.Logger, clk clock.Clock, cfg OrchestratorConfig,
	supervisor contract.ISupervisor, registry *Registry,
	content chan domain.CreateWhisper, telemetry chan event.Event, deps Dependencies) *Orchestrator {
	if cfg.NumberOfWorkers <= 0 {
		cfg.NumberOfWorkers = 1
	}
	return &Orchestrator{
		log:        log,
		clock:      clk,
		cfg:        cfg,
		deps:       deps,
		supervisor: supervisor,
		registry:   registry,
		content:    content,
		telemetry:  telemetry,
	}
}

// Add supervises extra workers next to the runtime ones (health reporting, ...).
func (o *Orchestrator) Add(w ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.extra = append(o.extra, w...)
}

// Prepare loads the censored words, builds the services and the workers.
// It is called by Start when needed; binaries call it first to hand the
// services to the transports before anything runs.
func (o *Orchestrator) Prepare() error {
	o.mu.Lock()
	prepared := o.prepared
	o.mu.Unlock()
	if prepared {
		return nil
	}

	// Heavy tasks like I/O (loading files) and CPU (Aho-Corasick build) run without the lock
	censor, err := o.prepareModeration()
	if err != nil {
		return err
	}
	whisperService := services.NewWhisperService(o.log, o.clock, o.cfg.Zones, o.cfg.Whisper,
		o.deps.Whispers, o.deps.Jobs, o.registry, censor, o.deps.Audit, o.deps.Random, o.telemetry)
	if o.deps.Index != nil {
		whisperService.WithIndex(o.deps.Index)
	}
	jobService := services.NewJobService(o.log, o.clock, o.deps.Jobs, o.deps.Whispers, o.deps.Audit)
	scheduler := workers.NewJobScheduler(o.log, o.clock, o.cfg.Scheduler,
		o.deps.Jobs, o.deps.Whispers, o.deps.Generator, whisperService, o.deps.Audit, o.telemetry)

	runtimeWorkers := []contract.Worker{o.registry, scheduler}
	runtimeWorkers = append(runtimeWorkers, o.prepareContentWorkers(whisperService)...)
	runtimeWorkers = append(runtimeWorkers, o.prepareMaintenance()...)
	runtimeWorkers = append(runtimeWorkers, o.prepareTelemetry()...)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.whisperService = whisperService
	o.jobService = jobService
	o.scheduler = scheduler
	o.workers = runtimeWorkers
	o.prepared = true
	return nil
}

// Start prepares when needed, registers every worker and blocks until the
// supervised workers returned.
func (o *Orchestrator) Start(ctx context.Context) error {
	// 1. Preparation phase (No Lock)
	if err := o.Prepare(); err != nil {
		return err
	}

	// 2. Critical Section (Short Lock)
	o.mu.Lock()
	o.supervisor.Add(o.workers...)
	o.supervisor.Add(o.extra...)
	count := len(o.workers) + len(o.extra)
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	o.log.Info("Starting orchestrator and all supervised workers", "workers", count)
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) WhisperService() *services.WhisperService {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.whisperService
}

func (o *Orchestrator) JobService() *services.JobService {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.jobService
}

func (o *Orchestrator) Scheduler() *workers.JobScheduler {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.scheduler
}

func (o *Orchestrator) Registry() *Registry {
	return o.registry
}

// prepareModeration loads censored words and builds the Aho-Corasick automaton.
func (o *Orchestrator) prepareModeration() (contract.ICensor, error) {
	data, err := NewCensoredLoader(censoredFS).LoadAll(censoredDir)
	if err != nil {
		return nil, err
	}
	o.log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	o.log.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))

	moderator, err := moderation.NewModerator(data.Words, o.cfg.CharReplacement, o.log)
	if err != nil {
		return nil, err
	}
	return moderator, nil
}

// prepareContentWorkers creates the units draining accepted create-content commands.
func (o *Orchestrator) prepareContentWorkers(service contract.IWhisperService) []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.cfg.NumberOfWorkers; i++ {
		res = append(res, workers.NewContentWorker(o.content, service, o.log))
	}
	return res
}

func (o *Orchestrator) prepareMaintenance() []contract.Worker {
	var res []contract.Worker
	if o.cfg.CleanupInterval > 0 {
		res = append(res, workers.NewCleanupSweeper(o.log, o.clock, o.cfg.CleanupInterval, o.registry, o.deps.Probe, o.telemetry))
	}
	if o.cfg.ExpirySchedule != "" {
		res = append(res, workers.NewContentExpiry(o.log, o.cfg.ExpirySchedule, o.deps.Whispers, o.telemetry))
	}
	return res
}

// prepareTelemetry wires the handler chain publishing technical events to the metrics.
func (o *Orchestrator) prepareTelemetry() []contract.Worker {
	if o.deps.Metrics == nil {
		return nil
	}
	handlers := []event.Handler{
		event.NewWorkerRestartedAfterPanicHandler(o.log, o.deps.Metrics),
		event.NewDropHandler(o.log, o.deps.Metrics),
		event.NewJobOutcomeHandler(o.log, o.deps.Metrics),
		event.NewCensoredHandler(o.log, o.deps.Metrics),
		event.NewMemoryHandler(o.log, o.deps.Metrics),
		event.NewChannelCapacityHandler(o.log, o.deps.Metrics, o.cfg.LowCapacityThreshold),
	}
	res := []contract.Worker{workers.NewTelemetryWorker(o.log, o.telemetry, handlers)}
	if o.cfg.MetricInterval > 0 {
		res = append(res, workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
			{Name: "content", Channel: o.content},
			{Name: "telemetry", Channel: o.telemetry},
		}, o.telemetry, o.cfg.MetricInterval))
	}
	return res
}

// Stop cancels the supervised context; Start returns once every worker stopped.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
