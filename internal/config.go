package internal

import (
	"fmt"
	"strings"
	"time"
)

// DefaultZones applies when ZONES is unset. It lives outside the struct tag
// because go-env splits tag options on commas.
const DefaultZones = "library,cafeteria,quad,dorms,gym,lecture-hall"

type Config struct {
	// Scheduler
	PollInterval         time.Duration `env:"POLL_INTERVAL,default=30s"`
	JobBatchSize         int           `env:"JOB_BATCH_SIZE,default=5"`
	JobConcurrency       int           `env:"JOB_CONCURRENCY,default=1"`
	RetryCeiling         int           `env:"RETRY_CEILING,default=3"`
	RetryBackoff         time.Duration `env:"RETRY_BACKOFF,default=60s"`
	GenerationTimeout    time.Duration `env:"GENERATION_TIMEOUT,default=20s"`
	GenerationRatePerSec int           `env:"GENERATION_RATE_PER_SEC,default=2"`
	APIBaseURL           string        `env:"API_BASE_URL,default=http://localhost:5000"`

	// Create-whisper
	ReplyProbability float64       `env:"REPLY_PROBABILITY,default=0.5"`
	ReplyMinDelay    time.Duration `env:"REPLY_MIN_DELAY,default=2m"`
	ReplyMaxDelay    time.Duration `env:"REPLY_MAX_DELAY,default=10m"`
	WhisperTTL       time.Duration `env:"WHISPER_TTL,default=168h"`
	ExpirySchedule   string        `env:"EXPIRY_SCHEDULE,default=@every 12h"`
	NumberOfWorkers  int           `env:"NUMBER_OF_WORKERS,default=2"`
	CharReplacement  string        `env:"CHARACTER_REPLACEMENT,default=*"`

	// Real-time boundary
	IPWindow         time.Duration `env:"IP_WINDOW,default=60s"`
	IPLimit          int           `env:"IP_LIMIT,default=20"`
	ContentSpacing   time.Duration `env:"CONTENT_SPACING,default=12s"`
	PulseSpacing     time.Duration `env:"PULSE_SPACING,default=10s"`
	IdleTimeout      time.Duration `env:"IDLE_TIMEOUT,default=5m"`
	ReauthInterval   time.Duration `env:"REAUTH_INTERVAL,default=10m"`
	ZoneStaleness    time.Duration `env:"ZONE_STALENESS,default=30m"`
	EmotionStaleness time.Duration `env:"EMOTION_STALENESS,default=1h"`
	CleanupInterval  time.Duration `env:"CLEANUP_INTERVAL,default=15m"`
	Zones            string        `env:"ZONES"`

	// Plumbing
	SessionBufferSize int           `env:"SESSION_BUFFER_SIZE,default=64"`
	BufferSize        int           `env:"BUFFER_SIZE,default=256"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,default=200ms"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=1s"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=10s"`
	LowCapacityRatio  int           `env:"LOW_CAPACITY_THRESHOLD,default=20"`
	SQLitePath        string        `env:"SQLITE_PATH,default=data/whisperwall.db"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,default=data/audit"`
	SearchIndexPath   string        `env:"SEARCH_INDEX_PATH,default=data/search"`
	HTTPPort          int           `env:"HTTP_PORT,default=8080"`
	GRPCPort          int           `env:"GRPC_PORT,default=9090"`
	DebugPort         int           `env:"DEBUG_PORT,default=8081"`
	AllowedOrigins    string        `env:"ALLOWED_ORIGINS,default=http://localhost:3000"`
	AuthSecret        string        `env:"AUTH_SECRET"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	AdminTokenTTL     time.Duration `env:"ADMIN_TOKEN_TTL,default=12h"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
}

// Validate rejects combinations the runtime cannot honour.
func (c Config) Validate() error {
	switch {
	case c.PollInterval <= 0:
		return fmt.Errorf("POLL_INTERVAL must be positive, got %s", c.PollInterval)
	case c.JobBatchSize <= 0:
		return fmt.Errorf("JOB_BATCH_SIZE must be positive, got %d", c.JobBatchSize)
	case c.RetryCeiling <= 0:
		return fmt.Errorf("RETRY_CEILING must be positive, got %d", c.RetryCeiling)
	case c.ReplyProbability < 0 || c.ReplyProbability > 1:
		return fmt.Errorf("REPLY_PROBABILITY must be within [0,1], got %v", c.ReplyProbability)
	case c.ReplyMaxDelay < c.ReplyMinDelay:
		return fmt.Errorf("REPLY_MAX_DELAY %s is below REPLY_MIN_DELAY %s", c.ReplyMaxDelay, c.ReplyMinDelay)
	case c.IPLimit <= 0 || c.IPWindow <= 0:
		return fmt.Errorf("IP_LIMIT and IP_WINDOW must be positive")
	case len(c.ZoneList()) == 0:
		return fmt.Errorf("ZONES must name at least one zone")
	case c.AdminPasswordHash != "" && c.AuthSecret == "":
		return fmt.Errorf("ADMIN_PASSWORD_HASH requires AUTH_SECRET to sign admin tokens")
	}
	return nil
}

func (c Config) ZoneList() []string {
	if strings.TrimSpace(c.Zones) == "" {
		return splitList(DefaultZones)
	}
	return splitList(c.Zones)
}

func (c Config) OriginList() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	var res []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
