package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"
	"time"
	"whisperwall/clock"
	"whisperwall/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

type fixture struct {
	db       *sql.DB
	clock    *clock.Fake
	jobs     *JobRepository
	whispers *WhisperRepository
}

// setupSQLite opens a fresh database file with both tables created.
func setupSQLite(t *testing.T) fixture {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "whisperwall.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	clk := clock.NewFake(start)
	f := fixture{
		db:       db,
		clock:    clk,
		jobs:     NewJobRepository(db, log, clk),
		whispers: NewWhisperRepository(db, log, clk),
	}
	require.NoError(t, f.whispers.EnsureSchema(context.Background()))
	require.NoError(t, f.jobs.EnsureSchema(context.Background()))
	return f
}

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func (f fixture) newWhisper(t *testing.T, zone domain.Zone) domain.Whisper {
	t.Helper()
	w := domain.Whisper{
		ID:        uuid.NewString(),
		Content:   "I still think about the girl from the library stairs",
		Zone:      zone,
		Emotion:   "nostalgia",
		Status:    domain.WhisperPosted,
		CreatedAt: f.clock.Now(),
		ExpiresAt: f.clock.Now().Add(24 * time.Hour),
	}
	require.NoError(t, f.whispers.Create(context.Background(), w))
	return w
}
