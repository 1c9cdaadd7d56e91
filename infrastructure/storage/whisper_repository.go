package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"whisperwall/clock"
	"whisperwall/domain"
	errs "whisperwall/errors"
)

const whispersDDL = `CREATE TABLE IF NOT EXISTS whispers (
	id         TEXT PRIMARY KEY,
	content    TEXT NOT NULL,
	zone       TEXT NOT NULL,
	emotion    TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL,
	parent_id  TEXT,
	is_reply   INTEGER NOT NULL DEFAULT 0,
	language   TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	expires_at INTEGER NOT NULL
)`

const whispersExpiryIndex = `CREATE INDEX IF NOT EXISTS idx_whispers_expires_at ON whispers(expires_at)`

// WhisperRepository stores whispers and their visible status.
type WhisperRepository struct {
	db    *sql.DB
	log   *slog.Logger
	clock clock.Clock
}

func NewWhisperRepository(db *sql.DB, log *slog.Logger, clk clock.Clock) *WhisperRepository {
	return &WhisperRepository{db: db, log: log, clock: clk}
}

func (r *WhisperRepository) EnsureSchema(ctx context.Context) error {
	return ensureTable(ctx, r.db, "whispers", whispersDDL, whispersExpiryIndex)
}

func (r *WhisperRepository) Create(ctx context.Context, w domain.Whisper) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO whispers(id, content, zone, emotion, status, parent_id, is_reply, language, created_at, expires_at)
		 VALUES(?,?,?,?,?,?,?,?,?,?)`,
		w.ID, w.Content, string(w.Zone), string(w.Emotion), string(w.Status),
		nullString(w.ParentID), w.IsReply, w.Language,
		w.CreatedAt.UnixMilli(), w.ExpiresAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting whisper %s: %w", w.ID, err)
	}
	return nil
}

func (r *WhisperRepository) Get(ctx context.Context, id string) (domain.Whisper, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, content, zone, emotion, status, parent_id, is_reply, language, created_at, expires_at
		 FROM whispers WHERE id=?`, id)

	var (
		w                    domain.Whisper
		zone, emotion, state string
		parentID             sql.NullString
		createdAt, expiresAt int64
	)
	err := row.Scan(&w.ID, &w.Content, &zone, &emotion, &state, &parentID, &w.IsReply, &w.Language, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Whisper{}, errs.ErrWhisperNotFound
	}
	if err != nil {
		return domain.Whisper{}, fmt.Errorf("reading whisper %s: %w", id, err)
	}
	w.Zone = domain.Zone(zone)
	w.Emotion = domain.Emotion(emotion)
	w.Status = domain.WhisperStatus(state)
	w.ParentID = fromNullString(parentID)
	w.CreatedAt = fromMillis(createdAt)
	w.ExpiresAt = fromMillis(expiresAt)
	return w, nil
}

func (r *WhisperRepository) SetStatus(ctx context.Context, id string, status domain.WhisperStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE whispers SET status=? WHERE id=?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating whisper %s status: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrWhisperNotFound
	}
	return nil
}

// DeleteExpired removes whispers whose expiry passed. Jobs pointing to them are kept.
func (r *WhisperRepository) DeleteExpired(ctx context.Context) (int64, error) {
	now := r.clock.Now()
	res, err := r.db.ExecContext(ctx, `DELETE FROM whispers WHERE expires_at <= ?`, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("deleting expired whispers: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.log.Info("Expired whispers deleted", "count", n, "before", now.Format(time.RFC3339))
	}
	return n, nil
}
