package storage

import (
	"fmt"
	"log/slog"
	"time"
	"whisperwall/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const auditPrefix = "audit:"

// AuditRepository appends job lifecycle entries to badger.
// Keys sort by time: audit:<unix nano>:<uuid>.
type AuditRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAuditRepository(db *badger.DB, log *slog.Logger) *AuditRepository {
	return &AuditRepository{db: db, log: log}
}

func (r AuditRepository) Append(entry domain.AuditEntry) error {
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}
	key := fmt.Sprintf("%s%019d:%s", auditPrefix, entry.At.UnixNano(), uuid.NewString())

	pb, err := toPbAudit(entry)
	if err != nil {
		return err
	}
	data, err := proto.Marshal(pb)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Record is Append for callers that must not fail because of the audit trail.
func (r AuditRepository) Record(entry domain.AuditEntry) {
	if err := r.Append(entry); err != nil {
		r.log.Warn("Audit entry lost", "job_id", entry.JobID, "action", entry.Action, "error", err)
	}
}

// List returns the newest entries first.
func (r AuditRepository) List(limit int) ([]domain.AuditEntry, error) {
	var entries []domain.AuditEntry
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(auditPrefix)
		// In reverse mode Seek lands on the last key <= seek key
		seek := append([]byte(auditPrefix), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			err := it.Item().Value(func(v []byte) error {
				entry, err := DecodeAuditEntry(v)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during audit scan: %w", err)
	}
	return entries, nil
}

// DecodeAuditEntry reads one stored value, the debug inspector uses it too.
func DecodeAuditEntry(v []byte) (domain.AuditEntry, error) {
	var pb structpb.Struct
	if err := proto.Unmarshal(v, &pb); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("failed to unmarshal audit entry: %w", err)
	}
	return fromPbAudit(&pb), nil
}

func toPbAudit(entry domain.AuditEntry) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"job_id":    float64(entry.JobID),
		"target_id": entry.TargetID,
		"action":    string(entry.Action),
		"status":    string(entry.Status),
		"detail":    entry.Detail,
		"at_ms":     float64(entry.At.UnixMilli()),
	})
}

func fromPbAudit(pb *structpb.Struct) domain.AuditEntry {
	fields := pb.GetFields()
	return domain.AuditEntry{
		JobID:    domain.JobID(int64(fields["job_id"].GetNumberValue())),
		TargetID: fields["target_id"].GetStringValue(),
		Action:   domain.AuditAction(fields["action"].GetStringValue()),
		Status:   domain.JobStatus(fields["status"].GetStringValue()),
		Detail:   fields["detail"].GetStringValue(),
		At:       time.UnixMilli(int64(fields["at_ms"].GetNumberValue())).UTC(),
	}
}
