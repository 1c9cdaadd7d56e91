package domain

import "time"

type AuditAction string

const (
	AuditEnqueued  AuditAction = "enqueued"
	AuditClaimed   AuditAction = "claimed"
	AuditDone      AuditAction = "done"
	AuditRetry     AuditAction = "retry"
	AuditError     AuditAction = "error"
	AuditCancelled AuditAction = "cancelled"
)

type AuditEntry struct {
	JobID    JobID
	TargetID string
	Action   AuditAction
	Status   JobStatus
	Detail   string
	At       time.Time
}
