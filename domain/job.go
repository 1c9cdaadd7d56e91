package domain

import "time"

type JobID int64

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobDone      JobStatus = "done"
	JobError     JobStatus = "error"
	JobCancelled JobStatus = "cancelled"
)

// Job is a persisted request to generate a reply for TargetID once RunAt is reached.
// Jobs are never deleted, terminal ones stay for audit.
type Job struct {
	ID         JobID
	TargetID   string
	Zone       Zone
	Emotion    Emotion
	RunAt      time.Time
	Status     JobStatus
	RetryCount int
	LastError  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var transitions = map[JobStatus][]JobStatus{
	JobPending: {JobRunning, JobCancelled},
	JobRunning: {JobDone, JobPending, JobError, JobCancelled},
}

// CanTransition follows pending -> running -> {done, pending, error},
// with cancelled reachable from pending or running only.
func (s JobStatus) CanTransition(to JobStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s JobStatus) IsTerminal() bool {
	return s == JobDone || s == JobError || s == JobCancelled
}

func (s JobStatus) Valid() bool {
	switch s {
	case JobPending, JobRunning, JobDone, JobError, JobCancelled:
		return true
	}
	return false
}

// Transition is a compare-and-set on a job row: it applies only while the
// stored status still equals From. Nil fields are left untouched.
type Transition struct {
	From       JobStatus
	To         JobStatus
	At         time.Time
	RunAt      *time.Time
	RetryCount *int
	LastError  *string
}
