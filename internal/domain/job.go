package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job posting statuses
const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in-progress"
	JobStatusCompleted  = "completed"
)

type Job struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidJobStatus reports whether s is one of the known posting statuses.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted:
		return true
	}
	return false
}

// FilterJobsByOwner returns the subsequence of jobs owned by userID,
// preserving the order of the source collection. The result is never nil.
func FilterJobsByOwner(jobs []Job, userID string) []Job {
	filtered := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.UserID == userID {
			filtered = append(filtered, j)
		}
	}
	return filtered
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	FetchAll(ctx context.Context) ([]Job, error)
	Fetch(ctx context.Context, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	ListJobsByOwner(ctx context.Context, userID string) ([]Job, error)
	UpdateJob(ctx context.Context, job *Job) error
	DeleteJob(ctx context.Context, id int64) error
	ExportJobsXLSX(ctx context.Context) ([]byte, error)
}
