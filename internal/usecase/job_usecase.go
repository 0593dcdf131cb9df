package usecase

import (
	"bytes"
	"context"
	"strings"
	"time"

	"go-talenthub-backend/internal/domain"
	"go-talenthub-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	if !domain.ValidJobStatus(job.Status) {
		return apperror.BadRequest("Status must be one of: open, in-progress, completed")
	}

	job.UserID = userID
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Fetch(ctx, pageSize, offset)
}

// ListJobsByOwner filters the full posting collection down to one owner's
// postings, preserving collection order.
func (u *jobUsecase) ListJobsByOwner(ctx context.Context, userID string) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterJobsByOwner(jobs, userID), nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if !domain.ValidJobStatus(job.Status) {
		return apperror.BadRequest("Status must be one of: open, in-progress, completed")
	}

	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if err := u.requireOwner(ctx, existing.UserID); err != nil {
		return err
	}

	job.UserID = existing.UserID
	job.UpdatedAt = time.Now()

	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if err := u.requireOwner(ctx, existing.UserID); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, id)
}

// requireOwner enforces that the session user owns the posting. Admins
// bypass the check.
func (u *jobUsecase) requireOwner(ctx context.Context, ownerID string) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID == ownerID {
		return nil
	}
	if role, _ := ctx.Value(domain.KeyUserRole).(string); role == "admin" {
		return nil
	}
	return apperror.Forbidden("You can only modify your own job postings")
}

// ExportJobsXLSX renders the full posting collection as a spreadsheet for
// admin reporting.
func (u *jobUsecase) ExportJobsXLSX(ctx context.Context) ([]byte, error) {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != "admin" {
		return nil, apperror.Forbidden("Only admins can export job postings")
	}

	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Owner", "Title", "Status", "Skills", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, job := range jobs {
		values := []interface{}{
			job.ID,
			job.UserID,
			job.Title,
			job.Status,
			strings.Join(job.Skills, ", "),
			job.CreatedAt.UTC().Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, apperror.Internal(err)
	}
	return buf.Bytes(), nil
}
