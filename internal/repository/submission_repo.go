package repository

import (
	"context"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/internal/sheetdb"
)

// SubmissionFilter narrows submission listings. Empty fields match
// everything.
type SubmissionFilter struct {
	TestID    string
	StudentID string
	ClassID   string
	Status    models.SubmissionStatus
}

// SubmissionRepository defines persistence operations for submissions.
type SubmissionRepository interface {
	List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error)
	GetByID(ctx context.Context, id string) (models.Submission, error)
	Create(ctx context.Context, submission *models.Submission) error
	CreateBatch(ctx context.Context, submissions []models.Submission) error
	Update(ctx context.Context, submission models.Submission) error
	Delete(ctx context.Context, id string) error
}

type submissionRepository struct {
	table table
}

// NewSubmissionRepository instantiates a sheet-backed submission repository.
func NewSubmissionRepository(store sheetdb.Store) SubmissionRepository {
	return &submissionRepository{table: table{store: store, name: schema.TableSubmissions}}
}

func (r *submissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	records, err := r.table.readRecords(ctx)
	if err != nil {
		return nil, err
	}

	submissions := make([]models.Submission, 0, len(records))
	for _, rec := range records {
		submission := models.SubmissionFromRecord(rec)
		if filter.TestID != "" && submission.TestID != filter.TestID {
			continue
		}
		if filter.StudentID != "" && submission.StudentID != filter.StudentID {
			continue
		}
		if filter.ClassID != "" && submission.ClassID != filter.ClassID {
			continue
		}
		if filter.Status != "" && submission.Status != filter.Status {
			continue
		}
		submissions = append(submissions, submission)
	}
	return submissions, nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (models.Submission, error) {
	_, rec, err := r.table.findRow(ctx, id)
	if err != nil {
		return models.Submission{}, err
	}
	return models.SubmissionFromRecord(rec), nil
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	submission.ID = NewID()
	submission.CreatedAt = nowISO()
	return r.table.appendRecord(ctx, submission.Record())
}

// CreateBatch appends all submissions in one multi-row append. Used by the
// bulk-create path; one round trip, not one per student.
func (r *submissionRepository) CreateBatch(ctx context.Context, submissions []models.Submission) error {
	if len(submissions) == 0 {
		return nil
	}

	recs := make([]map[string]string, 0, len(submissions))
	for i := range submissions {
		submissions[i].ID = NewID()
		submissions[i].CreatedAt = nowISO()
		recs = append(recs, submissions[i].Record())
	}
	return r.table.appendRecords(ctx, recs)
}

func (r *submissionRepository) Update(ctx context.Context, submission models.Submission) error {
	return r.table.updateByID(ctx, submission.ID, submission.Record())
}

func (r *submissionRepository) Delete(ctx context.Context, id string) error {
	return r.table.deleteByID(ctx, id)
}
