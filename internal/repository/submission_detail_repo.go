package repository

import (
	"context"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/internal/sheetdb"
)

// SubmissionDetailRepository defines persistence operations for flagged
// mistakes.
type SubmissionDetailRepository interface {
	ListBySubmission(ctx context.Context, submissionID string) ([]models.SubmissionDetail, error)
	GetByID(ctx context.Context, id string) (models.SubmissionDetail, error)
	Create(ctx context.Context, detail *models.SubmissionDetail) error
	Update(ctx context.Context, detail models.SubmissionDetail) error
	Delete(ctx context.Context, id string) error
}

type submissionDetailRepository struct {
	table table
}

// NewSubmissionDetailRepository instantiates a sheet-backed detail
// repository.
func NewSubmissionDetailRepository(store sheetdb.Store) SubmissionDetailRepository {
	return &submissionDetailRepository{table: table{store: store, name: schema.TableSubmissionDetails}}
}

func (r *submissionDetailRepository) ListBySubmission(ctx context.Context, submissionID string) ([]models.SubmissionDetail, error) {
	records, err := r.table.readRecords(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]models.SubmissionDetail, 0, len(records))
	for _, rec := range records {
		detail := models.SubmissionDetailFromRecord(rec)
		if detail.SubmissionID != submissionID {
			continue
		}
		details = append(details, detail)
	}
	return details, nil
}

func (r *submissionDetailRepository) GetByID(ctx context.Context, id string) (models.SubmissionDetail, error) {
	_, rec, err := r.table.findRow(ctx, id)
	if err != nil {
		return models.SubmissionDetail{}, err
	}
	return models.SubmissionDetailFromRecord(rec), nil
}

func (r *submissionDetailRepository) Create(ctx context.Context, detail *models.SubmissionDetail) error {
	detail.ID = NewID()
	return r.table.appendRecord(ctx, detail.Record())
}

func (r *submissionDetailRepository) Update(ctx context.Context, detail models.SubmissionDetail) error {
	return r.table.updateByID(ctx, detail.ID, detail.Record())
}

func (r *submissionDetailRepository) Delete(ctx context.Context, id string) error {
	return r.table.deleteByID(ctx, id)
}
