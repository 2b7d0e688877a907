package repository

import (
	"context"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/internal/sheetdb"
)

// RubricRepository defines persistence operations for answer keys.
type RubricRepository interface {
	ListByTest(ctx context.Context, testID string) ([]models.Rubric, error)
	GetByID(ctx context.Context, id string) (models.Rubric, error)
	Create(ctx context.Context, rubric *models.Rubric) error
	Update(ctx context.Context, rubric models.Rubric) error
	Delete(ctx context.Context, id string) error
}

type rubricRepository struct {
	table table
}

// NewRubricRepository instantiates a sheet-backed rubric repository.
func NewRubricRepository(store sheetdb.Store) RubricRepository {
	return &rubricRepository{table: table{store: store, name: schema.TableRubrics}}
}

func (r *rubricRepository) ListByTest(ctx context.Context, testID string) ([]models.Rubric, error) {
	records, err := r.table.readRecords(ctx)
	if err != nil {
		return nil, err
	}

	rubrics := make([]models.Rubric, 0, len(records))
	for _, rec := range records {
		rubric := models.RubricFromRecord(rec)
		if rubric.TestID != testID {
			continue
		}
		rubrics = append(rubrics, rubric)
	}
	return rubrics, nil
}

func (r *rubricRepository) GetByID(ctx context.Context, id string) (models.Rubric, error) {
	_, rec, err := r.table.findRow(ctx, id)
	if err != nil {
		return models.Rubric{}, err
	}
	return models.RubricFromRecord(rec), nil
}

func (r *rubricRepository) Create(ctx context.Context, rubric *models.Rubric) error {
	rubric.ID = NewID()
	return r.table.appendRecord(ctx, rubric.Record())
}

func (r *rubricRepository) Update(ctx context.Context, rubric models.Rubric) error {
	return r.table.updateByID(ctx, rubric.ID, rubric.Record())
}

func (r *rubricRepository) Delete(ctx context.Context, id string) error {
	return r.table.deleteByID(ctx, id)
}
