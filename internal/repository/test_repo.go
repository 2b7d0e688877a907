package repository

import (
	"context"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/internal/sheetdb"
)

// TestFilter narrows test listings. Empty fields match everything.
type TestFilter struct {
	ClassID string
	Status  models.TestStatus
}

// TestRepository defines persistence operations for tests.
type TestRepository interface {
	List(ctx context.Context, filter TestFilter) ([]models.Test, error)
	GetByID(ctx context.Context, id string) (models.Test, error)
	Create(ctx context.Context, test *models.Test) error
	Update(ctx context.Context, test models.Test) error
	Delete(ctx context.Context, id string) error
}

type testRepository struct {
	table table
}

// NewTestRepository instantiates a sheet-backed test repository.
func NewTestRepository(store sheetdb.Store) TestRepository {
	return &testRepository{table: table{store: store, name: schema.TableTests}}
}

func (r *testRepository) List(ctx context.Context, filter TestFilter) ([]models.Test, error) {
	records, err := r.table.readRecords(ctx)
	if err != nil {
		return nil, err
	}

	tests := make([]models.Test, 0, len(records))
	for _, rec := range records {
		test := models.TestFromRecord(rec)
		if filter.ClassID != "" && !test.AssignedTo(filter.ClassID) {
			continue
		}
		if filter.Status != "" && test.Status != filter.Status {
			continue
		}
		tests = append(tests, test)
	}
	return tests, nil
}

func (r *testRepository) GetByID(ctx context.Context, id string) (models.Test, error) {
	_, rec, err := r.table.findRow(ctx, id)
	if err != nil {
		return models.Test{}, err
	}
	return models.TestFromRecord(rec), nil
}

func (r *testRepository) Create(ctx context.Context, test *models.Test) error {
	test.ID = NewID()
	test.CreatedAt = nowISO()
	return r.table.appendRecord(ctx, test.Record())
}

func (r *testRepository) Update(ctx context.Context, test models.Test) error {
	return r.table.updateByID(ctx, test.ID, test.Record())
}

func (r *testRepository) Delete(ctx context.Context, id string) error {
	return r.table.deleteByID(ctx, id)
}
