package repository

import (
	"context"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/internal/sheetdb"
)

// ClassRepository defines persistence operations for classes.
type ClassRepository interface {
	List(ctx context.Context, schoolYear string) ([]models.Class, error)
	GetByID(ctx context.Context, id string) (models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class models.Class) error
	Delete(ctx context.Context, id string) error
}

type classRepository struct {
	table table
}

// NewClassRepository instantiates a sheet-backed class repository.
func NewClassRepository(store sheetdb.Store) ClassRepository {
	return &classRepository{table: table{store: store, name: schema.TableClasses}}
}

func (r *classRepository) List(ctx context.Context, schoolYear string) ([]models.Class, error) {
	records, err := r.table.readRecords(ctx)
	if err != nil {
		return nil, err
	}

	classes := make([]models.Class, 0, len(records))
	for _, rec := range records {
		class := models.ClassFromRecord(rec)
		if schoolYear != "" && class.SchoolYear != schoolYear {
			continue
		}
		classes = append(classes, class)
	}
	return classes, nil
}

func (r *classRepository) GetByID(ctx context.Context, id string) (models.Class, error) {
	_, rec, err := r.table.findRow(ctx, id)
	if err != nil {
		return models.Class{}, err
	}
	return models.ClassFromRecord(rec), nil
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	class.ID = NewID()
	class.CreatedAt = nowISO()
	return r.table.appendRecord(ctx, class.Record())
}

func (r *classRepository) Update(ctx context.Context, class models.Class) error {
	return r.table.updateByID(ctx, class.ID, class.Record())
}

func (r *classRepository) Delete(ctx context.Context, id string) error {
	return r.table.deleteByID(ctx, id)
}
