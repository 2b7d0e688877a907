package repository

import (
	"context"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/internal/sheetdb"
)

// StudentFilter narrows student listings. Empty fields match everything.
type StudentFilter struct {
	ClassName  string
	SchoolYear string
}

// StudentRepository defines persistence operations for students.
type StudentRepository interface {
	List(ctx context.Context, filter StudentFilter) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student models.Student) error
	Delete(ctx context.Context, id string) error
}

type studentRepository struct {
	table table
}

// NewStudentRepository instantiates a sheet-backed student repository.
func NewStudentRepository(store sheetdb.Store) StudentRepository {
	return &studentRepository{table: table{store: store, name: schema.TableStudents}}
}

func (r *studentRepository) List(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	records, err := r.table.readRecords(ctx)
	if err != nil {
		return nil, err
	}

	students := make([]models.Student, 0, len(records))
	for _, rec := range records {
		student := models.StudentFromRecord(rec)
		if filter.ClassName != "" && student.ClassName != filter.ClassName {
			continue
		}
		if filter.SchoolYear != "" && student.SchoolYear != filter.SchoolYear {
			continue
		}
		students = append(students, student)
	}
	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (models.Student, error) {
	_, rec, err := r.table.findRow(ctx, id)
	if err != nil {
		return models.Student{}, err
	}
	return models.StudentFromRecord(rec), nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	student.ID = NewID()
	return r.table.appendRecord(ctx, student.Record())
}

func (r *studentRepository) Update(ctx context.Context, student models.Student) error {
	return r.table.updateByID(ctx, student.ID, student.Record())
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	return r.table.deleteByID(ctx, id)
}
