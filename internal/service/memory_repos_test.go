package service

import (
	"context"
	"fmt"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/repository"
)

// In-memory repository fakes. They mirror the sheet-backed repositories'
// behaviour: ids are assigned on create and lookups miss with
// repository.ErrNotFound.

type memClassRepo struct {
	classes map[string]models.Class
	nextID  int
}

func newMemClassRepo() *memClassRepo {
	return &memClassRepo{classes: make(map[string]models.Class)}
}

func (m *memClassRepo) newID() string {
	m.nextID++
	return fmt.Sprintf("class-%d", m.nextID)
}

func (m *memClassRepo) List(ctx context.Context, schoolYear string) ([]models.Class, error) {
	out := make([]models.Class, 0, len(m.classes))
	for _, class := range m.classes {
		if schoolYear != "" && class.SchoolYear != schoolYear {
			continue
		}
		out = append(out, class)
	}
	return out, nil
}

func (m *memClassRepo) GetByID(ctx context.Context, id string) (models.Class, error) {
	class, ok := m.classes[id]
	if !ok {
		return models.Class{}, repository.ErrNotFound
	}
	return class, nil
}

func (m *memClassRepo) Create(ctx context.Context, class *models.Class) error {
	class.ID = m.newID()
	class.CreatedAt = "2026-01-01T00:00:00Z"
	m.classes[class.ID] = *class
	return nil
}

func (m *memClassRepo) Update(ctx context.Context, class models.Class) error {
	if _, ok := m.classes[class.ID]; !ok {
		return repository.ErrNotFound
	}
	m.classes[class.ID] = class
	return nil
}

func (m *memClassRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.classes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.classes, id)
	return nil
}

type memStudentRepo struct {
	students map[string]models.Student
	nextID   int
}

func newMemStudentRepo() *memStudentRepo {
	return &memStudentRepo{students: make(map[string]models.Student)}
}

func (m *memStudentRepo) List(ctx context.Context, filter repository.StudentFilter) ([]models.Student, error) {
	out := make([]models.Student, 0, len(m.students))
	for _, student := range m.students {
		if filter.ClassName != "" && student.ClassName != filter.ClassName {
			continue
		}
		if filter.SchoolYear != "" && student.SchoolYear != filter.SchoolYear {
			continue
		}
		out = append(out, student)
	}
	return out, nil
}

func (m *memStudentRepo) GetByID(ctx context.Context, id string) (models.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return models.Student{}, repository.ErrNotFound
	}
	return student, nil
}

func (m *memStudentRepo) Create(ctx context.Context, student *models.Student) error {
	m.nextID++
	student.ID = fmt.Sprintf("student-%d", m.nextID)
	m.students[student.ID] = *student
	return nil
}

func (m *memStudentRepo) Update(ctx context.Context, student models.Student) error {
	if _, ok := m.students[student.ID]; !ok {
		return repository.ErrNotFound
	}
	m.students[student.ID] = student
	return nil
}

func (m *memStudentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.students[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.students, id)
	return nil
}

type memTestRepo struct {
	tests  map[string]models.Test
	nextID int
}

func newMemTestRepo() *memTestRepo {
	return &memTestRepo{tests: make(map[string]models.Test)}
}

func (m *memTestRepo) List(ctx context.Context, filter repository.TestFilter) ([]models.Test, error) {
	out := make([]models.Test, 0, len(m.tests))
	for _, test := range m.tests {
		if filter.ClassID != "" && !test.AssignedTo(filter.ClassID) {
			continue
		}
		if filter.Status != "" && test.Status != filter.Status {
			continue
		}
		out = append(out, test)
	}
	return out, nil
}

func (m *memTestRepo) GetByID(ctx context.Context, id string) (models.Test, error) {
	test, ok := m.tests[id]
	if !ok {
		return models.Test{}, repository.ErrNotFound
	}
	return test, nil
}

func (m *memTestRepo) Create(ctx context.Context, test *models.Test) error {
	m.nextID++
	test.ID = fmt.Sprintf("test-%d", m.nextID)
	test.CreatedAt = "2026-01-01T00:00:00Z"
	m.tests[test.ID] = *test
	return nil
}

func (m *memTestRepo) Update(ctx context.Context, test models.Test) error {
	if _, ok := m.tests[test.ID]; !ok {
		return repository.ErrNotFound
	}
	m.tests[test.ID] = test
	return nil
}

func (m *memTestRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.tests[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tests, id)
	return nil
}

type memSubmissionRepo struct {
	submissions map[string]models.Submission
	nextID      int
	batchCalls  int
}

func newMemSubmissionRepo() *memSubmissionRepo {
	return &memSubmissionRepo{submissions: make(map[string]models.Submission)}
}

func (m *memSubmissionRepo) List(ctx context.Context, filter repository.SubmissionFilter) ([]models.Submission, error) {
	out := make([]models.Submission, 0, len(m.submissions))
	for _, submission := range m.submissions {
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
		out = append(out, submission)
	}
	return out, nil
}

func (m *memSubmissionRepo) GetByID(ctx context.Context, id string) (models.Submission, error) {
	submission, ok := m.submissions[id]
	if !ok {
		return models.Submission{}, repository.ErrNotFound
	}
	return submission, nil
}

func (m *memSubmissionRepo) Create(ctx context.Context, submission *models.Submission) error {
	m.nextID++
	submission.ID = fmt.Sprintf("submission-%d", m.nextID)
	submission.CreatedAt = "2026-01-01T00:00:00Z"
	m.submissions[submission.ID] = *submission
	return nil
}

func (m *memSubmissionRepo) CreateBatch(ctx context.Context, submissions []models.Submission) error {
	m.batchCalls++
	for i := range submissions {
		if err := m.Create(ctx, &submissions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *memSubmissionRepo) Update(ctx context.Context, submission models.Submission) error {
	if _, ok := m.submissions[submission.ID]; !ok {
		return repository.ErrNotFound
	}
	m.submissions[submission.ID] = submission
	return nil
}

func (m *memSubmissionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.submissions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.submissions, id)
	return nil
}

type memDetailRepo struct {
	details map[string]models.SubmissionDetail
	nextID  int
}

func newMemDetailRepo() *memDetailRepo {
	return &memDetailRepo{details: make(map[string]models.SubmissionDetail)}
}

func (m *memDetailRepo) ListBySubmission(ctx context.Context, submissionID string) ([]models.SubmissionDetail, error) {
	out := make([]models.SubmissionDetail, 0, len(m.details))
	for _, detail := range m.details {
		if detail.SubmissionID == submissionID {
			out = append(out, detail)
		}
	}
	return out, nil
}

func (m *memDetailRepo) GetByID(ctx context.Context, id string) (models.SubmissionDetail, error) {
	detail, ok := m.details[id]
	if !ok {
		return models.SubmissionDetail{}, repository.ErrNotFound
	}
	return detail, nil
}

func (m *memDetailRepo) Create(ctx context.Context, detail *models.SubmissionDetail) error {
	m.nextID++
	detail.ID = fmt.Sprintf("detail-%d", m.nextID)
	m.details[detail.ID] = *detail
	return nil
}

func (m *memDetailRepo) Update(ctx context.Context, detail models.SubmissionDetail) error {
	if _, ok := m.details[detail.ID]; !ok {
		return repository.ErrNotFound
	}
	m.details[detail.ID] = detail
	return nil
}

func (m *memDetailRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.details[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.details, id)
	return nil
}

type memRubricRepo struct {
	rubrics map[string]models.Rubric
	nextID  int
}

func newMemRubricRepo() *memRubricRepo {
	return &memRubricRepo{rubrics: make(map[string]models.Rubric)}
}

func (m *memRubricRepo) ListByTest(ctx context.Context, testID string) ([]models.Rubric, error) {
	out := make([]models.Rubric, 0, len(m.rubrics))
	for _, rubric := range m.rubrics {
		if rubric.TestID == testID {
			out = append(out, rubric)
		}
	}
	return out, nil
}

func (m *memRubricRepo) GetByID(ctx context.Context, id string) (models.Rubric, error) {
	rubric, ok := m.rubrics[id]
	if !ok {
		return models.Rubric{}, repository.ErrNotFound
	}
	return rubric, nil
}

func (m *memRubricRepo) Create(ctx context.Context, rubric *models.Rubric) error {
	m.nextID++
	rubric.ID = fmt.Sprintf("rubric-%d", m.nextID)
	m.rubrics[rubric.ID] = *rubric
	return nil
}

func (m *memRubricRepo) Update(ctx context.Context, rubric models.Rubric) error {
	if _, ok := m.rubrics[rubric.ID]; !ok {
		return repository.ErrNotFound
	}
	m.rubrics[rubric.ID] = rubric
	return nil
}

func (m *memRubricRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.rubrics[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rubrics, id)
	return nil
}
