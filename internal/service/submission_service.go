package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/repository"
)

// ErrSubmissionNotFound indicates the requested submission does not exist.
var ErrSubmissionNotFound = errors.New("submission not found")

// ErrInvalidTransition indicates a status change outside the transition
// table.
var ErrInvalidTransition = errors.New("invalid submission status transition")

// ErrDuplicateSubmission indicates a second submission for the same
// (test, student) pair.
var ErrDuplicateSubmission = errors.New("submission already exists for this test and student")

// ErrTestNotAssigned indicates the test is not assigned to the named class.
var ErrTestNotAssigned = errors.New("test is not assigned to this class")

// BulkCreateResult summarises one bulk enrolment run.
type BulkCreateResult struct {
	Created []models.Submission `json:"created"`
	Skipped int                 `json:"skipped"`
}

// SubmissionService exposes grading workflow use cases.
type SubmissionService interface {
	List(ctx context.Context, filter repository.SubmissionFilter) ([]models.Submission, error)
	Get(ctx context.Context, id string) (models.Submission, error)
	Create(ctx context.Context, payload dto.SubmissionCreateRequest) (models.Submission, error)
	BulkCreate(ctx context.Context, testID, classID string) (BulkCreateResult, error)
	Update(ctx context.Context, id string, payload dto.SubmissionUpdateRequest) (models.Submission, error)
	Delete(ctx context.Context, id string) error

	Start(ctx context.Context, id string) (models.Submission, error)
	Finalize(ctx context.Context, id string, payload dto.SubmissionFinalizeRequest) (models.Submission, error)
	Reopen(ctx context.Context, id string) (models.Submission, error)
	MarkAbsent(ctx context.Context, id string) (models.Submission, error)
	MarkPresent(ctx context.Context, id string) (models.Submission, error)
}

type submissionService struct {
	repo      repository.SubmissionRepository
	tests     repository.TestRepository
	students  repository.StudentRepository
	classes   repository.ClassRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewSubmissionService builds a new submission service.
func NewSubmissionService(
	repo repository.SubmissionRepository,
	tests repository.TestRepository,
	students repository.StudentRepository,
	classes repository.ClassRepository,
	validate *validator.Validate,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionService{
		repo:      repo,
		tests:     tests,
		students:  students,
		classes:   classes,
		validator: validate,
		logger:    logger.With().Str("component", "submission_service").Logger(),
		now:       time.Now,
	}
}

func (s *submissionService) List(ctx context.Context, filter repository.SubmissionFilter) ([]models.Submission, error) {
	return s.repo.List(ctx, filter)
}

func (s *submissionService) Get(ctx context.Context, id string) (models.Submission, error) {
	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Submission{}, ErrSubmissionNotFound
		}

		return models.Submission{}, err
	}

	return submission, nil
}

func (s *submissionService) Create(ctx context.Context, payload dto.SubmissionCreateRequest) (models.Submission, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Submission{}, err
	}

	test, err := s.tests.GetByID(ctx, payload.TestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Submission{}, ErrTestNotFound
		}

		return models.Submission{}, err
	}
	if !test.AssignedTo(payload.ClassID) {
		return models.Submission{}, ErrTestNotAssigned
	}
	if _, err := s.students.GetByID(ctx, payload.StudentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Submission{}, ErrStudentNotFound
		}

		return models.Submission{}, err
	}

	existing, err := s.repo.List(ctx, repository.SubmissionFilter{TestID: payload.TestID, StudentID: payload.StudentID})
	if err != nil {
		return models.Submission{}, err
	}
	if len(existing) > 0 {
		return models.Submission{}, ErrDuplicateSubmission
	}

	submission := models.Submission{
		TestID:       payload.TestID,
		StudentID:    payload.StudentID,
		ClassID:      payload.ClassID,
		Status:       models.SubmissionStatusNew,
		DriveFileIDs: payload.DriveFileIDs,
		Notes:        payload.Notes,
	}
	if err := s.repo.Create(ctx, &submission); err != nil {
		return models.Submission{}, err
	}

	return submission, nil
}

// BulkCreate enrols every student of the class into the test with a fresh
// submission. Students that already have one are skipped, so retrying a
// half-finished run never produces duplicate rows.
func (s *submissionService) BulkCreate(ctx context.Context, testID, classID string) (BulkCreateResult, error) {
	test, err := s.tests.GetByID(ctx, testID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return BulkCreateResult{}, ErrTestNotFound
		}

		return BulkCreateResult{}, err
	}
	if !test.AssignedTo(classID) {
		return BulkCreateResult{}, ErrTestNotAssigned
	}

	class, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return BulkCreateResult{}, ErrClassNotFound
		}

		return BulkCreateResult{}, err
	}

	roster, err := s.students.List(ctx, repository.StudentFilter{ClassName: class.ClassName, SchoolYear: class.SchoolYear})
	if err != nil {
		return BulkCreateResult{}, err
	}

	existing, err := s.repo.List(ctx, repository.SubmissionFilter{TestID: testID})
	if err != nil {
		return BulkCreateResult{}, err
	}
	enrolled := make(map[string]struct{}, len(existing))
	for _, sub := range existing {
		enrolled[sub.StudentID] = struct{}{}
	}

	result := BulkCreateResult{Created: []models.Submission{}}
	batch := make([]models.Submission, 0, len(roster))
	for _, student := range roster {
		if _, ok := enrolled[student.ID]; ok {
			result.Skipped++
			continue
		}
		batch = append(batch, models.Submission{
			TestID:    testID,
			StudentID: student.ID,
			ClassID:   classID,
			Status:    models.SubmissionStatusNew,
		})
	}

	if len(batch) > 0 {
		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			return BulkCreateResult{}, err
		}
		result.Created = batch
	}

	s.logger.Info().
		Str("test_id", testID).
		Str("class_id", classID).
		Int("created", len(result.Created)).
		Int("skipped", result.Skipped).
		Msg("submissions bulk created")

	return result, nil
}

func (s *submissionService) Update(ctx context.Context, id string, payload dto.SubmissionUpdateRequest) (models.Submission, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Submission{}, err
	}

	submission, err := s.Get(ctx, id)
	if err != nil {
		return models.Submission{}, err
	}

	if payload.Grade != nil {
		submission.Grade = payload.Grade
	}
	if payload.AIGrade != nil {
		submission.AIGrade = payload.AIGrade
	}
	if payload.DriveFileIDs != nil {
		submission.DriveFileIDs = *payload.DriveFileIDs
	}
	if payload.Notes != nil {
		submission.Notes = *payload.Notes
	}

	if err := s.repo.Update(ctx, submission); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Submission{}, ErrSubmissionNotFound
		}

		return models.Submission{}, err
	}

	return submission, nil
}

func (s *submissionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubmissionNotFound
		}

		return err
	}

	return nil
}

// Start moves a fresh submission into correcting.
func (s *submissionService) Start(ctx context.Context, id string) (models.Submission, error) {
	return s.transition(ctx, id, models.SubmissionStatusNew, models.SubmissionStatusCorrecting, nil)
}

// Finalize moves a submission under correction to corrected, recording the
// grade and stamping corrected_at.
func (s *submissionService) Finalize(ctx context.Context, id string, payload dto.SubmissionFinalizeRequest) (models.Submission, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Submission{}, err
	}

	return s.transition(ctx, id, models.SubmissionStatusCorrecting, models.SubmissionStatusCorrected, func(submission *models.Submission) {
		if payload.Grade != nil {
			submission.Grade = payload.Grade
		}
		if payload.Notes != nil {
			submission.Notes = *payload.Notes
		}
		submission.CorrectedAt = s.now().UTC().Format(time.RFC3339)
	})
}

// Reopen moves a corrected submission back to correcting. The previous
// grade and corrected_at survive until the next Finalize overwrites them.
func (s *submissionService) Reopen(ctx context.Context, id string) (models.Submission, error) {
	return s.transition(ctx, id, models.SubmissionStatusCorrected, models.SubmissionStatusCorrecting, nil)
}

// MarkAbsent records that the student did not sit the test.
func (s *submissionService) MarkAbsent(ctx context.Context, id string) (models.Submission, error) {
	return s.transition(ctx, id, models.SubmissionStatusNew, models.SubmissionStatusAbsent, nil)
}

// MarkPresent undoes an absence, returning the submission to new.
func (s *submissionService) MarkPresent(ctx context.Context, id string) (models.Submission, error) {
	return s.transition(ctx, id, models.SubmissionStatusAbsent, models.SubmissionStatusNew, nil)
}

// transition pins the originating state: new→correcting and
// corrected→correcting share a target, so checking the table alone would let
// a reopen double as a start.
func (s *submissionService) transition(ctx context.Context, id string, from, next models.SubmissionStatus, apply func(*models.Submission)) (models.Submission, error) {
	submission, err := s.Get(ctx, id)
	if err != nil {
		return models.Submission{}, err
	}

	if submission.Status != from || !submission.Status.CanTransition(next) {
		return models.Submission{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, submission.Status, next)
	}

	submission.Status = next
	if apply != nil {
		apply(&submission)
	}

	if err := s.repo.Update(ctx, submission); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Submission{}, ErrSubmissionNotFound
		}

		return models.Submission{}, err
	}

	s.logger.Info().
		Str("submission_id", id).
		Str("from", string(from)).
		Str("to", string(next)).
		Msg("submission status changed")

	return submission, nil
}
