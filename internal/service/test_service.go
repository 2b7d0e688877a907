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

// ErrTestNotFound indicates the requested test does not exist.
var ErrTestNotFound = errors.New("test not found")

// ErrInvalidDeadline indicates a deadline earlier than the hand-out date.
var ErrInvalidDeadline = errors.New("deadline is before given_at")

const dateLayout = "2006-01-02"

// TestService exposes assessment use cases.
type TestService interface {
	List(ctx context.Context, filter repository.TestFilter) ([]models.Test, error)
	Get(ctx context.Context, id string) (models.Test, error)
	Create(ctx context.Context, payload dto.TestCreateRequest) (models.Test, error)
	Update(ctx context.Context, id string, payload dto.TestUpdateRequest) (models.Test, error)
	Delete(ctx context.Context, id string) error
}

type testService struct {
	repo      repository.TestRepository
	classes   repository.ClassRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewTestService builds a new test service.
func NewTestService(repo repository.TestRepository, classes repository.ClassRepository, validate *validator.Validate, logger zerolog.Logger) TestService {
	return &testService{
		repo:      repo,
		classes:   classes,
		validator: validate,
		logger:    logger.With().Str("component", "test_service").Logger(),
		now:       time.Now,
	}
}

func (s *testService) List(ctx context.Context, filter repository.TestFilter) ([]models.Test, error) {
	return s.repo.List(ctx, filter)
}

func (s *testService) Get(ctx context.Context, id string) (models.Test, error) {
	test, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Test{}, ErrTestNotFound
		}

		return models.Test{}, err
	}

	return test, nil
}

func (s *testService) Create(ctx context.Context, payload dto.TestCreateRequest) (models.Test, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Test{}, err
	}

	if err := s.resolveClasses(ctx, payload.ClassIDs); err != nil {
		return models.Test{}, err
	}

	test := models.Test{
		Name:          payload.Name,
		Type:          models.TestType(payload.Type),
		ClassIDs:      payload.ClassIDs,
		GivenAt:       payload.GivenAt,
		Deadline:      payload.Deadline,
		GradingSystem: models.GradingSystem(payload.GradingSystem),
		MaxScore:      payload.MaxScore,
		Status:        models.TestStatusActive,
		DriveFolderID: payload.DriveFolderID,
	}
	if err := normalizeDeadline(&test); err != nil {
		return models.Test{}, err
	}

	if err := s.repo.Create(ctx, &test); err != nil {
		return models.Test{}, err
	}

	s.logger.Info().Str("test_id", test.ID).Str("type", string(test.Type)).Int("classes", len(test.ClassIDs)).Msg("test created")

	return test, nil
}

func (s *testService) Update(ctx context.Context, id string, payload dto.TestUpdateRequest) (models.Test, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Test{}, err
	}

	test, err := s.Get(ctx, id)
	if err != nil {
		return models.Test{}, err
	}

	if payload.Name != nil {
		test.Name = *payload.Name
	}
	if payload.Type != nil {
		test.Type = models.TestType(*payload.Type)
	}
	if payload.ClassIDs != nil {
		if err := s.resolveClasses(ctx, *payload.ClassIDs); err != nil {
			return models.Test{}, err
		}
		test.ClassIDs = *payload.ClassIDs
	}
	if payload.GivenAt != nil {
		test.GivenAt = *payload.GivenAt
	}
	if payload.Deadline != nil {
		test.Deadline = *payload.Deadline
	}
	if payload.GradingSystem != nil {
		test.GradingSystem = models.GradingSystem(*payload.GradingSystem)
	}
	if payload.MaxScore != nil {
		test.MaxScore = *payload.MaxScore
	}
	if payload.Status != nil {
		test.Status = models.TestStatus(*payload.Status)
	}
	if payload.DriveFolderID != nil {
		test.DriveFolderID = *payload.DriveFolderID
	}

	if err := normalizeDeadline(&test); err != nil {
		return models.Test{}, err
	}

	if err := s.repo.Update(ctx, test); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Test{}, ErrTestNotFound
		}

		return models.Test{}, err
	}

	return test, nil
}

// Delete removes the test row only. Submissions that reference it keep
// their rows.
func (s *testService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTestNotFound
		}

		return err
	}

	s.logger.Info().Str("test_id", id).Msg("test deleted")

	return nil
}

// resolveClasses requires every referenced class id to exist.
func (s *testService) resolveClasses(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := s.classes.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrClassNotFound, id)
			}

			return err
		}
	}

	return nil
}

// normalizeDeadline enforces the deadline rules. In-class assessments
// (tests and quizzes) are handed in the day they are given, so their
// deadline always equals given_at. Take-home work defaults its deadline
// to given_at and may never be due before it.
func normalizeDeadline(test *models.Test) error {
	if test.Type.SameDay() {
		test.Deadline = test.GivenAt
		return nil
	}

	if test.Deadline == "" {
		test.Deadline = test.GivenAt
		return nil
	}

	given, err := time.Parse(dateLayout, test.GivenAt)
	if err != nil {
		return fmt.Errorf("parse given_at: %w", err)
	}
	deadline, err := time.Parse(dateLayout, test.Deadline)
	if err != nil {
		return fmt.Errorf("parse deadline: %w", err)
	}
	if deadline.Before(given) {
		return ErrInvalidDeadline
	}

	return nil
}
