package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/repository"
)

// ErrRubricNotFound indicates the requested rubric does not exist.
var ErrRubricNotFound = errors.New("rubric not found")

// RubricService exposes answer-key use cases.
type RubricService interface {
	ListByTest(ctx context.Context, testID string) ([]models.Rubric, error)
	Get(ctx context.Context, id string) (models.Rubric, error)
	Create(ctx context.Context, payload dto.RubricCreateRequest) (models.Rubric, error)
	Update(ctx context.Context, id string, payload dto.RubricUpdateRequest) (models.Rubric, error)
	Delete(ctx context.Context, id string) error
}

type rubricService struct {
	repo      repository.RubricRepository
	tests     repository.TestRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewRubricService builds a new rubric service.
func NewRubricService(repo repository.RubricRepository, tests repository.TestRepository, validate *validator.Validate, logger zerolog.Logger) RubricService {
	return &rubricService{
		repo:      repo,
		tests:     tests,
		validator: validate,
		logger:    logger.With().Str("component", "rubric_service").Logger(),
	}
}

func (s *rubricService) ListByTest(ctx context.Context, testID string) ([]models.Rubric, error) {
	return s.repo.ListByTest(ctx, testID)
}

func (s *rubricService) Get(ctx context.Context, id string) (models.Rubric, error) {
	rubric, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Rubric{}, ErrRubricNotFound
		}

		return models.Rubric{}, err
	}

	return rubric, nil
}

func (s *rubricService) Create(ctx context.Context, payload dto.RubricCreateRequest) (models.Rubric, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Rubric{}, err
	}

	if _, err := s.tests.GetByID(ctx, payload.TestID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Rubric{}, ErrTestNotFound
		}

		return models.Rubric{}, err
	}

	rubric := models.Rubric{
		TestID:        payload.TestID,
		QuestionNum:   payload.QuestionNum,
		AnswerKey:     payload.AnswerKey,
		PartialCredit: payload.PartialCredit,
		MaxPoints:     payload.MaxPoints,
	}
	if err := s.repo.Create(ctx, &rubric); err != nil {
		return models.Rubric{}, err
	}

	return rubric, nil
}

func (s *rubricService) Update(ctx context.Context, id string, payload dto.RubricUpdateRequest) (models.Rubric, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Rubric{}, err
	}

	rubric, err := s.Get(ctx, id)
	if err != nil {
		return models.Rubric{}, err
	}

	if payload.QuestionNum != nil {
		rubric.QuestionNum = *payload.QuestionNum
	}
	if payload.AnswerKey != nil {
		rubric.AnswerKey = *payload.AnswerKey
	}
	if payload.PartialCredit != nil {
		rubric.PartialCredit = *payload.PartialCredit
	}
	if payload.MaxPoints != nil {
		rubric.MaxPoints = *payload.MaxPoints
	}

	if err := s.repo.Update(ctx, rubric); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Rubric{}, ErrRubricNotFound
		}

		return models.Rubric{}, err
	}

	return rubric, nil
}

func (s *rubricService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRubricNotFound
		}

		return err
	}

	return nil
}
