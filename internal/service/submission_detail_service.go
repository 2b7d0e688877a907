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

// ErrDetailNotFound indicates the requested mistake entry does not exist.
var ErrDetailNotFound = errors.New("submission detail not found")

// SubmissionDetailService exposes per-mistake annotation use cases.
type SubmissionDetailService interface {
	ListBySubmission(ctx context.Context, submissionID string) ([]models.SubmissionDetail, error)
	Get(ctx context.Context, id string) (models.SubmissionDetail, error)
	Create(ctx context.Context, payload dto.SubmissionDetailCreateRequest) (models.SubmissionDetail, error)
	Update(ctx context.Context, id string, payload dto.SubmissionDetailUpdateRequest) (models.SubmissionDetail, error)
	Delete(ctx context.Context, id string) error
}

type submissionDetailService struct {
	repo        repository.SubmissionDetailRepository
	submissions repository.SubmissionRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewSubmissionDetailService builds a new submission detail service.
func NewSubmissionDetailService(repo repository.SubmissionDetailRepository, submissions repository.SubmissionRepository, validate *validator.Validate, logger zerolog.Logger) SubmissionDetailService {
	return &submissionDetailService{
		repo:        repo,
		submissions: submissions,
		validator:   validate,
		logger:      logger.With().Str("component", "submission_detail_service").Logger(),
	}
}

func (s *submissionDetailService) ListBySubmission(ctx context.Context, submissionID string) ([]models.SubmissionDetail, error) {
	return s.repo.ListBySubmission(ctx, submissionID)
}

func (s *submissionDetailService) Get(ctx context.Context, id string) (models.SubmissionDetail, error) {
	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.SubmissionDetail{}, ErrDetailNotFound
		}

		return models.SubmissionDetail{}, err
	}

	return detail, nil
}

func (s *submissionDetailService) Create(ctx context.Context, payload dto.SubmissionDetailCreateRequest) (models.SubmissionDetail, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.SubmissionDetail{}, err
	}

	if _, err := s.submissions.GetByID(ctx, payload.SubmissionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.SubmissionDetail{}, ErrSubmissionNotFound
		}

		return models.SubmissionDetail{}, err
	}

	detail := models.SubmissionDetail{
		SubmissionID:   payload.SubmissionID,
		FileID:         payload.FileID,
		QuestionNum:    payload.QuestionNum,
		MistakeType:    models.MistakeType(payload.MistakeType),
		Description:    payload.Description,
		PointsDeducted: payload.PointsDeducted,
		AINotes:        payload.AINotes,
		TeacherNotes:   payload.TeacherNotes,
		AIConfidence:   payload.AIConfidence,
	}
	if err := s.repo.Create(ctx, &detail); err != nil {
		return models.SubmissionDetail{}, err
	}

	return detail, nil
}

func (s *submissionDetailService) Update(ctx context.Context, id string, payload dto.SubmissionDetailUpdateRequest) (models.SubmissionDetail, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.SubmissionDetail{}, err
	}

	detail, err := s.Get(ctx, id)
	if err != nil {
		return models.SubmissionDetail{}, err
	}

	if payload.QuestionNum != nil {
		detail.QuestionNum = *payload.QuestionNum
	}
	if payload.MistakeType != nil {
		detail.MistakeType = models.MistakeType(*payload.MistakeType)
	}
	if payload.Description != nil {
		detail.Description = *payload.Description
	}
	if payload.PointsDeducted != nil {
		detail.PointsDeducted = *payload.PointsDeducted
	}
	if payload.TeacherNotes != nil {
		detail.TeacherNotes = *payload.TeacherNotes
	}

	if err := s.repo.Update(ctx, detail); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.SubmissionDetail{}, ErrDetailNotFound
		}

		return models.SubmissionDetail{}, err
	}

	return detail, nil
}

func (s *submissionDetailService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDetailNotFound
		}

		return err
	}

	return nil
}
