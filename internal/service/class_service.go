package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/repository"
)

// ErrClassNotFound indicates the requested class does not exist.
var ErrClassNotFound = errors.New("class not found")

// ClassService exposes class roster use cases.
type ClassService interface {
	List(ctx context.Context, schoolYear string) ([]models.Class, error)
	Get(ctx context.Context, id string) (models.Class, error)
	Create(ctx context.Context, payload dto.ClassCreateRequest) (models.Class, error)
	Update(ctx context.Context, id string, payload dto.ClassUpdateRequest) (models.Class, error)
	Delete(ctx context.Context, id string) error
}

type classService struct {
	repo      repository.ClassRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewClassService builds a new class service.
func NewClassService(repo repository.ClassRepository, validate *validator.Validate, logger zerolog.Logger) ClassService {
	return &classService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "class_service").Logger(),
		now:       time.Now,
	}
}

func (s *classService) List(ctx context.Context, schoolYear string) ([]models.Class, error) {
	return s.repo.List(ctx, schoolYear)
}

func (s *classService) Get(ctx context.Context, id string) (models.Class, error) {
	class, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Class{}, ErrClassNotFound
		}

		return models.Class{}, err
	}

	return class, nil
}

func (s *classService) Create(ctx context.Context, payload dto.ClassCreateRequest) (models.Class, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Class{}, err
	}

	class := models.Class{
		Subject:    payload.Subject,
		ClassName:  strings.ToUpper(payload.ClassName),
		GradeLevel: payload.GradeLevel,
		SchoolYear: payload.SchoolYear,
	}
	if err := s.repo.Create(ctx, &class); err != nil {
		return models.Class{}, err
	}

	s.logger.Info().Str("class_id", class.ID).Str("class_name", class.ClassName).Msg("class created")

	return class, nil
}

func (s *classService) Update(ctx context.Context, id string, payload dto.ClassUpdateRequest) (models.Class, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Class{}, err
	}

	class, err := s.Get(ctx, id)
	if err != nil {
		return models.Class{}, err
	}

	if payload.Subject != nil {
		class.Subject = *payload.Subject
	}
	if payload.ClassName != nil {
		class.ClassName = strings.ToUpper(*payload.ClassName)
	}
	if payload.GradeLevel != nil {
		class.GradeLevel = *payload.GradeLevel
	}
	if payload.SchoolYear != nil {
		class.SchoolYear = *payload.SchoolYear
	}

	if err := s.repo.Update(ctx, class); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Class{}, ErrClassNotFound
		}

		return models.Class{}, err
	}

	return class, nil
}

// Delete removes the class row only. Tests, students and submissions that
// reference the class keep their rows and dangle until cleaned up by hand.
func (s *classService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClassNotFound
		}

		return err
	}

	s.logger.Info().Str("class_id", id).Msg("class deleted")

	return nil
}
