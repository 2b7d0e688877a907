package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/repository"
)

// ErrStudentNotFound indicates the requested student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// StudentService exposes roster use cases.
type StudentService interface {
	List(ctx context.Context, filter repository.StudentFilter) ([]models.Student, error)
	Get(ctx context.Context, id string) (models.Student, error)
	Create(ctx context.Context, payload dto.StudentCreateRequest) (models.Student, error)
	Update(ctx context.Context, id string, payload dto.StudentUpdateRequest) (models.Student, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentService builds a new student service.
func NewStudentService(repo repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context, filter repository.StudentFilter) ([]models.Student, error) {
	filter.ClassName = strings.ToUpper(filter.ClassName)
	return s.repo.List(ctx, filter)
}

func (s *studentService) Get(ctx context.Context, id string) (models.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Student{}, ErrStudentNotFound
		}

		return models.Student{}, err
	}

	return student, nil
}

func (s *studentService) Create(ctx context.Context, payload dto.StudentCreateRequest) (models.Student, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Student{}, err
	}

	student := models.Student{
		ClassName:  strings.ToUpper(payload.ClassName),
		SchoolYear: payload.SchoolYear,
		Name:       payload.Name,
		StudentNum: payload.StudentNum,
	}
	if err := s.repo.Create(ctx, &student); err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Str("student_id", student.ID).Str("class_name", student.ClassName).Msg("student added")

	return student, nil
}

func (s *studentService) Update(ctx context.Context, id string, payload dto.StudentUpdateRequest) (models.Student, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Student{}, err
	}

	student, err := s.Get(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	if payload.ClassName != nil {
		student.ClassName = strings.ToUpper(*payload.ClassName)
	}
	if payload.SchoolYear != nil {
		student.SchoolYear = *payload.SchoolYear
	}
	if payload.Name != nil {
		student.Name = *payload.Name
	}
	if payload.StudentNum != nil {
		student.StudentNum = *payload.StudentNum
	}

	if err := s.repo.Update(ctx, student); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Student{}, ErrStudentNotFound
		}

		return models.Student{}, err
	}

	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStudentNotFound
		}

		return err
	}

	return nil
}
