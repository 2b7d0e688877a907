package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/dto"
	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/repository"
	"github.com/sorinslavic/graide-api/internal/workspace"
)

// WorkspaceService exposes setup, verification and per-workspace settings.
type WorkspaceService interface {
	Status(ctx context.Context) dto.WorkspaceStatusResponse
	Initialize(ctx context.Context, payload dto.WorkspaceInitRequest) (dto.WorkspaceStatusResponse, error)
	Verify(ctx context.Context) (dto.WorkspaceStatusResponse, error)
	Reconcile(ctx context.Context) (workspace.ReconcileResult, error)
	Reset(ctx context.Context) error

	GetConfig(ctx context.Context, key string) (string, bool, error)
	SetConfig(ctx context.Context, payload dto.ConfigSetRequest) error
	ListConfig(ctx context.Context) ([]models.ConfigEntry, error)
}

type workspaceService struct {
	bootstrapper *workspace.Bootstrapper
	reconciler   *workspace.Reconciler
	wctx         *workspace.Context
	config       repository.ConfigRepository
	validator    *validator.Validate
	logger       zerolog.Logger
}

// NewWorkspaceService builds a new workspace service.
func NewWorkspaceService(
	bootstrapper *workspace.Bootstrapper,
	reconciler *workspace.Reconciler,
	wctx *workspace.Context,
	config repository.ConfigRepository,
	validate *validator.Validate,
	logger zerolog.Logger,
) WorkspaceService {
	return &workspaceService{
		bootstrapper: bootstrapper,
		reconciler:   reconciler,
		wctx:         wctx,
		config:       config,
		validator:    validate,
		logger:       logger.With().Str("component", "workspace_service").Logger(),
	}
}

func (s *workspaceService) Status(ctx context.Context) dto.WorkspaceStatusResponse {
	return statusResponse(s.wctx.State())
}

// Initialize points the workspace at a Drive folder, provisions the
// spreadsheet inside it and brings its schema up to date.
func (s *workspaceService) Initialize(ctx context.Context, payload dto.WorkspaceInitRequest) (dto.WorkspaceStatusResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.WorkspaceStatusResponse{}, err
	}

	state, err := s.bootstrapper.Initialize(ctx, payload.FolderURL)
	if err != nil {
		return dto.WorkspaceStatusResponse{}, err
	}

	if _, err := s.reconciler.Run(ctx); err != nil {
		return dto.WorkspaceStatusResponse{}, err
	}

	s.logger.Info().Str("spreadsheet_id", state.SpreadsheetID).Msg("workspace initialized")

	return statusResponse(state), nil
}

// Verify re-checks every cached Drive id against the live workspace and
// drops the ones that no longer resolve.
func (s *workspaceService) Verify(ctx context.Context) (dto.WorkspaceStatusResponse, error) {
	state, err := s.bootstrapper.Verify(ctx)
	if err != nil {
		return dto.WorkspaceStatusResponse{}, err
	}

	return statusResponse(state), nil
}

func (s *workspaceService) Reconcile(ctx context.Context) (workspace.ReconcileResult, error) {
	return s.reconciler.Run(ctx)
}

func (s *workspaceService) Reset(ctx context.Context) error {
	if err := s.wctx.Reset(); err != nil {
		return err
	}

	s.logger.Info().Msg("workspace cache cleared")

	return nil
}

func (s *workspaceService) GetConfig(ctx context.Context, key string) (string, bool, error) {
	return s.config.Get(ctx, key)
}

func (s *workspaceService) SetConfig(ctx context.Context, payload dto.ConfigSetRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	return s.config.Set(ctx, payload.Key, payload.Value)
}

func (s *workspaceService) ListConfig(ctx context.Context) ([]models.ConfigEntry, error) {
	return s.config.All(ctx)
}

func statusResponse(state workspace.State) dto.WorkspaceStatusResponse {
	return dto.WorkspaceStatusResponse{
		Initialized:       state.SpreadsheetID != "",
		FolderID:          state.FolderID,
		OrganizedFolderID: state.OrganizedFolderID,
		SpreadsheetID:     state.SpreadsheetID,
	}
}
