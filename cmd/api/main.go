package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/config"
	"github.com/sorinslavic/graide-api/internal/handler"
	"github.com/sorinslavic/graide-api/internal/middleware"
	"github.com/sorinslavic/graide-api/internal/repository"
	"github.com/sorinslavic/graide-api/internal/router"
	"github.com/sorinslavic/graide-api/internal/service"
	"github.com/sorinslavic/graide-api/internal/sheetdb"
	"github.com/sorinslavic/graide-api/internal/workspace"
	"github.com/sorinslavic/graide-api/pkg/googleapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	client := googleapi.NewClient(googleapi.ContextTokenSource{}, logger)
	sheets := googleapi.NewSheets(client, cfg.SheetsBaseURL)
	drive := googleapi.NewDrive(client, cfg.DriveBaseURL)

	cache := workspace.NewFileCache(filepath.Join(cfg.WorkspaceCacheDir, "workspace.json"))
	wctx, err := workspace.NewContext(cache)
	if err != nil {
		log.Fatalf("failed to load workspace cache: %v", err)
	}

	store := sheetdb.New(sheets, wctx, logger)

	classRepo := repository.NewClassRepository(store)
	studentRepo := repository.NewStudentRepository(store)
	testRepo := repository.NewTestRepository(store)
	submissionRepo := repository.NewSubmissionRepository(store)
	detailRepo := repository.NewSubmissionDetailRepository(store)
	rubricRepo := repository.NewRubricRepository(store)
	configRepo := repository.NewConfigRepository(store)

	bootstrapper := workspace.NewBootstrapper(sheets, drive, wctx, cfg.SpreadsheetName, logger)
	reconciler := workspace.NewReconciler(sheets, wctx, configRepo, logger)

	validate := validator.New(validator.WithRequiredStructEnabled())

	classService := service.NewClassService(classRepo, validate, logger)
	studentService := service.NewStudentService(studentRepo, validate, logger)
	testService := service.NewTestService(testRepo, classRepo, validate, logger)
	submissionService := service.NewSubmissionService(submissionRepo, testRepo, studentRepo, classRepo, validate, logger)
	detailService := service.NewSubmissionDetailService(detailRepo, submissionRepo, validate, logger)
	rubricService := service.NewRubricService(rubricRepo, testRepo, validate, logger)
	workspaceService := service.NewWorkspaceService(bootstrapper, reconciler, wctx, configRepo, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ClassHandler:            handler.NewClassHandler(classService, logger),
		StudentHandler:          handler.NewStudentHandler(studentService, logger),
		TestHandler:             handler.NewTestHandler(testService, submissionService, rubricService, logger),
		SubmissionHandler:       handler.NewSubmissionHandler(submissionService, detailService, logger),
		SubmissionDetailHandler: handler.NewSubmissionDetailHandler(detailService, logger),
		RubricHandler:           handler.NewRubricHandler(rubricService, logger),
		WorkspaceHandler:        handler.NewWorkspaceHandler(workspaceService, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
