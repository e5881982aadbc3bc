package app

import (
	"context"

	"gameportal/config"
	"gameportal/internal/database"
	"gameportal/internal/jobs"
	"gameportal/internal/logger"
	"gameportal/internal/repositories"
	"gameportal/internal/services"
)

type App struct {
	Database     database.DB
	Config       config.Config
	Repositories repositories.Repository
	Services     services.Service
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	svcs := services.New(db, repos)

	// Register jobs with scheduler if enabled
	if config.SchedulerEnabled {
		generationJob := jobs.NewRecommendationGenerationJob(
			svcs.Recommendation,
			services.Daily,
		)
		if err := svcs.Scheduler.AddJob(generationJob); err != nil {
			return &App{}, log.Err("failed to register recommendation generation job", err)
		}
		log.Info("Registered recommendation generation job with scheduler")
	}

	app := &App{
		Database:     db,
		Config:       config,
		Repositories: repos,
		Services:     svcs,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Transaction,
		a.Services.Scheduler,
		a.Services.RecommendationCalculation,
		a.Services.Recommendation,
		a.Services.Game,
		a.Services.PlayHistory,
		a.Services.User,
		a.Repositories.User,
		a.Repositories.Game,
		a.Repositories.PlayHistory,
		a.Repositories.Recommendation,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
