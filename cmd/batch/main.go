package main

import (
	"context"
	"os"

	"gameportal/internal/app"
	"gameportal/internal/logger"
)

// One-shot recommendation recomputation across every user. Per-user
// failures are reported in the summary without aborting the run.
func main() {
	log := logger.New("batch").Function("main")

	app, err := app.New()
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Er("failed to close app", err)
		}
	}()

	report, err := app.Services.Recommendation.GenerateForAllUsers(context.Background())
	if err != nil {
		log.Er("recommendation generation failed", err)
		os.Exit(1)
	}

	log.Info(
		"Recommendation generation completed",
		"totalUsers", report.Total,
		"successful", report.Success,
		"skipped", report.Skipped,
		"errors", report.Errors,
	)
}
