package jobs

import (
	"context"

	"gameportal/internal/logger"
	"gameportal/internal/services"
)

// RecommendationGenerationJob recomputes every user's recommendation
// set on a schedule.
type RecommendationGenerationJob struct {
	recommendationService *services.RecommendationService
	log                   logger.Logger
	schedule              services.Schedule
}

func NewRecommendationGenerationJob(
	recommendationService *services.RecommendationService,
	schedule services.Schedule,
) *RecommendationGenerationJob {
	log := logger.New("recommendationGenerationJob")
	log.Info("Creating new recommendation generation job", "schedule", schedule)

	return &RecommendationGenerationJob{
		recommendationService: recommendationService,
		log:                   log,
		schedule:              schedule,
	}
}

func (j *RecommendationGenerationJob) Name() string {
	return "RecommendationGeneration"
}

func (j *RecommendationGenerationJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	log.Info("Starting recommendation generation")

	report, err := j.recommendationService.GenerateForAllUsers(ctx)
	if err != nil {
		return log.Err("recommendation generation failed", err)
	}

	log.Info(
		"Recommendation generation completed",
		"totalUsers", report.Total,
		"successful", report.Success,
		"skipped", report.Skipped,
		"errors", report.Errors,
	)
	return nil
}

func (j *RecommendationGenerationJob) Schedule() services.Schedule {
	return j.schedule
}
