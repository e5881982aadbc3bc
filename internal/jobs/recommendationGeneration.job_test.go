package jobs

import (
	"testing"

	"gameportal/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationGenerationJob_Name(t *testing.T) {
	job := &RecommendationGenerationJob{}
	assert.Equal(t, "RecommendationGeneration", job.Name())
}

func TestRecommendationGenerationJob_Schedule(t *testing.T) {
	job := NewRecommendationGenerationJob(nil, services.Daily)
	assert.Equal(t, services.Daily, job.Schedule())
}
