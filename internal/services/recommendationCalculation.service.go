package services

import (
	. "gameportal/internal/models"

	"github.com/shopspring/decimal"
)

// RecommendationCalculationService holds the scoring algorithms. Both
// are pure functions over tag sets: no I/O, no shared state, safe to
// call concurrently.
type RecommendationCalculationService struct{}

func NewRecommendationCalculationService() *RecommendationCalculationService {
	return &RecommendationCalculationService{}
}

// CalculateScore computes the frequency-weighted tag-overlap score of a
// candidate game against a user's play history.
//
// Every tag of every played game counts once, so a tag seen in three
// played games carries weight 3. The candidate's matched weight is
// normalized by the best case, every candidate tag matching the single
// most frequent played tag, which keeps the result in [0, 1].
func (s *RecommendationCalculationService) CalculateScore(
	playedGameTags []GameTags,
	candidateTags GameTags,
) (Score, error) {
	tagFrequency := make(map[string]int)
	playedCount := 0
	for _, tags := range playedGameTags {
		for _, tag := range tags {
			tagFrequency[tag]++
			playedCount++
		}
	}

	if playedCount == 0 || len(candidateTags) == 0 {
		return ZeroScore(), nil
	}

	matchScore := 0
	for _, tag := range candidateTags {
		matchScore += tagFrequency[tag]
	}

	maxFrequency := 0
	for _, frequency := range tagFrequency {
		if frequency > maxFrequency {
			maxFrequency = frequency
		}
	}

	maxPossibleScore := len(candidateTags) * maxFrequency
	if maxPossibleScore == 0 {
		return ZeroScore(), nil
	}

	normalized := decimal.NewFromInt(int64(matchScore)).
		Div(decimal.NewFromInt(int64(maxPossibleScore)))

	return NewScore(normalized)
}

// CalculateJaccardSimilarity computes intersection-over-union set
// similarity between the user's played tags and the candidate's tags.
// Alternate algorithm, not used by the default generation pipeline.
func (s *RecommendationCalculationService) CalculateJaccardSimilarity(
	playedGameTags []GameTags,
	candidateTags GameTags,
) (Score, error) {
	playedSet := make(map[string]struct{})
	for _, tags := range playedGameTags {
		for _, tag := range tags {
			playedSet[tag] = struct{}{}
		}
	}

	candidateSet := make(map[string]struct{}, len(candidateTags))
	for _, tag := range candidateTags {
		candidateSet[tag] = struct{}{}
	}

	if len(playedSet) == 0 || len(candidateSet) == 0 {
		return ZeroScore(), nil
	}

	intersection := 0
	for tag := range candidateSet {
		if _, ok := playedSet[tag]; ok {
			intersection++
		}
	}

	union := len(playedSet) + len(candidateSet) - intersection

	similarity := decimal.NewFromInt(int64(intersection)).
		Div(decimal.NewFromInt(int64(union)))

	return NewScore(similarity)
}
