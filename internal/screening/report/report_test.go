package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentscout/screening/internal/screening/model"
)

func strPtr(s string) *string { return &s }

func record(position, techStack, experience string, avg float64) *model.CandidateRecord {
	info := model.CandidateProfile{Name: strPtr("Candidate")}
	if position != "" {
		info.Position = strPtr(position)
	}
	if techStack != "" {
		info.TechStack = strPtr(techStack)
	}
	if experience != "" {
		info.Experience = strPtr(experience)
	}
	return &model.CandidateRecord{
		SessionID:         "20240101_090000",
		Timestamp:         "2024-01-01T09:00:00Z",
		CandidateInfo:     info,
		SentimentAnalysis: model.SentimentSummary{AverageSentiment: avg},
	}
}

func TestBuildStatistics(t *testing.T) {
	records := []*model.CandidateRecord{
		record("Backend Engineer", "Go, Redis", "5 years", 0.7),
		record("Backend Engineer", "Go, PostgreSQL", "3 years", 0.5),
		record("Data Engineer", "Python", "", 0.4),
		record("", "", "", 0.5),
	}

	stats := BuildStatistics(records)

	assert.Equal(t, 4, stats.TotalCandidates)
	assert.Equal(t, 2, stats.Positions["Backend Engineer"])
	assert.Equal(t, 1, stats.Positions["Data Engineer"])
	assert.Equal(t, 1, stats.Positions["Unknown"])
	assert.Equal(t, 2, stats.TechStack["Go"])
	assert.Equal(t, 1, stats.TechStack["Redis"])
	assert.InDelta(t, 4.0, stats.AverageExperienceYears, 1e-9)
}

func TestBuildStatisticsEmpty(t *testing.T) {
	stats := BuildStatistics(nil)
	assert.Zero(t, stats.TotalCandidates)
	assert.Zero(t, stats.AverageExperienceYears)
	assert.Empty(t, stats.Positions)
	assert.Empty(t, stats.TechStack)
}

func TestTopTechnologies(t *testing.T) {
	stats := BuildStatistics([]*model.CandidateRecord{
		record("", "Go, Redis, Kubernetes", "", 0.5),
		record("", "Go, Redis", "", 0.5),
		record("", "Go", "", 0.5),
	})

	top := stats.TopTechnologies(2)
	require.Len(t, top, 2)
	assert.Equal(t, []string{"Go", "Redis"}, top)
}

func TestAssessmentBands(t *testing.T) {
	assert.Contains(t, Assessment(0.8), "positive engagement")
	assert.Contains(t, Assessment(0.5), "neutral composure")
	assert.Contains(t, Assessment(0.2), "nervous or uncertain")
}

func TestFormatCandidateHandlesMissingFields(t *testing.T) {
	out := FormatCandidate(record("", "", "", 0.5))
	assert.Contains(t, out, "Candidate")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "neutral composure")
}
