// Package report aggregates stored candidate records into the read-side
// summaries the recruitment team works from: per-candidate digests and
// corpus-wide statistics.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/talentscout/screening/internal/screening/model"
)

// Statistics summarizes a set of candidate records.
type Statistics struct {
	TotalCandidates        int
	AverageExperienceYears float64
	Positions              map[string]int
	TechStack              map[string]int
}

// BuildStatistics aggregates position counts, tech-stack mentions
// (comma-split) and average experience years across records. Records with
// unparseable experience strings contribute nothing to the average.
func BuildStatistics(records []*model.CandidateRecord) Statistics {
	stats := Statistics{
		TotalCandidates: len(records),
		Positions:       make(map[string]int),
		TechStack:       make(map[string]int),
	}

	var years []int
	for _, record := range records {
		info := record.CandidateInfo

		position := "Unknown"
		if info.Position != nil {
			position = *info.Position
		}
		stats.Positions[position]++

		if info.TechStack != nil {
			for _, skill := range strings.Split(*info.TechStack, ",") {
				skill = strings.TrimSpace(skill)
				if skill != "" {
					stats.TechStack[skill]++
				}
			}
		}

		if info.Experience != nil && strings.Contains(*info.Experience, "year") {
			if n, ok := parseYears(*info.Experience); ok {
				years = append(years, n)
			}
		}
	}

	if len(years) > 0 {
		var sum int
		for _, n := range years {
			sum += n
		}
		stats.AverageExperienceYears = float64(sum) / float64(len(years))
	}
	return stats
}

// TopTechnologies returns up to limit technologies by mention count,
// most mentioned first. Ties break alphabetically for stable output.
func (s Statistics) TopTechnologies(limit int) []string {
	techs := make([]string, 0, len(s.TechStack))
	for tech := range s.TechStack {
		techs = append(techs, tech)
	}
	sort.Slice(techs, func(i, j int) bool {
		if s.TechStack[techs[i]] != s.TechStack[techs[j]] {
			return s.TechStack[techs[i]] > s.TechStack[techs[j]]
		}
		return techs[i] < techs[j]
	})
	if limit > 0 && len(techs) > limit {
		techs = techs[:limit]
	}
	return techs
}

// Assessment maps an average sentiment score to the reviewer-facing
// engagement summary.
func Assessment(avgSentiment float64) string {
	switch {
	case avgSentiment > 0.6:
		return "Candidate showed positive engagement throughout the interview."
	case avgSentiment > 0.4:
		return "Candidate maintained neutral composure during the interview."
	default:
		return "Candidate may have been nervous or uncertain. Consider follow-up."
	}
}

// FormatCandidate renders a one-candidate text digest.
func FormatCandidate(record *model.CandidateRecord) string {
	info := record.CandidateInfo
	avg := record.SentimentAnalysis.AverageSentiment

	var b strings.Builder
	fmt.Fprintf(&b, "Candidate %s (session %s, %s)\n", orNA(info.Name), record.SessionID, record.Timestamp)
	fmt.Fprintf(&b, "  Email:      %s\n", orNA(info.Email))
	fmt.Fprintf(&b, "  Phone:      %s\n", orNA(info.Phone))
	fmt.Fprintf(&b, "  Experience: %s\n", orNA(info.Experience))
	fmt.Fprintf(&b, "  Position:   %s\n", orNA(info.Position))
	fmt.Fprintf(&b, "  Location:   %s\n", orNA(info.Location))
	fmt.Fprintf(&b, "  Tech stack: %s\n", orNA(info.TechStack))
	fmt.Fprintf(&b, "  Sentiment:  %.2f - %s\n", avg, Assessment(avg))
	return b.String()
}

func parseYears(experience string) (int, bool) {
	var digits strings.Builder
	for _, r := range experience {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

func orNA(p *string) string {
	if p == nil {
		return "N/A"
	}
	return *p
}
