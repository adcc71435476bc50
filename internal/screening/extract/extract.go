// Package extract pulls structured candidate fields out of free-form chat
// messages. Only fields with a reliable lexical shape (email, phone, years
// of experience) are extracted here; name, position, location and tech
// stack are elicited by the chat model and filled in conversationally.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/talentscout/screening/internal/screening/model"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// "5 years of experience" and "experience of 5 years", matched against
	// the lowercased message; first hit wins.
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)`),
		regexp.MustCompile(`(?:experience|exp)(?:\s+of)?\s+(\d+)\s*(?:years?|yrs?)`),
	}
)

// Scan runs the three field extractions over message and commits each hit
// to profile only when the field is still unset. Candidates that fail
// validation are dropped silently; the field simply stays unset. The
// returned map holds the fields newly committed by this call.
func Scan(message string, profile *model.CandidateProfile) map[string]string {
	found := make(map[string]string)

	if profile.Email == nil {
		if m := emailPattern.FindString(message); m != "" && ValidEmail(m) {
			profile.Email = &m
			found["email"] = m
		}
	}

	if profile.Phone == nil {
		if m := phonePattern.FindString(message); m != "" && ValidPhone(m) {
			profile.Phone = &m
			found["phone"] = m
		}
	}

	if profile.Experience == nil {
		lower := strings.ToLower(message)
		for _, p := range experiencePatterns {
			if g := p.FindStringSubmatch(lower); g != nil {
				exp := fmt.Sprintf("%s years", g[1])
				profile.Experience = &exp
				found["experience"] = exp
				break
			}
		}
	}

	return found
}
