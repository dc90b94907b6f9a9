// Package matching is the decision core of the platform: pure
// functions that score opportunities against a volunteer's profile and
// keep accepted commitments inside the volunteer's weekly hour budget.
// Everything here operates on point-in-time snapshots passed by the
// caller — no I/O, no clock reads, no shared state — so every function
// is safe to call concurrently and deterministic under test.
package matching

import (
	"math"
	"strings"
	"time"

	"go-volink-backend/internal/domain"
	"go-volink-backend/pkg/textmatch"
)

// SubScores are the four independent compatibility dimensions, each
// in [0, 1].
type SubScores struct {
	Skills       float64 `json:"skills"`
	Interests    float64 `json:"interests"`
	Availability float64 `json:"availability"`
	Location     float64 `json:"location"`
}

// SkillsOverlap scores how well a volunteer's free-text skills cover an
// opportunity's required skills. Both sides are comma-tokenized; a
// required token also counts as matched when it appears anywhere in the
// volunteer's raw skill text, which covers prose entries that were
// never comma-delimited. Empty input on either side scores 0.
func SkillsOverlap(volunteerSkills, requiredSkills string) float64 {
	if volunteerSkills == "" || requiredSkills == "" {
		return 0.0
	}

	volunteerTokens := textmatch.Tokenize(volunteerSkills)
	requiredTokens := textmatch.Tokenize(requiredSkills)
	volunteerText := strings.ToLower(volunteerSkills)

	matches := 0
	for _, req := range requiredTokens {
		if textmatch.ContainsToken(volunteerTokens, req) || strings.Contains(volunteerText, req) {
			matches++
		}
	}

	total := len(requiredTokens)
	if total < 1 {
		total = 1
	}
	return math.Min(float64(matches)/float64(total), 1.0)
}

// InterestMatch is binary: 1 when the opportunity's category or one of
// its keyword synonyms appears in the volunteer's interest text, else 0.
func InterestMatch(volunteerInterests, opportunityCategory string) float64 {
	if volunteerInterests == "" {
		return 0.0
	}

	interests := strings.ToLower(volunteerInterests)
	category := strings.ToLower(opportunityCategory)

	if strings.Contains(interests, category) {
		return 1.0
	}
	if textmatch.ContainsAny(interests, categoryKeywords[category]) {
		return 1.0
	}
	return 0.0
}

// AvailabilityScore is a coarse temporal compatibility check, not
// interval intersection. No declared availability is a neutral 0.5.
// Future-dated and still-ongoing opportunities score 1; fully elapsed
// ones score 0. today is injected so the function stays deterministic;
// comparisons are at day granularity.
func AvailabilityScore(availability map[string]string, startDate, endDate, today time.Time) float64 {
	if len(availability) == 0 {
		return 0.5
	}
	if startDate.After(today) {
		return 1.0
	}
	if !endDate.Before(today) {
		return 1.0
	}
	return 0.0
}

// LocationScore reflects remote/on-site modality preference. Declared
// availability doubles as the profile-completeness signal: without it
// we have no preference data and return the neutral 0.5. Remote
// opportunities score 1; on-site ones stay neutral rather than being
// penalised.
func LocationScore(availability map[string]string, isRemote bool) float64 {
	if len(availability) == 0 {
		return 0.5
	}
	if isRemote {
		return 1.0
	}
	return 0.5
}

// ScoreCompatibility computes all four sub-scores for one
// profile/opportunity pairing. A nil profile scores like an empty one.
func ScoreCompatibility(profile *domain.VolunteerProfile, opp *domain.Opportunity, today time.Time) SubScores {
	var skills, interests string
	var availability map[string]string
	if profile != nil {
		skills = profile.Skills
		interests = profile.Interests
		availability = profile.Availability
	}

	return SubScores{
		Skills:       SkillsOverlap(skills, opp.RequiredSkills),
		Interests:    InterestMatch(interests, opp.Category),
		Availability: AvailabilityScore(availability, opp.StartDate, opp.EndDate, today),
		Location:     LocationScore(availability, opp.IsRemote),
	}
}
