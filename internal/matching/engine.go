package matching

import (
	"sort"
	"time"

	"go-volink-backend/internal/domain"
)

// Engine ranks candidate opportunities for a volunteer. It holds only
// the weight configuration; every Recommend call recomputes from the
// snapshots it is handed, so calls are independent and idempotent.
type Engine struct {
	weights Weights
}

func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// Recommend scores each candidate, drops those the capacity ledger
// refuses to admit, and returns up to limit results sorted by
// descending composite score. Candidates are expected to be
// pre-filtered to OPEN by the caller; the engine does not re-check
// status. Ties keep the candidates' input order (stable sort), so
// identical snapshots always produce identical output.
func (e *Engine) Recommend(profile *domain.VolunteerProfile, candidates []domain.Opportunity, acceptedHours []int, limit int, today time.Time) []domain.Recommendation {
	maxHours := 0
	if profile != nil {
		maxHours = profile.MaxHoursPerWeek
	}

	recommendations := make([]domain.Recommendation, 0, len(candidates))
	for i := range candidates {
		opp := candidates[i]

		// Admission gate: opportunities that would breach the budget
		// are excluded entirely, not down-ranked.
		admission := CheckAdmission(profile, acceptedHours, &opp)
		if !admission.CanAdmit {
			continue
		}

		sub := ScoreCompatibility(profile, &opp, today)
		score := sub.Skills*e.weights.Skills +
			sub.Interests*e.weights.Interests +
			sub.Availability*e.weights.Availability +
			sub.Location*e.weights.Location

		// The fit check intentionally runs against the declared max
		// even on the permissive no-profile path, where maxHours is 0
		// and only the partial bonus is reachable.
		if admission.CurrentHours+opp.MinHoursPerWeek <= maxHours {
			score += e.weights.FullFitBonus
		} else {
			score += e.weights.PartialFitBonus
		}

		recommendations = append(recommendations, domain.Recommendation{
			Opportunity: opp,
			Score:       score,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if limit > 0 && len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}
