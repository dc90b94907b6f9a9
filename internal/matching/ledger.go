package matching

import "go-volink-backend/internal/domain"

// CheckAdmission decides whether taking on the candidate opportunity
// would push the volunteer past their weekly hour budget. acceptedHours
// carries min_hours_per_week for each of the volunteer's ACCEPTED
// applications.
//
// A nil profile means the volunteer has not declared a limit yet: the
// ledger admits unconditionally with zero current hours. This
// permissive default is a deliberate policy, not a fallback — see the
// matching tests that pin it.
func CheckAdmission(profile *domain.VolunteerProfile, acceptedHours []int, candidate *domain.Opportunity) domain.Admission {
	if profile == nil {
		return domain.Admission{
			CanAdmit:     true,
			CurrentHours: 0,
			WouldBeHours: candidate.MinHoursPerWeek,
		}
	}

	current := 0
	for _, h := range acceptedHours {
		current += h
	}
	wouldBe := current + candidate.MinHoursPerWeek

	return domain.Admission{
		CanAdmit:          wouldBe <= profile.MaxHoursPerWeek,
		CurrentHours:      current,
		WouldBeHours:      wouldBe,
		RemainingCapacity: clampNonNegative(profile.MaxHoursPerWeek - current),
	}
}

// CommittedHours sums the weekly cost of the accepted commitments.
func CommittedHours(acceptedHours []int) int {
	total := 0
	for _, h := range acceptedHours {
		total += h
	}
	return total
}

// RemainingCapacity is the volunteer's unspent weekly budget, clamped
// at zero even if a manual override left them over budget.
func RemainingCapacity(profile *domain.VolunteerProfile, acceptedHours []int) int {
	if profile == nil {
		return 0
	}
	return clampNonNegative(profile.MaxHoursPerWeek - CommittedHours(acceptedHours))
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
