package matching_test

import (
	"testing"

	"go-volink-backend/internal/domain"
	"go-volink-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func profileWithMax(max int) *domain.VolunteerProfile {
	return &domain.VolunteerProfile{UserID: 1, MaxHoursPerWeek: max}
}

func oppCosting(hours int) *domain.Opportunity {
	return &domain.Opportunity{ID: 1, MinHoursPerWeek: hours, Status: domain.OpportunityStatusOpen}
}

func TestCheckAdmissionWithinLimit(t *testing.T) {
	adm := matching.CheckAdmission(profileWithMax(10), nil, oppCosting(5))

	assert.True(t, adm.CanAdmit)
	assert.Equal(t, 0, adm.CurrentHours)
	assert.Equal(t, 5, adm.WouldBeHours)
	assert.Equal(t, 10, adm.RemainingCapacity)
}

func TestCheckAdmissionExceedsLimit(t *testing.T) {
	adm := matching.CheckAdmission(profileWithMax(10), nil, oppCosting(15))

	assert.False(t, adm.CanAdmit)
	assert.Equal(t, 15, adm.WouldBeHours)
}

func TestCheckAdmissionWithExistingCommitments(t *testing.T) {
	adm := matching.CheckAdmission(profileWithMax(10), []int{6}, oppCosting(5))

	assert.False(t, adm.CanAdmit)
	assert.Equal(t, 6, adm.CurrentHours)
	assert.Equal(t, 11, adm.WouldBeHours)
	assert.Equal(t, 4, adm.RemainingCapacity)
}

func TestCheckAdmissionExactFit(t *testing.T) {
	adm := matching.CheckAdmission(profileWithMax(10), []int{5}, oppCosting(5))

	assert.True(t, adm.CanAdmit, "would-be hours equal to the max is still admissible")
	assert.Equal(t, 10, adm.WouldBeHours)
}

// A volunteer without a profile has no declared limit to violate:
// admission succeeds unconditionally and current hours report as zero,
// regardless of any accepted commitments. Deliberate policy.
func TestCheckAdmissionNoProfile(t *testing.T) {
	adm := matching.CheckAdmission(nil, []int{6, 4}, oppCosting(50))

	assert.True(t, adm.CanAdmit)
	assert.Equal(t, 0, adm.CurrentHours)
	assert.Equal(t, 50, adm.WouldBeHours)
	assert.Equal(t, 0, adm.RemainingCapacity)
}

func TestCheckAdmissionSumInvariant(t *testing.T) {
	for _, hours := range [][]int{nil, {3}, {3, 4}, {1, 2, 3, 4}} {
		adm := matching.CheckAdmission(profileWithMax(20), hours, oppCosting(7))
		assert.Equal(t, adm.CurrentHours+7, adm.WouldBeHours)
		assert.Equal(t, adm.WouldBeHours <= 20, adm.CanAdmit)
	}
}

func TestRemainingCapacityNeverNegative(t *testing.T) {
	// Over budget via manual override: clamp at zero.
	assert.Equal(t, 0, matching.RemainingCapacity(profileWithMax(10), []int{8, 8}))
	assert.Equal(t, 2, matching.RemainingCapacity(profileWithMax(10), []int{8}))
	assert.Equal(t, 0, matching.RemainingCapacity(nil, []int{8}))
}

func TestCommittedHours(t *testing.T) {
	assert.Equal(t, 0, matching.CommittedHours(nil))
	assert.Equal(t, 11, matching.CommittedHours([]int{5, 6}))
}
