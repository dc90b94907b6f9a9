package matching_test

import (
	"testing"
	"time"

	"go-volink-backend/internal/domain"
	"go-volink-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSkillsOverlap(t *testing.T) {
	tests := []struct {
		name      string
		volunteer string
		required  string
		want      float64
	}{
		{"exact match", "Python, JavaScript, Teaching", "Python, Teaching", 1.0},
		{"partial match", "Python, Cooking", "Python, Teaching", 0.5},
		{"no shared tokens", "Cooking, Gardening", "Python, Teaching", 0.0},
		{"empty volunteer skills", "", "Python", 0.0},
		{"empty required skills", "Python", "", 0.0},
		{"case insensitive", "PYTHON", "python", 1.0},
		{"free text substring", "I know Python and some SQL", "Python", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, matching.SkillsOverlap(tt.volunteer, tt.required), 1e-9)
		})
	}
}

func TestSkillsOverlapMonotonic(t *testing.T) {
	// More matched required tokens never lowers the score.
	required := "Python, Teaching, SQL, Cooking"
	prev := 0.0
	for _, volunteer := range []string{"Python", "Python, Teaching", "Python, Teaching, SQL", "Python, Teaching, SQL, Cooking"} {
		score := matching.SkillsOverlap(volunteer, required)
		assert.GreaterOrEqual(t, score, prev, "volunteer=%q", volunteer)
		prev = score
	}
	assert.InDelta(t, 1.0, prev, 1e-9)
}

func TestInterestMatchIsBinary(t *testing.T) {
	tests := []struct {
		name      string
		interests string
		category  string
		want      float64
	}{
		{"direct category match", "Education, Technology", "EDUCATION", 1.0},
		{"keyword synonym match", "I love teaching kids", "EDUCATION", 1.0},
		{"tech keyword", "programming and digital things", "TECHNOLOGY", 1.0},
		{"no match", "Sports and fitness", "EDUCATION", 0.0},
		{"empty interests", "", "EDUCATION", 0.0},
		{"unknown category no keywords", "whatever", "OTHER", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matching.InterestMatch(tt.interests, tt.category)
			assert.Contains(t, []float64{0.0, 1.0}, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailabilityScore(t *testing.T) {
	today := date(2026, time.March, 10)
	avail := map[string]string{"monday": "evenings"}

	tests := []struct {
		name         string
		availability map[string]string
		start, end   time.Time
		want         float64
	}{
		{"no availability is neutral", nil, date(2026, time.April, 1), date(2026, time.May, 1), 0.5},
		{"future opportunity", avail, date(2026, time.April, 1), date(2026, time.May, 1), 1.0},
		{"ongoing opportunity", avail, date(2026, time.February, 1), date(2026, time.March, 10), 1.0},
		{"elapsed opportunity", avail, date(2026, time.January, 1), date(2026, time.February, 1), 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matching.AvailabilityScore(tt.availability, tt.start, tt.end, today))
		})
	}
}

func TestLocationScore(t *testing.T) {
	avail := map[string]string{"saturday": "mornings"}
	assert.Equal(t, 0.5, matching.LocationScore(nil, true), "no availability data is neutral")
	assert.Equal(t, 1.0, matching.LocationScore(avail, true))
	assert.Equal(t, 0.5, matching.LocationScore(avail, false), "on-site stays neutral")
}

func TestScoreCompatibilityNilProfile(t *testing.T) {
	opp := &domain.Opportunity{
		Category:       domain.CategoryEducation,
		RequiredSkills: "Teaching",
		StartDate:      date(2026, time.April, 1),
		EndDate:        date(2026, time.May, 1),
		IsRemote:       true,
	}
	sub := matching.ScoreCompatibility(nil, opp, date(2026, time.March, 1))
	assert.Equal(t, 0.0, sub.Skills)
	assert.Equal(t, 0.0, sub.Interests)
	assert.Equal(t, 0.5, sub.Availability)
	assert.Equal(t, 0.5, sub.Location)
}
