package domain

import (
	"context"
	"time"
)

// VolunteerProfile is the extended profile for volunteer users.
// Skills and interests are free text (comma-separated or prose) — the
// matching engine tokenizes them, the store never does. Availability
// maps a weekday name to a free-text time window, e.g. "monday":
// "evenings after 6pm"; it is a coarse signal, not a schedule.
type VolunteerProfile struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	Skills          string            `json:"skills"`
	Interests       string            `json:"interests"`
	Availability    map[string]string `json:"availability"`
	MaxHoursPerWeek int               `json:"max_hours_per_week" validate:"gte=0"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ParticipationRecord tracks hours a volunteer actually logged against
// an opportunity.
type ParticipationRecord struct {
	ID               int64     `json:"id"`
	VolunteerID      int64     `json:"volunteer_id"`
	OpportunityID    int64     `json:"opportunity_id"`
	OpportunityTitle string    `json:"opportunity_title,omitempty"`
	HoursLogged      float64   `json:"hours_logged" validate:"gte=0"`
	Date             time.Time `json:"date"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// OpportunityHours aggregates logged hours per opportunity for the
// dashboard chart.
type OpportunityHours struct {
	OpportunityID    int64   `json:"opportunity_id"`
	OpportunityTitle string  `json:"opportunity_title"`
	TotalHours       float64 `json:"total_hours"`
}

type VolunteerRepository interface {
	GetProfileByUserID(ctx context.Context, userID int64) (*VolunteerProfile, error)
	CreateProfile(ctx context.Context, profile *VolunteerProfile) error
	UpdateProfile(ctx context.Context, profile *VolunteerProfile) error

	CreateParticipation(ctx context.Context, rec *ParticipationRecord) error
	FetchParticipation(ctx context.Context, volunteerID int64) ([]ParticipationRecord, error)
	TotalLoggedHours(ctx context.Context, volunteerID int64) (float64, error)
	LoggedHoursByOpportunity(ctx context.Context, volunteerID int64, limit int) ([]OpportunityHours, error)
}

// Dashboard is the volunteer landing-page summary.
type Dashboard struct {
	Profile            *VolunteerProfile     `json:"profile"`
	TotalHours         float64               `json:"total_hours"`
	HoursByOpportunity []OpportunityHours    `json:"hours_by_opportunity"`
	RecentRecords      []ParticipationRecord `json:"recent_records"`
	ActiveApplications []Application         `json:"active_applications"`
}

// ScheduleEntry is one accepted commitment on the volunteer's schedule.
type ScheduleEntry struct {
	Opportunity  Opportunity `json:"opportunity"`
	Application  Application `json:"application"`
	HoursPerWeek int         `json:"hours_per_week"`
}

// Schedule is the volunteer's current commitment load against their
// weekly budget.
type Schedule struct {
	Entries           []ScheduleEntry `json:"entries"`
	TotalHours        int             `json:"total_hours"`
	MaxHours          int             `json:"max_hours"`
	RemainingCapacity int             `json:"remaining_capacity"`
}

type VolunteerUsecase interface {
	GetOrCreateProfile(ctx context.Context, userID int64) (*VolunteerProfile, error)
	UpdateProfile(ctx context.Context, profile *VolunteerProfile) error
	GetDashboard(ctx context.Context, userID int64) (*Dashboard, error)
	GetSchedule(ctx context.Context, userID int64) (*Schedule, error)
	GetRecommendations(ctx context.Context, userID int64, limit int) ([]Recommendation, error)
	LogHours(ctx context.Context, rec *ParticipationRecord) error
	ListParticipation(ctx context.Context, userID int64) ([]ParticipationRecord, float64, error)
}

// Recommendation pairs an opportunity with its composite match score
// (0–100).
type Recommendation struct {
	Opportunity Opportunity `json:"opportunity"`
	Score       float64     `json:"score"`
}
