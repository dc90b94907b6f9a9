package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending   = "PENDING"
	ApplicationStatusAccepted  = "ACCEPTED"
	ApplicationStatusRejected  = "REJECTED"
	ApplicationStatusWithdrawn = "WITHDRAWN"
)

// Application links one volunteer to one opportunity. At most one
// application exists per (volunteer, opportunity) pair; withdrawal is
// a status transition, never a delete.
type Application struct {
	ID            int64     `json:"id"`
	VolunteerID   int64     `json:"volunteer_id"`
	OpportunityID int64     `json:"opportunity_id"`
	Status        string    `json:"status"` // PENDING → ACCEPTED / REJECTED, or WITHDRAWN
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Joined data for list responses
	VolunteerName    *string `json:"volunteer_name,omitempty"`
	OpportunityTitle *string `json:"opportunity_title,omitempty"`
}

// ApplicationRepository defines data access methods for applications.
// AcceptedHoursByVolunteer returns the min_hours_per_week of every
// ACCEPTED application's opportunity — the snapshot the capacity
// ledger computes over.
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByVolunteerAndOpportunity(ctx context.Context, volunteerID, opportunityID int64) (*Application, error)
	FetchByVolunteer(ctx context.Context, volunteerID int64) ([]Application, error)
	FetchByVolunteerAndStatuses(ctx context.Context, volunteerID int64, statuses []string, limit int) ([]Application, error)
	FetchByOpportunity(ctx context.Context, opportunityID int64) ([]Application, error)
	FetchAcceptedWithOpportunities(ctx context.Context, volunteerID int64) ([]Application, []Opportunity, error)
	AcceptedHoursByVolunteer(ctx context.Context, volunteerID int64) ([]int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// Admission is the capacity-ledger verdict for one candidate
// opportunity.
type Admission struct {
	CanAdmit          bool `json:"can_admit"`
	CurrentHours      int  `json:"current_hours"`
	WouldBeHours      int  `json:"would_be_hours"`
	RemainingCapacity int  `json:"remaining_capacity"`
}

type ApplicationUsecase interface {
	// Volunteer operations
	Apply(ctx context.Context, volunteerID, opportunityID int64) (*Application, error)
	CheckAdmission(ctx context.Context, volunteerID, opportunityID int64) (*Admission, error)
	GetMyApplications(ctx context.Context, volunteerID int64) ([]Application, error)
	Withdraw(ctx context.Context, volunteerID, applicationID int64) error

	// Organisation operations
	ListByOpportunity(ctx context.Context, userID, opportunityID int64) ([]Application, error)
	Decide(ctx context.Context, userID, applicationID int64, status string) error
}
