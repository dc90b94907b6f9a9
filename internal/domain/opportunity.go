package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Opportunity status
const (
	OpportunityStatusOpen   = "OPEN"
	OpportunityStatusClosed = "CLOSED"
)

// Opportunity categories
const (
	CategoryEducation   = "EDUCATION"
	CategoryHealthcare  = "HEALTHCARE"
	CategoryEnvironment = "ENVIRONMENT"
	CategoryCommunity   = "COMMUNITY"
	CategoryAnimals     = "ANIMALS"
	CategoryArts        = "ARTS"
	CategorySports      = "SPORTS"
	CategoryTechnology  = "TECHNOLOGY"
	CategoryOther       = "OTHER"
)

// Categories lists the valid opportunity categories.
var Categories = []string{
	CategoryEducation, CategoryHealthcare, CategoryEnvironment,
	CategoryCommunity, CategoryAnimals, CategoryArts,
	CategorySports, CategoryTechnology, CategoryOther,
}

// Opportunity is a volunteering opportunity posted by an organisation.
// RequiredSkills is free text, matched heuristically by the engine.
// MinHoursPerWeek is the fixed weekly cost a volunteer takes on when
// their application is accepted.
type Opportunity struct {
	ID              int64     `json:"id"`
	OrganisationID  int64     `json:"organisation_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	RequiredSkills  string    `json:"required_skills"`
	MinHoursPerWeek int       `json:"min_hours_per_week" validate:"gte=0"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	IsRemote        bool      `json:"is_remote"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined data for list responses
	OrganisationName string `json:"organisation_name,omitempty"`
}

// OpportunityFilter narrows public browsing. Zero values mean "no
// filter" except IsRemote, which is tri-state via pointer.
type OpportunityFilter struct {
	Category string
	Location string
	IsRemote *bool
	Search   string
}

type OpportunityRepository interface {
	Create(ctx context.Context, opp *Opportunity) error
	GetByID(ctx context.Context, id int64) (*Opportunity, error)
	FetchOpen(ctx context.Context, filter OpportunityFilter) ([]Opportunity, error)
	FetchByOrganisationIDs(ctx context.Context, orgIDs []int64) ([]Opportunity, error)
	Update(ctx context.Context, opp *Opportunity) error
	Delete(ctx context.Context, id int64) error
}

type OpportunityUsecase interface {
	Browse(ctx context.Context, filter OpportunityFilter) ([]Opportunity, error)
	GetDetails(ctx context.Context, id int64) (*Opportunity, error)
	Create(ctx context.Context, userID int64, opp *Opportunity) error
	Update(ctx context.Context, userID int64, opp *Opportunity) error
	Delete(ctx context.Context, userID int64, id int64) error
	ListByOwner(ctx context.Context, userID int64) ([]Opportunity, error)
}
