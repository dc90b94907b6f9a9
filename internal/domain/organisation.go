package domain

import (
	"context"
	"time"
)

// Organisation represents an NGO or community organisation that posts
// opportunities. Verified is toggled by staff admins only.
type Organisation struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,max=200"`
	Description  string    `json:"description" validate:"required"`
	ContactEmail string    `json:"contact_email" validate:"required,email"`
	Website      *string   `json:"website,omitempty" validate:"omitempty,url"`
	Verified     bool      `json:"verified"`
	AdminUserID  int64     `json:"admin_user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type OrganisationRepository interface {
	Create(ctx context.Context, org *Organisation) error
	GetByID(ctx context.Context, id int64) (*Organisation, error)
	FetchByAdminUserID(ctx context.Context, userID int64) ([]Organisation, error)
	Update(ctx context.Context, org *Organisation) error
	SetVerified(ctx context.Context, id int64, verified bool) error
}

// OrganisationSummary is the org-admin dashboard payload.
type OrganisationSummary struct {
	Organisation        Organisation `json:"organisation"`
	OpenOpportunities   int          `json:"open_opportunities"`
	ClosedOpportunities int          `json:"closed_opportunities"`
	PendingApplications int          `json:"pending_applications"`
}

type OrganisationUsecase interface {
	Register(ctx context.Context, userID int64, org *Organisation) error
	GetMine(ctx context.Context, userID int64) ([]Organisation, error)
	GetSummary(ctx context.Context, userID int64) ([]OrganisationSummary, error)
	Update(ctx context.Context, userID int64, org *Organisation) error
	Verify(ctx context.Context, id int64, verified bool) error
}
