package usecase

import (
	"context"
	"time"

	"go-volink-backend/internal/domain"
	"go-volink-backend/pkg/apperror"
)

type opportunityUsecase struct {
	opportunityRepo  domain.OpportunityRepository
	organisationRepo domain.OrganisationRepository
}

func NewOpportunityUsecase(
	opportunityRepo domain.OpportunityRepository,
	organisationRepo domain.OrganisationRepository,
) domain.OpportunityUsecase {
	return &opportunityUsecase{
		opportunityRepo:  opportunityRepo,
		organisationRepo: organisationRepo,
	}
}

// Browse lists OPEN opportunities with optional filters. Status
// filtering happens here, at the record-store boundary — downstream
// consumers (including the matching engine) receive only OPEN rows.
func (u *opportunityUsecase) Browse(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, error) {
	return u.opportunityRepo.FetchOpen(ctx, filter)
}

func (u *opportunityUsecase) GetDetails(ctx context.Context, id int64) (*domain.Opportunity, error) {
	opp, err := u.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Opportunity not found")
	}
	return opp, nil
}

func (u *opportunityUsecase) Create(ctx context.Context, userID int64, opp *domain.Opportunity) error {
	org, err := u.ownedOrganisation(ctx, userID, opp.OrganisationID)
	if err != nil {
		return err
	}
	opp.OrganisationID = org.ID

	if err := validateOpportunity(opp); err != nil {
		return err
	}
	if opp.Status == "" {
		opp.Status = domain.OpportunityStatusOpen
	}

	opp.CreatedAt = time.Now()
	opp.UpdatedAt = time.Now()
	return u.opportunityRepo.Create(ctx, opp)
}

func (u *opportunityUsecase) Update(ctx context.Context, userID int64, opp *domain.Opportunity) error {
	existing, err := u.opportunityRepo.GetByID(ctx, opp.ID)
	if err != nil {
		return apperror.NotFound("Opportunity not found")
	}
	if _, err := u.ownedOrganisation(ctx, userID, existing.OrganisationID); err != nil {
		return apperror.Forbidden("You do not have permission to edit this opportunity")
	}

	opp.OrganisationID = existing.OrganisationID
	if err := validateOpportunity(opp); err != nil {
		return err
	}

	opp.UpdatedAt = time.Now()
	return u.opportunityRepo.Update(ctx, opp)
}

func (u *opportunityUsecase) Delete(ctx context.Context, userID int64, id int64) error {
	existing, err := u.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Opportunity not found")
	}
	if _, err := u.ownedOrganisation(ctx, userID, existing.OrganisationID); err != nil {
		return apperror.Forbidden("You do not have permission to delete this opportunity")
	}
	return u.opportunityRepo.Delete(ctx, id)
}

func (u *opportunityUsecase) ListByOwner(ctx context.Context, userID int64) ([]domain.Opportunity, error) {
	orgs, err := u.organisationRepo.FetchByAdminUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(orgs) == 0 {
		return nil, apperror.NotFound("You are not associated with any organisation")
	}
	ids := make([]int64, len(orgs))
	for i, org := range orgs {
		ids[i] = org.ID
	}
	return u.opportunityRepo.FetchByOrganisationIDs(ctx, ids)
}

// ownedOrganisation resolves the organisation an opportunity belongs
// to and checks the caller administers it. A zero orgID picks the
// caller's first organisation, matching the single-org common case.
func (u *opportunityUsecase) ownedOrganisation(ctx context.Context, userID, orgID int64) (*domain.Organisation, error) {
	orgs, err := u.organisationRepo.FetchByAdminUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(orgs) == 0 {
		return nil, apperror.BadRequest("You must be associated with an organisation to manage opportunities")
	}
	if orgID == 0 {
		return &orgs[0], nil
	}
	for i := range orgs {
		if orgs[i].ID == orgID {
			return &orgs[i], nil
		}
	}
	return nil, apperror.Forbidden("You do not administer this organisation")
}

func validateOpportunity(opp *domain.Opportunity) error {
	if opp.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if opp.MinHoursPerWeek < 0 {
		return apperror.BadRequest("MinHoursPerWeek cannot be negative")
	}
	if opp.EndDate.Before(opp.StartDate) {
		return apperror.BadRequest("End date must be after start date")
	}
	if !validCategory(opp.Category) {
		return apperror.BadRequest("Invalid category")
	}
	if opp.Status != "" && opp.Status != domain.OpportunityStatusOpen && opp.Status != domain.OpportunityStatusClosed {
		return apperror.BadRequest("Invalid status. Must be: OPEN or CLOSED")
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range domain.Categories {
		if c == category {
			return true
		}
	}
	return false
}
