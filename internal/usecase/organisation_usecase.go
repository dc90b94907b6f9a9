package usecase

import (
	"context"
	"time"

	"go-volink-backend/internal/domain"
	"go-volink-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type organisationUsecase struct {
	organisationRepo domain.OrganisationRepository
	opportunityRepo  domain.OpportunityRepository
	applicationRepo  domain.ApplicationRepository
	validate         *validator.Validate
}

func NewOrganisationUsecase(
	organisationRepo domain.OrganisationRepository,
	opportunityRepo domain.OpportunityRepository,
	applicationRepo domain.ApplicationRepository,
	validate *validator.Validate,
) domain.OrganisationUsecase {
	return &organisationUsecase{
		organisationRepo: organisationRepo,
		opportunityRepo:  opportunityRepo,
		applicationRepo:  applicationRepo,
		validate:         validate,
	}
}

// Register creates an organisation administered by the caller.
// New organisations start unverified; only staff admins flip that.
func (u *organisationUsecase) Register(ctx context.Context, userID int64, org *domain.Organisation) error {
	if err := u.validate.Struct(org); err != nil {
		return apperror.BadRequest(err.Error())
	}

	org.AdminUserID = userID
	org.Verified = false
	org.CreatedAt = time.Now()
	org.UpdatedAt = time.Now()
	return u.organisationRepo.Create(ctx, org)
}

func (u *organisationUsecase) GetMine(ctx context.Context, userID int64) ([]domain.Organisation, error) {
	return u.organisationRepo.FetchByAdminUserID(ctx, userID)
}

func (u *organisationUsecase) GetSummary(ctx context.Context, userID int64) ([]domain.OrganisationSummary, error) {
	orgs, err := u.organisationRepo.FetchByAdminUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	summaries := make([]domain.OrganisationSummary, 0, len(orgs))
	for _, org := range orgs {
		opps, err := u.opportunityRepo.FetchByOrganisationIDs(ctx, []int64{org.ID})
		if err != nil {
			return nil, apperror.Internal(err)
		}

		summary := domain.OrganisationSummary{Organisation: org}
		for _, opp := range opps {
			if opp.Status == domain.OpportunityStatusOpen {
				summary.OpenOpportunities++
			} else {
				summary.ClosedOpportunities++
			}
			apps, err := u.applicationRepo.FetchByOpportunity(ctx, opp.ID)
			if err != nil {
				return nil, apperror.Internal(err)
			}
			for _, app := range apps {
				if app.Status == domain.ApplicationStatusPending {
					summary.PendingApplications++
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (u *organisationUsecase) Update(ctx context.Context, userID int64, org *domain.Organisation) error {
	existing, err := u.organisationRepo.GetByID(ctx, org.ID)
	if err != nil {
		return apperror.NotFound("Organisation not found")
	}
	if existing.AdminUserID != userID {
		return apperror.Forbidden("You do not have permission to edit this organisation")
	}
	if err := u.validate.Struct(org); err != nil {
		return apperror.BadRequest(err.Error())
	}

	existing.Name = org.Name
	existing.Description = org.Description
	existing.ContactEmail = org.ContactEmail
	existing.Website = org.Website
	existing.UpdatedAt = time.Now()

	if err := u.organisationRepo.Update(ctx, existing); err != nil {
		return apperror.Internal(err)
	}
	*org = *existing
	return nil
}

// Verify toggles the staff verification flag. Caller role is checked
// at the delivery layer; the context role is re-checked here as a
// second line.
func (u *organisationUsecase) Verify(ctx context.Context, id int64, verified bool) error {
	role, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || role != domain.RoleAdmin {
		return apperror.Forbidden("Only staff admins can verify organisations")
	}
	if _, err := u.organisationRepo.GetByID(ctx, id); err != nil {
		return apperror.NotFound("Organisation not found")
	}
	return u.organisationRepo.SetVerified(ctx, id, verified)
}
