package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-volink-backend/internal/domain"
	"go-volink-backend/internal/matching"
	"go-volink-backend/pkg/apperror"
	"go-volink-backend/pkg/email"
)

// EmailNotifier is the fire-and-forget email delivery port.
type EmailNotifier interface {
	SendNotification(toEmail string, data email.NotificationEmailData) error
}

type applicationUsecase struct {
	applicationRepo  domain.ApplicationRepository
	opportunityRepo  domain.OpportunityRepository
	organisationRepo domain.OrganisationRepository
	volunteerRepo    domain.VolunteerRepository
	userRepo         domain.UserRepository
	notifications    domain.NotificationUsecase
	emails           EmailNotifier
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	opportunityRepo domain.OpportunityRepository,
	organisationRepo domain.OrganisationRepository,
	volunteerRepo domain.VolunteerRepository,
	userRepo domain.UserRepository,
	notifications domain.NotificationUsecase,
	emails EmailNotifier,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo:  applicationRepo,
		opportunityRepo:  opportunityRepo,
		organisationRepo: organisationRepo,
		volunteerRepo:    volunteerRepo,
		userRepo:         userRepo,
		notifications:    notifications,
		emails:           emails,
	}
}

// Apply submits a PENDING application. The capacity ledger is
// consulted first: an application that would breach the volunteer's
// weekly budget is refused outright rather than left for the
// organisation to reject.
func (uc *applicationUsecase) Apply(ctx context.Context, volunteerID, opportunityID int64) (*domain.Application, error) {
	opp, err := uc.opportunityRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, apperror.NotFound("Opportunity not found")
	}
	if opp.Status != domain.OpportunityStatusOpen {
		return nil, apperror.BadRequest("This opportunity is not currently open for applications")
	}

	// One application per (volunteer, opportunity) pair.
	if existing, err := uc.applicationRepo.GetByVolunteerAndOpportunity(ctx, volunteerID, opportunityID); err == nil && existing != nil {
		return nil, apperror.Conflict("You have already applied to this opportunity")
	}

	admission, err := uc.admission(ctx, volunteerID, opp)
	if err != nil {
		return nil, err
	}
	if !admission.CanAdmit {
		return nil, apperror.BadRequest(fmt.Sprintf(
			"Accepting this opportunity would exceed your weekly limit (%d committed, %d after accepting)",
			admission.CurrentHours, admission.WouldBeHours))
	}

	app := &domain.Application{
		VolunteerID:   volunteerID,
		OpportunityID: opportunityID,
		Status:        domain.ApplicationStatusPending,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}

	// Notify the organisation admin; delivery is best effort.
	if volunteer, err := uc.userRepo.GetByID(ctx, volunteerID); err == nil {
		if org, err := uc.organisationRepo.GetByID(ctx, opp.OrganisationID); err == nil {
			msg := fmt.Sprintf("New application from %s for %q", volunteer.Username, opp.Title)
			_ = uc.notifications.Notify(ctx, org.AdminUserID, msg, domain.NotificationTypeOpportunityUpdate)
		}
	}

	return app, nil
}

// CheckAdmission answers the admission question for one candidate
// opportunity without applying.
func (uc *applicationUsecase) CheckAdmission(ctx context.Context, volunteerID, opportunityID int64) (*domain.Admission, error) {
	opp, err := uc.opportunityRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, apperror.NotFound("Opportunity not found")
	}
	return uc.admission(ctx, volunteerID, opp)
}

func (uc *applicationUsecase) GetMyApplications(ctx context.Context, volunteerID int64) ([]domain.Application, error) {
	return uc.applicationRepo.FetchByVolunteer(ctx, volunteerID)
}

// Withdraw is a status transition; applications are never deleted.
func (uc *applicationUsecase) Withdraw(ctx context.Context, volunteerID, applicationID int64) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if app.VolunteerID != volunteerID {
		return apperror.Forbidden("You can only withdraw your own applications")
	}
	if app.Status != domain.ApplicationStatusPending && app.Status != domain.ApplicationStatusAccepted {
		return apperror.BadRequest("Only pending or accepted applications can be withdrawn")
	}
	return uc.applicationRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusWithdrawn)
}

func (uc *applicationUsecase) ListByOpportunity(ctx context.Context, userID, opportunityID int64) ([]domain.Application, error) {
	opp, err := uc.opportunityRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, apperror.NotFound("Opportunity not found")
	}
	if err := uc.validateOpportunityOwnership(ctx, userID, opp); err != nil {
		return nil, err
	}
	return uc.applicationRepo.FetchByOpportunity(ctx, opportunityID)
}

// Decide lets the owning organisation accept or reject a pending
// application. The volunteer gets an in-app notification and a
// best-effort email.
func (uc *applicationUsecase) Decide(ctx context.Context, userID, applicationID int64, status string) error {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Invalid status. Must be: ACCEPTED or REJECTED")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	opp, err := uc.opportunityRepo.GetByID(ctx, app.OpportunityID)
	if err != nil {
		return apperror.NotFound("Opportunity not found")
	}
	if err := uc.validateOpportunityOwnership(ctx, userID, opp); err != nil {
		return err
	}
	if app.Status != domain.ApplicationStatusPending {
		return apperror.BadRequest("Only pending applications can be decided")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}

	msg := fmt.Sprintf("Your application for %q has been %s.", opp.Title, strings.ToLower(status))
	_ = uc.notifications.Notify(ctx, app.VolunteerID, msg, domain.NotificationTypeOpportunityUpdate)

	if uc.emails != nil {
		if volunteer, err := uc.userRepo.GetByID(ctx, app.VolunteerID); err == nil {
			_ = uc.emails.SendNotification(volunteer.Email, email.NotificationEmailData{
				RecipientName: volunteer.Username,
				Subject:       "Volink application update",
				Message:       msg,
			})
		}
	}

	return nil
}

// admission builds the ledger snapshot and runs the capacity check. A
// missing profile is passed through as nil — the ledger's permissive
// default, not an error.
func (uc *applicationUsecase) admission(ctx context.Context, volunteerID int64, opp *domain.Opportunity) (*domain.Admission, error) {
	profile, err := uc.volunteerRepo.GetProfileByUserID(ctx, volunteerID)
	if err != nil {
		profile = nil
	}
	acceptedHours, err := uc.applicationRepo.AcceptedHoursByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	admission := matching.CheckAdmission(profile, acceptedHours, opp)
	return &admission, nil
}

func (uc *applicationUsecase) validateOpportunityOwnership(ctx context.Context, userID int64, opp *domain.Opportunity) error {
	org, err := uc.organisationRepo.GetByID(ctx, opp.OrganisationID)
	if err != nil {
		return apperror.NotFound("Organisation not found")
	}
	if org.AdminUserID != userID {
		return apperror.Forbidden("You do not have permission to manage applications for this opportunity")
	}
	return nil
}
