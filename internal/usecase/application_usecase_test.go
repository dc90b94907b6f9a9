package usecase_test

import (
	"context"
	"testing"

	"go-volink-backend/internal/domain"
	"go-volink-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newApplicationFixture() (*MockApplicationRepo, *MockOpportunityRepo, *MockOrganisationRepo, *MockVolunteerRepo, *MockUserRepo, *MockNotificationUsecase, domain.ApplicationUsecase) {
	appRepo := new(MockApplicationRepo)
	oppRepo := new(MockOpportunityRepo)
	orgRepo := new(MockOrganisationRepo)
	volRepo := new(MockVolunteerRepo)
	userRepo := new(MockUserRepo)
	notifier := new(MockNotificationUsecase)
	uc := usecase.NewApplicationUsecase(appRepo, oppRepo, orgRepo, volRepo, userRepo, notifier, nil)
	return appRepo, oppRepo, orgRepo, volRepo, userRepo, notifier, uc
}

func openOpportunity(id, orgID int64, minHours int) *domain.Opportunity {
	return &domain.Opportunity{
		ID:              id,
		OrganisationID:  orgID,
		Title:           "Weekend tutoring",
		Status:          domain.OpportunityStatusOpen,
		MinHoursPerWeek: minHours,
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse when opportunity is closed", func(t *testing.T) {
		_, oppRepo, _, _, _, _, uc := newApplicationFixture()
		opp := openOpportunity(1, 10, 5)
		opp.Status = domain.OpportunityStatusClosed
		oppRepo.On("GetByID", ctx, int64(1)).Return(opp, nil)

		_, err := uc.Apply(ctx, 100, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not currently open")
	})

	t.Run("Should refuse a second application to the same opportunity", func(t *testing.T) {
		appRepo, oppRepo, _, _, _, _, uc := newApplicationFixture()
		oppRepo.On("GetByID", ctx, int64(1)).Return(openOpportunity(1, 10, 5), nil)
		appRepo.On("GetByVolunteerAndOpportunity", ctx, int64(100), int64(1)).
			Return(&domain.Application{ID: 7, Status: domain.ApplicationStatusPending}, nil)

		_, err := uc.Apply(ctx, 100, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should refuse when the weekly budget would be exceeded", func(t *testing.T) {
		appRepo, oppRepo, _, volRepo, _, _, uc := newApplicationFixture()
		oppRepo.On("GetByID", ctx, int64(1)).Return(openOpportunity(1, 10, 5), nil)
		appRepo.On("GetByVolunteerAndOpportunity", ctx, int64(100), int64(1)).Return(nil, domain.ErrNotFound)
		volRepo.On("GetProfileByUserID", ctx, int64(100)).
			Return(&domain.VolunteerProfile{UserID: 100, MaxHoursPerWeek: 10}, nil)
		appRepo.On("AcceptedHoursByVolunteer", ctx, int64(100)).Return([]int{6}, nil)

		_, err := uc.Apply(ctx, 100, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exceed your weekly limit")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create a pending application and notify the organisation", func(t *testing.T) {
		appRepo, oppRepo, orgRepo, volRepo, userRepo, notifier, uc := newApplicationFixture()
		oppRepo.On("GetByID", ctx, int64(1)).Return(openOpportunity(1, 10, 5), nil)
		appRepo.On("GetByVolunteerAndOpportunity", ctx, int64(100), int64(1)).Return(nil, domain.ErrNotFound)
		volRepo.On("GetProfileByUserID", ctx, int64(100)).
			Return(&domain.VolunteerProfile{UserID: 100, MaxHoursPerWeek: 10}, nil)
		appRepo.On("AcceptedHoursByVolunteer", ctx, int64(100)).Return([]int{}, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)
		userRepo.On("GetByID", ctx, int64(100)).Return(&domain.User{ID: 100, Username: "asha"}, nil)
		orgRepo.On("GetByID", ctx, int64(10)).Return(&domain.Organisation{ID: 10, AdminUserID: 55}, nil)
		notifier.On("Notify", ctx, int64(55), mock.AnythingOfType("string"), domain.NotificationTypeOpportunityUpdate).Return(nil)

		app, err := uc.Apply(ctx, 100, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		notifier.AssertExpectations(t)
	})

	t.Run("Should admit a volunteer without a profile", func(t *testing.T) {
		appRepo, oppRepo, orgRepo, volRepo, userRepo, notifier, uc := newApplicationFixture()
		oppRepo.On("GetByID", ctx, int64(1)).Return(openOpportunity(1, 10, 5), nil)
		appRepo.On("GetByVolunteerAndOpportunity", ctx, int64(100), int64(1)).Return(nil, domain.ErrNotFound)
		volRepo.On("GetProfileByUserID", ctx, int64(100)).Return(nil, domain.ErrNotFound)
		appRepo.On("AcceptedHoursByVolunteer", ctx, int64(100)).Return([]int{6}, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)
		userRepo.On("GetByID", ctx, int64(100)).Return(&domain.User{ID: 100, Username: "asha"}, nil)
		orgRepo.On("GetByID", ctx, int64(10)).Return(&domain.Organisation{ID: 10, AdminUserID: 55}, nil)
		notifier.On("Notify", ctx, int64(55), mock.AnythingOfType("string"), domain.NotificationTypeOpportunityUpdate).Return(nil)

		_, err := uc.Apply(ctx, 100, 1)
		assert.NoError(t, err)
	})
}

func TestCheckAdmission(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report the ledger verdict without applying", func(t *testing.T) {
		appRepo, oppRepo, _, volRepo, _, _, uc := newApplicationFixture()
		oppRepo.On("GetByID", ctx, int64(1)).Return(openOpportunity(1, 10, 5), nil)
		volRepo.On("GetProfileByUserID", ctx, int64(100)).
			Return(&domain.VolunteerProfile{UserID: 100, MaxHoursPerWeek: 10}, nil)
		appRepo.On("AcceptedHoursByVolunteer", ctx, int64(100)).Return([]int{3}, nil)

		admission, err := uc.CheckAdmission(ctx, 100, 1)
		assert.NoError(t, err)
		assert.True(t, admission.CanAdmit)
		assert.Equal(t, 3, admission.CurrentHours)
		assert.Equal(t, 8, admission.WouldBeHours)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse withdrawing someone else's application", func(t *testing.T) {
		appRepo, _, _, _, _, _, uc := newApplicationFixture()
		appRepo.On("GetByID", ctx, int64(7)).
			Return(&domain.Application{ID: 7, VolunteerID: 200, Status: domain.ApplicationStatusPending}, nil)

		err := uc.Withdraw(ctx, 100, 7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own applications")
	})

	t.Run("Should refuse withdrawing a rejected application", func(t *testing.T) {
		appRepo, _, _, _, _, _, uc := newApplicationFixture()
		appRepo.On("GetByID", ctx, int64(7)).
			Return(&domain.Application{ID: 7, VolunteerID: 100, Status: domain.ApplicationStatusRejected}, nil)

		err := uc.Withdraw(ctx, 100, 7)
		assert.Error(t, err)
	})

	t.Run("Should transition a pending application to withdrawn", func(t *testing.T) {
		appRepo, _, _, _, _, _, uc := newApplicationFixture()
		appRepo.On("GetByID", ctx, int64(7)).
			Return(&domain.Application{ID: 7, VolunteerID: 100, Status: domain.ApplicationStatusPending}, nil)
		appRepo.On("UpdateStatus", ctx, int64(7), domain.ApplicationStatusWithdrawn).Return(nil)

		err := uc.Withdraw(ctx, 100, 7)
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})
}

func TestDecide(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown status", func(t *testing.T) {
		_, _, _, _, _, _, uc := newApplicationFixture()
		err := uc.Decide(ctx, 55, 7, "MAYBE")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should refuse a non-owning user", func(t *testing.T) {
		appRepo, oppRepo, orgRepo, _, _, _, uc := newApplicationFixture()
		appRepo.On("GetByID", ctx, int64(7)).
			Return(&domain.Application{ID: 7, VolunteerID: 100, OpportunityID: 1, Status: domain.ApplicationStatusPending}, nil)
		oppRepo.On("GetByID", ctx, int64(1)).Return(openOpportunity(1, 10, 5), nil)
		orgRepo.On("GetByID", ctx, int64(10)).Return(&domain.Organisation{ID: 10, AdminUserID: 55}, nil)

		err := uc.Decide(ctx, 99, 7, domain.ApplicationStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
	})

	t.Run("Should refuse deciding a non-pending application", func(t *testing.T) {
		appRepo, oppRepo, orgRepo, _, _, _, uc := newApplicationFixture()
		appRepo.On("GetByID", ctx, int64(7)).
			Return(&domain.Application{ID: 7, VolunteerID: 100, OpportunityID: 1, Status: domain.ApplicationStatusWithdrawn}, nil)
		oppRepo.On("GetByID", ctx, int64(1)).Return(openOpportunity(1, 10, 5), nil)
		orgRepo.On("GetByID", ctx, int64(10)).Return(&domain.Organisation{ID: 10, AdminUserID: 55}, nil)

		err := uc.Decide(ctx, 55, 7, domain.ApplicationStatusRejected)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "pending")
	})

	t.Run("Should accept and notify the volunteer", func(t *testing.T) {
		appRepo, oppRepo, orgRepo, _, _, notifier, uc := newApplicationFixture()
		appRepo.On("GetByID", ctx, int64(7)).
			Return(&domain.Application{ID: 7, VolunteerID: 100, OpportunityID: 1, Status: domain.ApplicationStatusPending}, nil)
		oppRepo.On("GetByID", ctx, int64(1)).Return(openOpportunity(1, 10, 5), nil)
		orgRepo.On("GetByID", ctx, int64(10)).Return(&domain.Organisation{ID: 10, AdminUserID: 55}, nil)
		appRepo.On("UpdateStatus", ctx, int64(7), domain.ApplicationStatusAccepted).Return(nil)
		notifier.On("Notify", ctx, int64(100), `Your application for "Weekend tutoring" has been accepted.`, domain.NotificationTypeOpportunityUpdate).Return(nil)

		err := uc.Decide(ctx, 55, 7, domain.ApplicationStatusAccepted)
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})
}
