package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-volink-backend/internal/domain"
	"go-volink-backend/internal/matching"
	"go-volink-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newVolunteerFixture() (*MockVolunteerRepo, *MockOpportunityRepo, *MockApplicationRepo, domain.VolunteerUsecase) {
	volRepo := new(MockVolunteerRepo)
	oppRepo := new(MockOpportunityRepo)
	appRepo := new(MockApplicationRepo)
	engine := matching.NewEngine(matching.DefaultWeights())
	uc := usecase.NewVolunteerUsecase(volRepo, oppRepo, appRepo, engine, validator.New(), 20)
	return volRepo, oppRepo, appRepo, uc
}

func TestGetOrCreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the existing profile untouched", func(t *testing.T) {
		volRepo, _, _, uc := newVolunteerFixture()
		volRepo.On("GetProfileByUserID", ctx, int64(100)).
			Return(&domain.VolunteerProfile{ID: 1, UserID: 100, MaxHoursPerWeek: 15}, nil)

		profile, err := uc.GetOrCreateProfile(ctx, 100)
		assert.NoError(t, err)
		assert.Equal(t, 15, profile.MaxHoursPerWeek)
		volRepo.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
	})

	t.Run("Should create an empty profile on first access", func(t *testing.T) {
		volRepo, _, _, uc := newVolunteerFixture()
		volRepo.On("GetProfileByUserID", ctx, int64(100)).Return(nil, domain.ErrNotFound)
		volRepo.On("CreateProfile", ctx, mock.AnythingOfType("*domain.VolunteerProfile")).Return(nil)

		profile, err := uc.GetOrCreateProfile(ctx, 100)
		assert.NoError(t, err)
		assert.Equal(t, int64(100), profile.UserID)
		assert.Equal(t, 10, profile.MaxHoursPerWeek)
		assert.Empty(t, profile.Skills)
		volRepo.AssertExpectations(t)
	})
}

func TestGetRecommendations(t *testing.T) {
	ctx := context.Background()

	t.Run("Should rank open opportunities by score", func(t *testing.T) {
		volRepo, oppRepo, appRepo, uc := newVolunteerFixture()
		volRepo.On("GetProfileByUserID", ctx, int64(100)).Return(&domain.VolunteerProfile{
			UserID:          100,
			Skills:          "teaching, mentoring",
			Interests:       "education",
			MaxHoursPerWeek: 10,
		}, nil)

		future := time.Now().AddDate(0, 1, 0)
		strong := domain.Opportunity{
			ID:              1,
			Title:           "After-school tutor",
			Category:        domain.CategoryEducation,
			RequiredSkills:  "teaching",
			MinHoursPerWeek: 4,
			StartDate:       future,
			EndDate:         future.AddDate(0, 2, 0),
			IsRemote:        true,
			Status:          domain.OpportunityStatusOpen,
		}
		weak := domain.Opportunity{
			ID:              2,
			Title:           "Trail maintenance",
			Category:        domain.CategoryEnvironment,
			RequiredSkills:  "landscaping",
			MinHoursPerWeek: 4,
			StartDate:       future,
			EndDate:         future.AddDate(0, 2, 0),
			Status:          domain.OpportunityStatusOpen,
		}
		oppRepo.On("FetchOpen", ctx, domain.OpportunityFilter{}).Return([]domain.Opportunity{weak, strong}, nil)
		appRepo.On("AcceptedHoursByVolunteer", ctx, int64(100)).Return([]int{}, nil)

		recs, err := uc.GetRecommendations(ctx, 100, 10)
		assert.NoError(t, err)
		assert.Len(t, recs, 2)
		assert.Equal(t, int64(1), recs[0].Opportunity.ID)
		assert.Greater(t, recs[0].Score, recs[1].Score)
	})

	t.Run("Should exclude opportunities the ledger refuses", func(t *testing.T) {
		volRepo, oppRepo, appRepo, uc := newVolunteerFixture()
		volRepo.On("GetProfileByUserID", ctx, int64(100)).
			Return(&domain.VolunteerProfile{UserID: 100, MaxHoursPerWeek: 5}, nil)

		future := time.Now().AddDate(0, 1, 0)
		tooHeavy := domain.Opportunity{
			ID:              3,
			MinHoursPerWeek: 8,
			StartDate:       future,
			EndDate:         future.AddDate(0, 2, 0),
			Status:          domain.OpportunityStatusOpen,
		}
		oppRepo.On("FetchOpen", ctx, domain.OpportunityFilter{}).Return([]domain.Opportunity{tooHeavy}, nil)
		appRepo.On("AcceptedHoursByVolunteer", ctx, int64(100)).Return([]int{}, nil)

		recs, err := uc.GetRecommendations(ctx, 100, 10)
		assert.NoError(t, err)
		assert.Empty(t, recs)
	})
}

func TestGetSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return an empty schedule without a profile", func(t *testing.T) {
		volRepo, _, appRepo, uc := newVolunteerFixture()
		volRepo.On("GetProfileByUserID", ctx, int64(100)).Return(nil, domain.ErrNotFound)

		schedule, err := uc.GetSchedule(ctx, 100)
		assert.NoError(t, err)
		assert.Empty(t, schedule.Entries)
		assert.Equal(t, 0, schedule.MaxHours)
		appRepo.AssertNotCalled(t, "FetchAcceptedWithOpportunities", mock.Anything, mock.Anything)
	})

	t.Run("Should total committed hours against the budget", func(t *testing.T) {
		volRepo, _, appRepo, uc := newVolunteerFixture()
		volRepo.On("GetProfileByUserID", ctx, int64(100)).
			Return(&domain.VolunteerProfile{UserID: 100, MaxHoursPerWeek: 10}, nil)
		appRepo.On("FetchAcceptedWithOpportunities", ctx, int64(100)).Return(
			[]domain.Application{{ID: 1, Status: domain.ApplicationStatusAccepted}, {ID: 2, Status: domain.ApplicationStatusAccepted}},
			[]domain.Opportunity{{ID: 11, MinHoursPerWeek: 4}, {ID: 12, MinHoursPerWeek: 3}},
			nil)

		schedule, err := uc.GetSchedule(ctx, 100)
		assert.NoError(t, err)
		assert.Len(t, schedule.Entries, 2)
		assert.Equal(t, 7, schedule.TotalHours)
		assert.Equal(t, 10, schedule.MaxHours)
		assert.Equal(t, 3, schedule.RemainingCapacity)
	})
}

func TestLogHours(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse logging against a non-accepted application", func(t *testing.T) {
		_, _, appRepo, uc := newVolunteerFixture()
		appRepo.On("GetByVolunteerAndOpportunity", ctx, int64(100), int64(1)).
			Return(&domain.Application{ID: 7, Status: domain.ApplicationStatusPending}, nil)

		err := uc.LogHours(ctx, &domain.ParticipationRecord{
			VolunteerID: 100, OpportunityID: 1, HoursLogged: 2, Date: time.Now(),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "accepted")
	})

	t.Run("Should record hours for an accepted application", func(t *testing.T) {
		volRepo, _, appRepo, uc := newVolunteerFixture()
		appRepo.On("GetByVolunteerAndOpportunity", ctx, int64(100), int64(1)).
			Return(&domain.Application{ID: 7, Status: domain.ApplicationStatusAccepted}, nil)
		volRepo.On("CreateParticipation", ctx, mock.AnythingOfType("*domain.ParticipationRecord")).Return(nil)

		err := uc.LogHours(ctx, &domain.ParticipationRecord{
			VolunteerID: 100, OpportunityID: 1, HoursLogged: 2.5, Date: time.Now(),
		})
		assert.NoError(t, err)
		volRepo.AssertExpectations(t)
	})
}
