package usecase_test

import (
	"context"

	"go-volink-backend/internal/domain"
	"go-volink-backend/pkg/email"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockVolunteerRepo struct {
	mock.Mock
}

func (m *MockVolunteerRepo) GetProfileByUserID(ctx context.Context, userID int64) (*domain.VolunteerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VolunteerProfile), args.Error(1)
}
func (m *MockVolunteerRepo) CreateProfile(ctx context.Context, profile *domain.VolunteerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockVolunteerRepo) UpdateProfile(ctx context.Context, profile *domain.VolunteerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockVolunteerRepo) CreateParticipation(ctx context.Context, rec *domain.ParticipationRecord) error {
	return m.Called(ctx, rec).Error(0)
}
func (m *MockVolunteerRepo) FetchParticipation(ctx context.Context, volunteerID int64) ([]domain.ParticipationRecord, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParticipationRecord), args.Error(1)
}
func (m *MockVolunteerRepo) TotalLoggedHours(ctx context.Context, volunteerID int64) (float64, error) {
	args := m.Called(ctx, volunteerID)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockVolunteerRepo) LoggedHoursByOpportunity(ctx context.Context, volunteerID int64, limit int) ([]domain.OpportunityHours, error) {
	args := m.Called(ctx, volunteerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpportunityHours), args.Error(1)
}

type MockOpportunityRepo struct {
	mock.Mock
}

func (m *MockOpportunityRepo) Create(ctx context.Context, opp *domain.Opportunity) error {
	return m.Called(ctx, opp).Error(0)
}
func (m *MockOpportunityRepo) GetByID(ctx context.Context, id int64) (*domain.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityRepo) FetchOpen(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityRepo) FetchByOrganisationIDs(ctx context.Context, orgIDs []int64) ([]domain.Opportunity, error) {
	args := m.Called(ctx, orgIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityRepo) Update(ctx context.Context, opp *domain.Opportunity) error {
	return m.Called(ctx, opp).Error(0)
}
func (m *MockOpportunityRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByVolunteerAndOpportunity(ctx context.Context, volunteerID, opportunityID int64) (*domain.Application, error) {
	args := m.Called(ctx, volunteerID, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FetchByVolunteer(ctx context.Context, volunteerID int64) ([]domain.Application, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FetchByVolunteerAndStatuses(ctx context.Context, volunteerID int64, statuses []string, limit int) ([]domain.Application, error) {
	args := m.Called(ctx, volunteerID, statuses, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FetchByOpportunity(ctx context.Context, opportunityID int64) ([]domain.Application, error) {
	args := m.Called(ctx, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FetchAcceptedWithOpportunities(ctx context.Context, volunteerID int64) ([]domain.Application, []domain.Opportunity, error) {
	args := m.Called(ctx, volunteerID)
	var apps []domain.Application
	var opps []domain.Opportunity
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.Application)
	}
	if args.Get(1) != nil {
		opps = args.Get(1).([]domain.Opportunity)
	}
	return apps, opps, args.Error(2)
}
func (m *MockApplicationRepo) AcceptedHoursByVolunteer(ctx context.Context, volunteerID int64) ([]int, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockOrganisationRepo struct {
	mock.Mock
}

func (m *MockOrganisationRepo) Create(ctx context.Context, org *domain.Organisation) error {
	return m.Called(ctx, org).Error(0)
}
func (m *MockOrganisationRepo) GetByID(ctx context.Context, id int64) (*domain.Organisation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organisation), args.Error(1)
}
func (m *MockOrganisationRepo) FetchByAdminUserID(ctx context.Context, userID int64) ([]domain.Organisation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organisation), args.Error(1)
}
func (m *MockOrganisationRepo) Update(ctx context.Context, org *domain.Organisation) error {
	return m.Called(ctx, org).Error(0)
}
func (m *MockOrganisationRepo) SetVerified(ctx context.Context, id int64, verified bool) error {
	return m.Called(ctx, id, verified).Error(0)
}

type MockNotificationUsecase struct {
	mock.Mock
}

func (m *MockNotificationUsecase) Notify(ctx context.Context, userID int64, message, ntype string) error {
	return m.Called(ctx, userID, message, ntype).Error(0)
}
func (m *MockNotificationUsecase) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationUsecase) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationUsecase) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}
func (m *MockNotificationUsecase) MarkAllRead(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockEmailNotifier struct {
	mock.Mock
}

func (m *MockEmailNotifier) SendNotification(toEmail string, data email.NotificationEmailData) error {
	return m.Called(toEmail, data).Error(0)
}
