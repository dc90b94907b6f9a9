package usecase

import (
	"context"
	"time"

	"go-volink-backend/internal/domain"
	"go-volink-backend/internal/matching"
	"go-volink-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// defaultMaxHoursPerWeek seeds lazily created profiles.
const defaultMaxHoursPerWeek = 10

type volunteerUsecase struct {
	volunteerRepo   domain.VolunteerRepository
	opportunityRepo domain.OpportunityRepository
	applicationRepo domain.ApplicationRepository
	engine          *matching.Engine
	validate        *validator.Validate
	recommendLimit  int
}

func NewVolunteerUsecase(
	volunteerRepo domain.VolunteerRepository,
	opportunityRepo domain.OpportunityRepository,
	applicationRepo domain.ApplicationRepository,
	engine *matching.Engine,
	validate *validator.Validate,
	recommendLimit int,
) domain.VolunteerUsecase {
	if recommendLimit < 1 {
		recommendLimit = 20
	}
	return &volunteerUsecase{
		volunteerRepo:   volunteerRepo,
		opportunityRepo: opportunityRepo,
		applicationRepo: applicationRepo,
		engine:          engine,
		validate:        validate,
		recommendLimit:  recommendLimit,
	}
}

// GetOrCreateProfile returns the volunteer's profile, creating an
// empty one on first access. At most one profile exists per user; the
// unique constraint on user_id backs that up.
func (u *volunteerUsecase) GetOrCreateProfile(ctx context.Context, userID int64) (*domain.VolunteerProfile, error) {
	profile, err := u.volunteerRepo.GetProfileByUserID(ctx, userID)
	if err == nil && profile != nil {
		return profile, nil
	}

	profile = &domain.VolunteerProfile{
		UserID:          userID,
		Availability:    map[string]string{},
		MaxHoursPerWeek: defaultMaxHoursPerWeek,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := u.volunteerRepo.CreateProfile(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *volunteerUsecase) UpdateProfile(ctx context.Context, profile *domain.VolunteerProfile) error {
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	existing, err := u.GetOrCreateProfile(ctx, profile.UserID)
	if err != nil {
		return err
	}

	existing.Skills = profile.Skills
	existing.Interests = profile.Interests
	existing.Availability = profile.Availability
	existing.MaxHoursPerWeek = profile.MaxHoursPerWeek
	existing.UpdatedAt = time.Now()

	if err := u.volunteerRepo.UpdateProfile(ctx, existing); err != nil {
		return apperror.Internal(err)
	}
	*profile = *existing
	return nil
}

func (u *volunteerUsecase) GetDashboard(ctx context.Context, userID int64) (*domain.Dashboard, error) {
	profile, err := u.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := u.volunteerRepo.TotalLoggedHours(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	byOpportunity, err := u.volunteerRepo.LoggedHoursByOpportunity(ctx, userID, 10)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	records, err := u.volunteerRepo.FetchParticipation(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(records) > 10 {
		records = records[:10]
	}
	active, err := u.applicationRepo.FetchByVolunteerAndStatuses(ctx, userID,
		[]string{domain.ApplicationStatusPending, domain.ApplicationStatusAccepted}, 5)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.Dashboard{
		Profile:            profile,
		TotalHours:         total,
		HoursByOpportunity: byOpportunity,
		RecentRecords:      records,
		ActiveApplications: active,
	}, nil
}

// GetSchedule lists accepted commitments against the weekly budget. A
// volunteer without a profile gets an empty schedule with zero
// capacity rather than an error.
func (u *volunteerUsecase) GetSchedule(ctx context.Context, userID int64) (*domain.Schedule, error) {
	profile, err := u.volunteerRepo.GetProfileByUserID(ctx, userID)
	if err != nil || profile == nil {
		return &domain.Schedule{Entries: []domain.ScheduleEntry{}}, nil
	}

	apps, opps, err := u.applicationRepo.FetchAcceptedWithOpportunities(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	entries := make([]domain.ScheduleEntry, 0, len(apps))
	hours := make([]int, 0, len(apps))
	for i := range apps {
		entries = append(entries, domain.ScheduleEntry{
			Opportunity:  opps[i],
			Application:  apps[i],
			HoursPerWeek: opps[i].MinHoursPerWeek,
		})
		hours = append(hours, opps[i].MinHoursPerWeek)
	}

	return &domain.Schedule{
		Entries:           entries,
		TotalHours:        matching.CommittedHours(hours),
		MaxHours:          profile.MaxHoursPerWeek,
		RemainingCapacity: matching.RemainingCapacity(profile, hours),
	}, nil
}

// GetRecommendations runs the matching engine over a snapshot of OPEN
// opportunities and the volunteer's accepted commitments.
func (u *volunteerUsecase) GetRecommendations(ctx context.Context, userID int64, limit int) ([]domain.Recommendation, error) {
	if limit < 1 {
		limit = u.recommendLimit
	}

	profile, err := u.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := u.opportunityRepo.FetchOpen(ctx, domain.OpportunityFilter{})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	acceptedHours, err := u.applicationRepo.AcceptedHoursByVolunteer(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	return u.engine.Recommend(profile, candidates, acceptedHours, limit, today), nil
}

// LogHours records participation against an opportunity the volunteer
// was accepted to.
func (u *volunteerUsecase) LogHours(ctx context.Context, rec *domain.ParticipationRecord) error {
	if err := u.validate.Struct(rec); err != nil {
		return apperror.BadRequest(err.Error())
	}

	app, err := u.applicationRepo.GetByVolunteerAndOpportunity(ctx, rec.VolunteerID, rec.OpportunityID)
	if err != nil || app == nil || app.Status != domain.ApplicationStatusAccepted {
		return apperror.BadRequest("Hours can only be logged against opportunities you were accepted to")
	}

	rec.CreatedAt = time.Now()
	if err := u.volunteerRepo.CreateParticipation(ctx, rec); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *volunteerUsecase) ListParticipation(ctx context.Context, userID int64) ([]domain.ParticipationRecord, float64, error) {
	records, err := u.volunteerRepo.FetchParticipation(ctx, userID)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	total, err := u.volunteerRepo.TotalLoggedHours(ctx, userID)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return records, total, nil
}
