package postgres

import (
	"context"
	"encoding/json"

	"go-volink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type volunteerRepo struct {
	db *pgxpool.Pool
}

func NewVolunteerRepository(db *pgxpool.Pool) domain.VolunteerRepository {
	return &volunteerRepo{db: db}
}

func (r *volunteerRepo) GetProfileByUserID(ctx context.Context, userID int64) (*domain.VolunteerProfile, error) {
	query := `SELECT id, user_id, skills, interests, availability, max_hours_per_week, created_at, updated_at
              FROM volunteer_profiles WHERE user_id = $1`
	var profile domain.VolunteerProfile
	var availability []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.Skills, &profile.Interests,
		&availability, &profile.MaxHoursPerWeek, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(availability, &profile.Availability); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *volunteerRepo) CreateProfile(ctx context.Context, profile *domain.VolunteerProfile) error {
	availability, err := json.Marshal(profile.Availability)
	if err != nil {
		return err
	}
	query := `INSERT INTO volunteer_profiles (user_id, skills, interests, availability, max_hours_per_week, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.Skills, profile.Interests, availability,
		profile.MaxHoursPerWeek, profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
}

func (r *volunteerRepo) UpdateProfile(ctx context.Context, profile *domain.VolunteerProfile) error {
	availability, err := json.Marshal(profile.Availability)
	if err != nil {
		return err
	}
	query := `UPDATE volunteer_profiles SET skills = $1, interests = $2, availability = $3,
              max_hours_per_week = $4, updated_at = $5 WHERE user_id = $6`
	_, err = r.db.Exec(ctx, query,
		profile.Skills, profile.Interests, availability,
		profile.MaxHoursPerWeek, profile.UpdatedAt, profile.UserID)
	return err
}

func (r *volunteerRepo) CreateParticipation(ctx context.Context, rec *domain.ParticipationRecord) error {
	query := `INSERT INTO participation_records (volunteer_id, opportunity_id, hours_logged, date, notes, created_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		rec.VolunteerID, rec.OpportunityID, rec.HoursLogged, rec.Date, rec.Notes, rec.CreatedAt,
	).Scan(&rec.ID)
}

func (r *volunteerRepo) FetchParticipation(ctx context.Context, volunteerID int64) ([]domain.ParticipationRecord, error) {
	query := `SELECT pr.id, pr.volunteer_id, pr.opportunity_id, o.title, pr.hours_logged, pr.date, pr.notes, pr.created_at
              FROM participation_records pr
              JOIN opportunities o ON pr.opportunity_id = o.id
              WHERE pr.volunteer_id = $1
              ORDER BY pr.date DESC, pr.created_at DESC`
	rows, err := r.db.Query(ctx, query, volunteerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ParticipationRecord
	for rows.Next() {
		var rec domain.ParticipationRecord
		if err := rows.Scan(&rec.ID, &rec.VolunteerID, &rec.OpportunityID, &rec.OpportunityTitle,
			&rec.HoursLogged, &rec.Date, &rec.Notes, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *volunteerRepo) TotalLoggedHours(ctx context.Context, volunteerID int64) (float64, error) {
	query := `SELECT COALESCE(SUM(hours_logged), 0) FROM participation_records WHERE volunteer_id = $1`
	var total float64
	err := r.db.QueryRow(ctx, query, volunteerID).Scan(&total)
	return total, err
}

func (r *volunteerRepo) LoggedHoursByOpportunity(ctx context.Context, volunteerID int64, limit int) ([]domain.OpportunityHours, error) {
	query := `SELECT o.id, o.title, SUM(pr.hours_logged) AS total_hours
              FROM participation_records pr
              JOIN opportunities o ON pr.opportunity_id = o.id
              WHERE pr.volunteer_id = $1
              GROUP BY o.id, o.title
              ORDER BY total_hours DESC
              LIMIT $2`
	rows, err := r.db.Query(ctx, query, volunteerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.OpportunityHours
	for rows.Next() {
		var oh domain.OpportunityHours
		if err := rows.Scan(&oh.OpportunityID, &oh.OpportunityTitle, &oh.TotalHours); err != nil {
			return nil, err
		}
		results = append(results, oh)
	}
	return results, rows.Err()
}
