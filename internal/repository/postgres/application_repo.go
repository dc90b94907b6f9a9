package postgres

import (
	"context"

	"go-volink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (volunteer_id, opportunity_id, status, created_at, updated_at)
              VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		app.VolunteerID, app.OpportunityID, app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, volunteer_id, opportunity_id, status, created_at, updated_at
              FROM applications WHERE id = $1`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.VolunteerID, &app.OpportunityID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByVolunteerAndOpportunity(ctx context.Context, volunteerID, opportunityID int64) (*domain.Application, error) {
	query := `SELECT id, volunteer_id, opportunity_id, status, created_at, updated_at
              FROM applications WHERE volunteer_id = $1 AND opportunity_id = $2`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, volunteerID, opportunityID).Scan(
		&app.ID, &app.VolunteerID, &app.OpportunityID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) FetchByVolunteer(ctx context.Context, volunteerID int64) ([]domain.Application, error) {
	query := `SELECT a.id, a.volunteer_id, a.opportunity_id, a.status, a.created_at, a.updated_at, o.title
              FROM applications a
              JOIN opportunities o ON a.opportunity_id = o.id
              WHERE a.volunteer_id = $1
              ORDER BY a.created_at DESC`
	rows, err := r.db.Query(ctx, query, volunteerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.VolunteerID, &app.OpportunityID, &app.Status,
			&app.CreatedAt, &app.UpdatedAt, &app.OpportunityTitle); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) FetchByVolunteerAndStatuses(ctx context.Context, volunteerID int64, statuses []string, limit int) ([]domain.Application, error) {
	query := `SELECT a.id, a.volunteer_id, a.opportunity_id, a.status, a.created_at, a.updated_at, o.title
              FROM applications a
              JOIN opportunities o ON a.opportunity_id = o.id
              WHERE a.volunteer_id = $1 AND a.status = ANY($2)
              ORDER BY a.created_at DESC
              LIMIT $3`
	rows, err := r.db.Query(ctx, query, volunteerID, statuses, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.VolunteerID, &app.OpportunityID, &app.Status,
			&app.CreatedAt, &app.UpdatedAt, &app.OpportunityTitle); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) FetchByOpportunity(ctx context.Context, opportunityID int64) ([]domain.Application, error) {
	query := `SELECT a.id, a.volunteer_id, a.opportunity_id, a.status, a.created_at, a.updated_at, u.username
              FROM applications a
              JOIN users u ON a.volunteer_id = u.id
              WHERE a.opportunity_id = $1
              ORDER BY a.created_at DESC`
	rows, err := r.db.Query(ctx, query, opportunityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.VolunteerID, &app.OpportunityID, &app.Status,
			&app.CreatedAt, &app.UpdatedAt, &app.VolunteerName); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// FetchAcceptedWithOpportunities returns the volunteer's ACCEPTED
// applications paired index-for-index with their opportunities.
func (r *applicationRepo) FetchAcceptedWithOpportunities(ctx context.Context, volunteerID int64) ([]domain.Application, []domain.Opportunity, error) {
	query := `SELECT a.id, a.volunteer_id, a.opportunity_id, a.status, a.created_at, a.updated_at,
              ` + opportunityColumns + `
              FROM applications a
              JOIN opportunities o ON a.opportunity_id = o.id
              JOIN organisations org ON o.organisation_id = org.id
              WHERE a.volunteer_id = $1 AND a.status = 'ACCEPTED'
              ORDER BY o.start_date ASC`
	rows, err := r.db.Query(ctx, query, volunteerID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	var opps []domain.Opportunity
	for rows.Next() {
		var app domain.Application
		var opp domain.Opportunity
		if err := rows.Scan(
			&app.ID, &app.VolunteerID, &app.OpportunityID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&opp.ID, &opp.OrganisationID, &opp.Title, &opp.Description, &opp.Location, &opp.Category,
			&opp.RequiredSkills, &opp.MinHoursPerWeek, &opp.StartDate, &opp.EndDate, &opp.IsRemote, &opp.Status,
			&opp.CreatedAt, &opp.UpdatedAt, &opp.OrganisationName,
		); err != nil {
			return nil, nil, err
		}
		apps = append(apps, app)
		opps = append(opps, opp)
	}
	return apps, opps, rows.Err()
}

// AcceptedHoursByVolunteer is the capacity-ledger snapshot: the weekly
// cost of every ACCEPTED application.
func (r *applicationRepo) AcceptedHoursByVolunteer(ctx context.Context, volunteerID int64) ([]int, error) {
	query := `SELECT o.min_hours_per_week
              FROM applications a
              JOIN opportunities o ON a.opportunity_id = o.id
              WHERE a.volunteer_id = $1 AND a.status = 'ACCEPTED'`
	rows, err := r.db.Query(ctx, query, volunteerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []int
	for rows.Next() {
		var h int
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}
