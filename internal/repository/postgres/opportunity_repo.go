package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-volink-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type opportunityRepo struct {
	db *pgxpool.Pool
}

func NewOpportunityRepository(db *pgxpool.Pool) domain.OpportunityRepository {
	return &opportunityRepo{db: db}
}

const opportunityColumns = `o.id, o.organisation_id, o.title, o.description, o.location, o.category,
              o.required_skills, o.min_hours_per_week, o.start_date, o.end_date, o.is_remote, o.status,
              o.created_at, o.updated_at, org.name`

func (r *opportunityRepo) Create(ctx context.Context, opp *domain.Opportunity) error {
	query := `INSERT INTO opportunities (organisation_id, title, description, location, category, required_skills,
              min_hours_per_week, start_date, end_date, is_remote, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRow(ctx, query,
		opp.OrganisationID, opp.Title, opp.Description, opp.Location, opp.Category, opp.RequiredSkills,
		opp.MinHoursPerWeek, opp.StartDate, opp.EndDate, opp.IsRemote, opp.Status,
		opp.CreatedAt, opp.UpdatedAt,
	).Scan(&opp.ID)
}

func (r *opportunityRepo) GetByID(ctx context.Context, id int64) (*domain.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + `
              FROM opportunities o
              JOIN organisations org ON o.organisation_id = org.id
              WHERE o.id = $1`
	row := r.db.QueryRow(ctx, query, id)
	opp, err := scanOpportunity(row)
	if err != nil {
		return nil, err
	}
	return opp, nil
}

// FetchOpen returns OPEN opportunities, newest first, optionally
// narrowed by category, location substring, remote flag and free-text
// search over title/description.
func (r *opportunityRepo) FetchOpen(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, error) {
	var conditions []string
	var args []any

	conditions = append(conditions, "o.status = 'OPEN'")
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("o.category = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conditions = append(conditions, fmt.Sprintf("o.location ILIKE $%d", len(args)))
	}
	if filter.IsRemote != nil {
		args = append(args, *filter.IsRemote)
		conditions = append(conditions, fmt.Sprintf("o.is_remote = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(o.title ILIKE $%d OR o.description ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + opportunityColumns + `
              FROM opportunities o
              JOIN organisations org ON o.organisation_id = org.id
              WHERE ` + strings.Join(conditions, " AND ") + `
              ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOpportunities(rows)
}

func (r *opportunityRepo) FetchByOrganisationIDs(ctx context.Context, orgIDs []int64) ([]domain.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + `
              FROM opportunities o
              JOIN organisations org ON o.organisation_id = org.id
              WHERE o.organisation_id = ANY($1)
              ORDER BY o.created_at DESC`
	rows, err := r.db.Query(ctx, query, orgIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOpportunities(rows)
}

func (r *opportunityRepo) Update(ctx context.Context, opp *domain.Opportunity) error {
	query := `UPDATE opportunities SET title = $1, description = $2, location = $3, category = $4,
              required_skills = $5, min_hours_per_week = $6, start_date = $7, end_date = $8,
              is_remote = $9, status = $10, updated_at = $11 WHERE id = $12`
	_, err := r.db.Exec(ctx, query,
		opp.Title, opp.Description, opp.Location, opp.Category,
		opp.RequiredSkills, opp.MinHoursPerWeek, opp.StartDate, opp.EndDate,
		opp.IsRemote, opp.Status, opp.UpdatedAt, opp.ID)
	return err
}

func (r *opportunityRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	return err
}

func scanOpportunity(row pgx.Row) (*domain.Opportunity, error) {
	var opp domain.Opportunity
	err := row.Scan(
		&opp.ID, &opp.OrganisationID, &opp.Title, &opp.Description, &opp.Location, &opp.Category,
		&opp.RequiredSkills, &opp.MinHoursPerWeek, &opp.StartDate, &opp.EndDate, &opp.IsRemote, &opp.Status,
		&opp.CreatedAt, &opp.UpdatedAt, &opp.OrganisationName,
	)
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

func scanOpportunities(rows pgx.Rows) ([]domain.Opportunity, error) {
	var opps []domain.Opportunity
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		opps = append(opps, *opp)
	}
	return opps, rows.Err()
}
