package postgres

import (
	"context"

	"go-volink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type organisationRepo struct {
	db *pgxpool.Pool
}

func NewOrganisationRepository(db *pgxpool.Pool) domain.OrganisationRepository {
	return &organisationRepo{db: db}
}

const organisationColumns = `id, name, description, contact_email, website, verified, admin_user_id, created_at, updated_at`

func (r *organisationRepo) Create(ctx context.Context, org *domain.Organisation) error {
	query := `INSERT INTO organisations (name, description, contact_email, website, verified, admin_user_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		org.Name, org.Description, org.ContactEmail, org.Website,
		org.Verified, org.AdminUserID, org.CreatedAt, org.UpdatedAt,
	).Scan(&org.ID)
}

func (r *organisationRepo) GetByID(ctx context.Context, id int64) (*domain.Organisation, error) {
	query := `SELECT ` + organisationColumns + ` FROM organisations WHERE id = $1`
	var org domain.Organisation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.Description, &org.ContactEmail, &org.Website,
		&org.Verified, &org.AdminUserID, &org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organisationRepo) FetchByAdminUserID(ctx context.Context, userID int64) ([]domain.Organisation, error) {
	query := `SELECT ` + organisationColumns + ` FROM organisations WHERE admin_user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organisation
	for rows.Next() {
		var org domain.Organisation
		if err := rows.Scan(&org.ID, &org.Name, &org.Description, &org.ContactEmail, &org.Website,
			&org.Verified, &org.AdminUserID, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func (r *organisationRepo) Update(ctx context.Context, org *domain.Organisation) error {
	query := `UPDATE organisations SET name = $1, description = $2, contact_email = $3, website = $4,
              updated_at = $5 WHERE id = $6`
	_, err := r.db.Exec(ctx, query,
		org.Name, org.Description, org.ContactEmail, org.Website, org.UpdatedAt, org.ID)
	return err
}

func (r *organisationRepo) SetVerified(ctx context.Context, id int64, verified bool) error {
	query := `UPDATE organisations SET verified = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, verified, id)
	return err
}
