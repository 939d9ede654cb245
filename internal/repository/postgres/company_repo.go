package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (company_id, company_name, address, description, company_image_filename, company_image_url)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		company.ExternalCode, company.Name, company.Address, company.Description,
		company.ImageFilename, company.ImageURL,
	).Scan(&company.ID)
}

func (r *companyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT id, company_id, company_name, address, description, company_image_filename, company_image_url
              FROM companies ORDER BY company_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.ID, &c.ExternalCode, &c.Name, &c.Address, &c.Description, &c.ImageFilename, &c.ImageURL); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT id, company_id, company_name, address, description, company_image_filename, company_image_url
              FROM companies WHERE id = $1`
	var c domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ExternalCode, &c.Name, &c.Address, &c.Description, &c.ImageFilename, &c.ImageURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET
		company_id = $2,
		company_name = $3,
		address = $4,
		description = $5,
		company_image_filename = $6,
		company_image_url = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.ExternalCode, company.Name, company.Address, company.Description,
		company.ImageFilename, company.ImageURL,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
