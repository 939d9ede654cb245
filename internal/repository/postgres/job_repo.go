package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobWithCompanyColumns = `
	j.id, j.title, j.description, j.category, j.country, j.city, j.location,
	j.fixed_salary, j.salary_from, j.salary_to, j.expired, j.job_posted_on,
	j.posted_by, j.company_id,
	c.company_name, c.address AS company_address, c.company_image_url`

func scanJobWithCompany(rows pgx.Rows, job *domain.JobWithCompany) error {
	return rows.Scan(
		&job.ID, &job.Title, &job.Description, &job.Category, &job.Country, &job.City, &job.Location,
		&job.FixedSalary, &job.SalaryFrom, &job.SalaryTo, &job.Expired, &job.PostedOn,
		&job.PostedBy, &job.CompanyID,
		&job.CompanyName, &job.CompanyAddress, &job.CompanyImageURL,
	)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, category, country, city, location, fixed_salary, salary_from, salary_to, posted_by, company_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, job_posted_on`
	return r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Category, job.Country, job.City, job.Location,
		job.FixedSalary, job.SalaryFrom, job.SalaryTo, job.PostedBy, job.CompanyID,
	).Scan(&job.ID, &job.PostedOn)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, title, description, category, country, city, location, fixed_salary, salary_from, salary_to, expired, job_posted_on, posted_by, company_id
              FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.Category, &job.Country, &job.City, &job.Location,
		&job.FixedSalary, &job.SalaryFrom, &job.SalaryTo, &job.Expired, &job.PostedOn,
		&job.PostedBy, &job.CompanyID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1`, jobWithCompanyColumns)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, domain.ErrNotFound
	}
	var job domain.JobWithCompany
	if err := scanJobWithCompany(rows, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.expired = FALSE
		ORDER BY j.job_posted_on DESC
		LIMIT $1 OFFSET $2`, jobWithCompanyColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]domain.JobWithCompany, 0)
	for rows.Next() {
		var job domain.JobWithCompany
		if err := scanJobWithCompany(rows, &job); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE expired = FALSE`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Search composes the dynamic listing filters. Every value is bound as
// a parameter, fragments are fixed strings.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobSearchFilter, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	conds := []string{"j.expired = FALSE"}
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(j.title ILIKE $%d OR j.description ILIKE $%d OR c.company_name ILIKE $%d)", n, n, n))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("j.category = $%d", len(args)))
	}
	if filter.Company != "" {
		args = append(args, "%"+filter.Company+"%")
		conds = append(conds, fmt.Sprintf("c.company_name ILIKE $%d", len(args)))
	}
	if filter.Country != "" {
		args = append(args, "%"+filter.Country+"%")
		conds = append(conds, fmt.Sprintf("j.country ILIKE $%d", len(args)))
	}
	if filter.SalaryType == "fixed" {
		if filter.SalaryMin != nil {
			args = append(args, *filter.SalaryMin)
			conds = append(conds, fmt.Sprintf("j.fixed_salary >= $%d", len(args)))
		}
		if filter.SalaryMax != nil {
			args = append(args, *filter.SalaryMax)
			conds = append(conds, fmt.Sprintf("j.fixed_salary <= $%d", len(args)))
		}
	} else {
		// Ranged salaries match when the posted range overlaps the filter
		if filter.SalaryMin != nil {
			args = append(args, *filter.SalaryMin)
			n := len(args)
			conds = append(conds, fmt.Sprintf("(j.salary_from >= $%d OR j.salary_to >= $%d)", n, n))
		}
		if filter.SalaryMax != nil {
			args = append(args, *filter.SalaryMax)
			n := len(args)
			conds = append(conds, fmt.Sprintf("(j.salary_from <= $%d OR j.salary_to <= $%d)", n, n))
		}
	}

	where := strings.Join(conds, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE %s
		ORDER BY j.job_posted_on DESC
		LIMIT $%d OFFSET $%d`, jobWithCompanyColumns, where, len(args)+1, len(args)+2)

	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]domain.JobWithCompany, 0)
	for rows.Next() {
		var job domain.JobWithCompany
		if err := scanJobWithCompany(rows, &job); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) FetchByPostedBy(ctx context.Context, userID int64) ([]domain.Job, error) {
	query := `SELECT id, title, description, category, country, city, location, fixed_salary, salary_from, salary_to, expired, job_posted_on, posted_by, company_id
              FROM jobs WHERE posted_by = $1 ORDER BY job_posted_on DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Category, &job.Country, &job.City, &job.Location,
			&job.FixedSalary, &job.SalaryFrom, &job.SalaryTo, &job.Expired, &job.PostedOn,
			&job.PostedBy, &job.CompanyID,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		category = $4,
		country = $5,
		city = $6,
		location = $7,
		fixed_salary = $8,
		salary_from = $9,
		salary_to = $10,
		expired = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Category, job.Country, job.City, job.Location,
		job.FixedSalary, job.SalaryFrom, job.SalaryTo, job.Expired,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
