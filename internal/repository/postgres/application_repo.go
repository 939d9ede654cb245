package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (name, email, cover_letter, phone, address, resume_public_id, resume_url, applicant_id, employer_id, job_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		app.Name, app.Email, app.CoverLetter, app.Phone, app.Address,
		app.ResumePublicID, app.ResumeURL, app.ApplicantID, app.EmployerID, app.JobID,
	).Scan(&app.ID, &app.CreatedAt)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, name, email, cover_letter, phone, address, resume_public_id, resume_url, applicant_id, employer_id, job_id, created_at
              FROM applications WHERE id = $1`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.Name, &app.Email, &app.CoverLetter, &app.Phone, &app.Address,
		&app.ResumePublicID, &app.ResumeURL, &app.ApplicantID, &app.EmployerID, &app.JobID, &app.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.name, a.email, a.cover_letter, a.phone, a.address,
		       a.resume_public_id, a.resume_url, a.applicant_id, a.employer_id, a.job_id, a.created_at,
		       j.title AS job_title, u.name AS applicant_name
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN users u ON a.applicant_id = u.id
		WHERE a.employer_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.Name, &app.Email, &app.CoverLetter, &app.Phone, &app.Address,
			&app.ResumePublicID, &app.ResumeURL, &app.ApplicantID, &app.EmployerID, &app.JobID, &app.CreatedAt,
			&app.JobTitle, &app.ApplicantName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) FetchByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.name, a.email, a.cover_letter, a.phone, a.address,
		       a.resume_public_id, a.resume_url, a.applicant_id, a.employer_id, a.job_id, a.created_at,
		       j.title AS job_title, u.name AS employer_name
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN users u ON a.employer_id = u.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.Name, &app.Email, &app.CoverLetter, &app.Phone, &app.Address,
			&app.ResumePublicID, &app.ResumeURL, &app.ApplicantID, &app.EmployerID, &app.JobID, &app.CreatedAt,
			&app.JobTitle, &app.EmployerName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
