package domain

import (
	"context"
	"time"
)

// Application represents a submitted job application. Immutable once
// created, except for deletion by its owner.
type Application struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CoverLetter    string    `json:"cover_letter"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	ResumePublicID string    `json:"resume_public_id"`
	ResumeURL      string    `json:"resume_url"`
	ApplicantID    int64     `json:"applicant_id"`
	EmployerID     int64     `json:"employer_id"`
	JobID          int64     `json:"job_id"`
	CreatedAt      time.Time `json:"created_at"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
	EmployerName  *string `json:"employer_name,omitempty"`
}

// SubmitApplicationInput carries the multipart form fields plus the
// already-validated resume file contents.
type SubmitApplicationInput struct {
	Name        string
	Email       string
	CoverLetter string
	Phone       string
	Address     string
	JobID       int64
	ResumeName  string
	ResumeData  []byte
	ResumeMIME  string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	FetchByEmployerID(ctx context.Context, employerID int64) ([]Application, error)
	FetchByApplicantID(ctx context.Context, applicantID int64) ([]Application, error)
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, applicantID int64, input SubmitApplicationInput) (*Application, error)
	ListForEmployer(ctx context.Context, employerID int64) ([]Application, error)
	ListForApplicant(ctx context.Context, applicantID int64) ([]Application, error)
	DeleteOwn(ctx context.Context, applicantID, applicationID int64) error
	ResumePath(ctx context.Context, filename string) (string, error)
}
