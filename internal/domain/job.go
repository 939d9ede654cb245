package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Location    string    `json:"location"`
	FixedSalary *int64    `json:"fixed_salary,omitempty"`
	SalaryFrom  *int64    `json:"salary_from,omitempty"`
	SalaryTo    *int64    `json:"salary_to,omitempty"`
	Expired     bool      `json:"expired"`
	PostedOn    time.Time `json:"job_posted_on"`
	PostedBy    int64     `json:"posted_by"`
	CompanyID   *int64    `json:"company_id,omitempty"`
}

// JobWithCompany extends Job with joined company columns for listings
type JobWithCompany struct {
	Job
	CompanyName     *string `json:"company_name,omitempty"`
	CompanyAddress  *string `json:"company_address,omitempty"`
	CompanyImageURL *string `json:"company_image_url,omitempty"`
}

// JobSearchFilter holds the dynamic search predicates for job listings.
// All fields are optional and AND-combined.
type JobSearchFilter struct {
	Search     string // matches title, description or company name
	Category   string
	Company    string
	Country    string
	SalaryMin  *int64
	SalaryMax  *int64
	SalaryType string // "fixed" or "ranged"
}

// JobPage is a paginated job listing response.
type JobPage struct {
	Jobs        []JobWithCompany `json:"jobs"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
	TotalJobs   int64            `json:"totalJobs"`
	HasNextPage bool             `json:"hasNextPage"`
	HasPrevPage bool             `json:"hasPrevPage"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	FetchActive(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	Search(ctx context.Context, filter JobSearchFilter, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByPostedBy(ctx context.Context, userID int64) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	PostJob(ctx context.Context, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*JobWithCompany, error)
	ListJobs(ctx context.Context, page, pageSize int) (*JobPage, error)
	SearchJobs(ctx context.Context, filter JobSearchFilter, page, pageSize int) (*JobPage, error)
	ListMyJobs(ctx context.Context, userID int64) ([]Job, error)
	UpdateJob(ctx context.Context, userID int64, job *Job) error
	DeleteJob(ctx context.Context, userID, id int64) error
}
