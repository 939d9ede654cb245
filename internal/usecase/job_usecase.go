package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// PostJob validates the salary shape and stores a new posting.
func (uc *jobUsecase) PostJob(ctx context.Context, job *domain.Job) error {
	if job.Title == "" || job.Description == "" || job.Category == "" ||
		job.Country == "" || job.City == "" || job.Location == "" {
		return apperror.BadRequest("Please provide full job details.")
	}

	if err := validateSalaryShape(job); err != nil {
		return err
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	job, err := uc.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found.")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (uc *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) (*domain.JobPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	jobs, total, err := uc.jobRepo.FetchActive(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return buildJobPage(jobs, total, page, pageSize), nil
}

func (uc *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobSearchFilter, page, pageSize int) (*domain.JobPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	jobs, total, err := uc.jobRepo.Search(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return buildJobPage(jobs, total, page, pageSize), nil
}

func (uc *jobUsecase) ListMyJobs(ctx context.Context, userID int64) ([]domain.Job, error) {
	jobs, err := uc.jobRepo.FetchByPostedBy(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (uc *jobUsecase) UpdateJob(ctx context.Context, userID int64, job *domain.Job) error {
	existing, err := uc.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found.")
		}
		return apperror.Internal(err)
	}
	if existing.PostedBy != userID {
		return apperror.Forbidden("You can only update your own jobs.")
	}
	if err := validateSalaryShape(job); err != nil {
		return err
	}

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *jobUsecase) DeleteJob(ctx context.Context, userID, id int64) error {
	existing, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found.")
		}
		return apperror.Internal(err)
	}
	if existing.PostedBy != userID {
		return apperror.Forbidden("You can only delete your own jobs.")
	}

	if err := uc.jobRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func validateSalaryShape(job *domain.Job) error {
	hasFixed := job.FixedSalary != nil
	hasRange := job.SalaryFrom != nil && job.SalaryTo != nil
	if hasFixed == hasRange {
		// exactly one of the two salary shapes
		return apperror.BadRequest("Please either provide fixed salary or ranged salary.")
	}
	if hasRange && *job.SalaryFrom > *job.SalaryTo {
		return apperror.BadRequest("Salary range lower bound exceeds upper bound.")
	}
	return nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 6
	}
	return page, pageSize
}

func buildJobPage(jobs []domain.JobWithCompany, total int64, page, pageSize int) *domain.JobPage {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.JobPage{
		Jobs:        jobs,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalJobs:   total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
