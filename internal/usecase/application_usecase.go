package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"
)

const resumeKind = "resumes"

const maxResumeSize = 10 * 1024 * 1024 // 10MB

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	store           *storage.LocalStore
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	store *storage.LocalStore,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		store:           store,
	}
}

// Submit stores the resume and creates the application. The employer is
// resolved from the job row, never taken from the request.
func (uc *applicationUsecase) Submit(ctx context.Context, applicantID int64, input domain.SubmitApplicationInput) (*domain.Application, error) {
	if input.Name == "" || input.Email == "" || input.CoverLetter == "" ||
		input.Phone == "" || input.Address == "" {
		return nil, apperror.BadRequest("Please fill all fields.")
	}
	if len(input.ResumeData) == 0 {
		return nil, apperror.BadRequest("Resume File Required!")
	}
	if len(input.ResumeData) > maxResumeSize {
		return nil, apperror.BadRequest("Resume size should not exceed 10MB.")
	}

	validation := security.ValidateFile(input.ResumeName, input.ResumeData, input.ResumeMIME, security.ResumeExtensions)
	if !validation.Valid {
		return nil, apperror.BadRequest("Invalid resume file: " + validation.Error)
	}

	job, err := uc.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found!")
		}
		return nil, apperror.Internal(err)
	}
	if job.Expired {
		return nil, apperror.BadRequest("Cannot apply to an expired job.")
	}

	filename, err := uc.store.Save(resumeKind, input.ResumeName, input.ResumeData)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	app := &domain.Application{
		Name:           input.Name,
		Email:          input.Email,
		CoverLetter:    input.CoverLetter,
		Phone:          input.Phone,
		Address:        input.Address,
		ResumePublicID: filename,
		ResumeURL:      "uploads/" + resumeKind + "/" + filename,
		ApplicantID:    applicantID,
		EmployerID:     job.PostedBy,
		JobID:          job.ID,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		// do not leave an orphan resume behind
		_ = uc.store.Remove(resumeKind, filename)
		return nil, apperror.Internal(err)
	}

	return app, nil
}

func (uc *applicationUsecase) ListForEmployer(ctx context.Context, employerID int64) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.FetchByEmployerID(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (uc *applicationUsecase) ListForApplicant(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.FetchByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (uc *applicationUsecase) DeleteOwn(ctx context.Context, applicantID, applicationID int64) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found!")
		}
		return apperror.Internal(err)
	}
	if app.ApplicantID != applicantID {
		return apperror.Forbidden("You can only delete your own applications.")
	}

	if err := uc.applicationRepo.Delete(ctx, applicationID); err != nil {
		return apperror.Internal(err)
	}
	_ = uc.store.Remove(resumeKind, app.ResumePublicID)
	return nil
}

func (uc *applicationUsecase) ResumePath(ctx context.Context, filename string) (string, error) {
	path, err := uc.store.Path(resumeKind, filename)
	if err != nil {
		return "", apperror.NotFound("Resume not found.")
	}
	return path, nil
}
