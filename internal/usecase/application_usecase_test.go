package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.Application, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) FetchByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// pdfBytes is a minimal payload carrying the PDF magic prefix.
var pdfBytes = []byte("%PDF-1.4 test resume content")

func validSubmitInput() domain.SubmitApplicationInput {
	return domain.SubmitApplicationInput{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		CoverLetter: "I would like to apply.",
		Phone:       "12345678",
		Address:     "Storgata 1, Oslo",
		JobID:       5,
		ResumeName:  "resume.pdf",
		ResumeData:  pdfBytes,
		ResumeMIME:  "application/pdf",
	}
}

func newApplicationUC(t *testing.T, appRepo *MockApplicationRepo, jobRepo *MockJobRepo) domain.ApplicationUsecase {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return usecase.NewApplicationUsecase(appRepo, jobRepo, store)
}

func TestSubmitApplication(t *testing.T) {
	t.Run("Employer resolved from the job, not the request", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, PostedBy: 77}, nil)
		appRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		uc := newApplicationUC(t, appRepo, jobRepo)
		app, err := uc.Submit(context.Background(), 3, validSubmitInput())

		assert.NoError(t, err)
		assert.Equal(t, int64(77), app.EmployerID)
		assert.Equal(t, int64(3), app.ApplicantID)
		assert.NotEmpty(t, app.ResumePublicID)
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		uc := newApplicationUC(t, new(MockApplicationRepo), new(MockJobRepo))
		input := validSubmitInput()
		input.CoverLetter = ""

		_, err := uc.Submit(context.Background(), 3, input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fill all fields")
	})

	t.Run("Missing resume rejected", func(t *testing.T) {
		uc := newApplicationUC(t, new(MockApplicationRepo), new(MockJobRepo))
		input := validSubmitInput()
		input.ResumeData = nil

		_, err := uc.Submit(context.Background(), 3, input)
		assert.Error(t, err)
	})

	t.Run("Spoofed file content rejected", func(t *testing.T) {
		uc := newApplicationUC(t, new(MockApplicationRepo), new(MockJobRepo))
		input := validSubmitInput()
		input.ResumeData = []byte("#!/bin/sh\nrm -rf /")

		_, err := uc.Submit(context.Background(), 3, input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid resume file")
	})

	t.Run("Expired job rejected", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, Expired: true}, nil)

		uc := newApplicationUC(t, new(MockApplicationRepo), jobRepo)
		_, err := uc.Submit(context.Background(), 3, validSubmitInput())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expired job")
	})

	t.Run("Unknown job returns not found", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

		uc := newApplicationUC(t, new(MockApplicationRepo), jobRepo)
		_, err := uc.Submit(context.Background(), 3, validSubmitInput())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestDeleteOwnApplication(t *testing.T) {
	t.Run("Owner can delete", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Application{ID: 9, ApplicantID: 3, ResumePublicID: "x.pdf"}, nil)
		appRepo.On("Delete", mock.Anything, int64(9)).Return(nil)

		uc := newApplicationUC(t, appRepo, new(MockJobRepo))
		assert.NoError(t, uc.DeleteOwn(context.Background(), 3, 9))
		appRepo.AssertExpectations(t)
	})

	t.Run("Someone else's application is forbidden", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Application{ID: 9, ApplicantID: 3}, nil)

		uc := newApplicationUC(t, appRepo, new(MockJobRepo))
		err := uc.DeleteOwn(context.Background(), 4, 9)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestResumePath(t *testing.T) {
	t.Run("Traversal attempts surface as not found", func(t *testing.T) {
		uc := newApplicationUC(t, new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.ResumePath(context.Background(), "../../etc/passwd")
		assert.Error(t, err)
	})
}
