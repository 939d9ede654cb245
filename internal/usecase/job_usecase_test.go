package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}

func (m *MockJobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobSearchFilter, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchByPostedBy(ctx context.Context, userID int64) ([]domain.Job, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func validJob() *domain.Job {
	fixed := int64(50000)
	return &domain.Job{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Category:    "Engineering",
		Country:     "Norway",
		City:        "Oslo",
		Location:    "Storgata 1, 0155 Oslo",
		FixedSalary: &fixed,
		PostedBy:    1,
	}
}

func TestPostJob(t *testing.T) {
	t.Run("Valid fixed salary job is created", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		uc := usecase.NewJobUsecase(repo)
		assert.NoError(t, uc.PostJob(context.Background(), validJob()))
		repo.AssertExpectations(t)
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		job := validJob()
		job.Title = ""
		err := uc.PostJob(context.Background(), job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "full job details")
	})

	t.Run("Both salary shapes rejected", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		job := validJob()
		from, to := int64(40000), int64(60000)
		job.SalaryFrom = &from
		job.SalaryTo = &to

		err := uc.PostJob(context.Background(), job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fixed salary or ranged salary")
	})

	t.Run("No salary shape rejected", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		job := validJob()
		job.FixedSalary = nil

		err := uc.PostJob(context.Background(), job)
		assert.Error(t, err)
	})

	t.Run("Inverted range rejected", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		job := validJob()
		job.FixedSalary = nil
		from, to := int64(60000), int64(40000)
		job.SalaryFrom = &from
		job.SalaryTo = &to

		err := uc.PostJob(context.Background(), job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "lower bound exceeds upper bound")
	})
}

func TestJobOwnership(t *testing.T) {
	t.Run("Update by another user is forbidden", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, PostedBy: 1}, nil)

		uc := usecase.NewJobUsecase(repo)
		err := uc.UpdateJob(context.Background(), 2, &domain.Job{ID: 5})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Update with both salary shapes is rejected", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, PostedBy: 1}, nil)

		job := validJob()
		job.ID = 5
		from, to := int64(40000), int64(60000)
		job.SalaryFrom, job.SalaryTo = &from, &to

		uc := usecase.NewJobUsecase(repo)
		err := uc.UpdateJob(context.Background(), 1, job)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Update with inverted salary range is rejected", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, PostedBy: 1}, nil)

		job := validJob()
		job.ID = 5
		job.FixedSalary = nil
		from, to := int64(60000), int64(40000)
		job.SalaryFrom, job.SalaryTo = &from, &to

		uc := usecase.NewJobUsecase(repo)
		err := uc.UpdateJob(context.Background(), 1, job)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Delete by owner succeeds", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, PostedBy: 1}, nil)
		repo.On("Delete", mock.Anything, int64(5)).Return(nil)

		uc := usecase.NewJobUsecase(repo)
		assert.NoError(t, uc.DeleteJob(context.Background(), 1, 5))
		repo.AssertExpectations(t)
	})

	t.Run("Delete of missing job returns not found", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, int64(999)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewJobUsecase(repo)
		err := uc.DeleteJob(context.Background(), 1, 999)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestListJobsPagination(t *testing.T) {
	t.Run("Defaults applied and page metadata computed", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("FetchActive", mock.Anything, 6, 0).Return([]domain.JobWithCompany{}, int64(13), nil)

		uc := usecase.NewJobUsecase(repo)
		page, err := uc.ListJobs(context.Background(), 0, 0)

		assert.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, int64(13), page.TotalJobs)
		assert.True(t, page.HasNextPage)
		assert.False(t, page.HasPrevPage)
	})

	t.Run("Middle page has both neighbours", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("FetchActive", mock.Anything, 6, 6).Return([]domain.JobWithCompany{}, int64(13), nil)

		uc := usecase.NewJobUsecase(repo)
		page, err := uc.ListJobs(context.Background(), 2, 6)

		assert.NoError(t, err)
		assert.True(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
	})
}
