package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Trends(ctx context.Context, filter domain.ReportFilter) ([]domain.TrendPoint, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrendPoint), args.Error(1)
}

func (m *MockReportRepo) JobStats(ctx context.Context, filter domain.ReportFilter) ([]domain.JobStat, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobStat), args.Error(1)
}

func (m *MockReportRepo) CategoryStats(ctx context.Context, filter domain.ReportFilter) ([]domain.CategoryStat, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryStat), args.Error(1)
}

func (m *MockReportRepo) CompanyStats(ctx context.Context, filter domain.ReportFilter) ([]domain.CompanyStat, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyStat), args.Error(1)
}

func (m *MockReportRepo) OverallStats(ctx context.Context, filter domain.ReportFilter) (*domain.OverallStats, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverallStats), args.Error(1)
}

func (m *MockReportRepo) Detailed(ctx context.Context, filter domain.ReportFilter) ([]domain.DetailedApplication, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DetailedApplication), args.Error(1)
}

func (m *MockReportRepo) FilterOptions(ctx context.Context) (*domain.ReportFilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportFilterOptions), args.Error(1)
}

func emptyStatsRepo() *MockReportRepo {
	repo := new(MockReportRepo)
	repo.On("Trends", mock.Anything, mock.Anything).Return([]domain.TrendPoint{}, nil).Maybe()
	repo.On("JobStats", mock.Anything, mock.Anything).Return([]domain.JobStat{}, nil).Maybe()
	repo.On("CategoryStats", mock.Anything, mock.Anything).Return([]domain.CategoryStat{}, nil).Maybe()
	repo.On("CompanyStats", mock.Anything, mock.Anything).Return([]domain.CompanyStat{}, nil).Maybe()
	repo.On("OverallStats", mock.Anything, mock.Anything).Return(&domain.OverallStats{}, nil).Maybe()
	return repo
}

func TestGetStats(t *testing.T) {
	t.Run("Assembles all five result sets", func(t *testing.T) {
		repo := new(MockReportRepo)
		repo.On("Trends", mock.Anything, mock.Anything).Return([]domain.TrendPoint{
			{Period: "2024-01-01", ApplicationCount: 3, UniqueJobs: 2, UniqueApplicants: 3},
		}, nil)
		repo.On("JobStats", mock.Anything, mock.Anything).Return([]domain.JobStat{
			{JobID: 1, Title: "Backend Engineer", ApplicationCount: 3},
			{JobID: 2, Title: "Designer", ApplicationCount: 0},
		}, nil)
		repo.On("CategoryStats", mock.Anything, mock.Anything).Return([]domain.CategoryStat{
			{Category: "Engineering", TotalJobs: 2, TotalApplications: 3, AvgApplicationsPerJob: 1.5},
		}, nil)
		repo.On("CompanyStats", mock.Anything, mock.Anything).Return([]domain.CompanyStat{
			{CompanyID: 1, CompanyName: "Acme", TotalJobs: 2, TotalApplications: 3, AvgApplicationsPerJob: 1.5},
		}, nil)
		repo.On("OverallStats", mock.Anything, mock.Anything).Return(&domain.OverallStats{
			TotalApplications: 3, UniqueApplicants: 3, JobsWithApplications: 1, TotalJobs: 2, AvgApplicationsPerJob: 1.5,
		}, nil)

		uc := usecase.NewReportUsecase(repo)
		filter := domain.ReportFilter{Period: domain.PeriodDaily}

		stats, err := uc.GetStats(context.Background(), filter)
		assert.NoError(t, err)
		assert.Equal(t, domain.PeriodDaily, stats.Period)
		assert.Len(t, stats.Trends, 1)
		assert.Len(t, stats.JobStats, 2)
		assert.Len(t, stats.CategoryStats, 1)
		assert.Len(t, stats.CompanyStats, 1)
		assert.Equal(t, int64(3), stats.OverallStats.TotalApplications)
		repo.AssertExpectations(t)
	})

	t.Run("Zero-application job keeps its zero count", func(t *testing.T) {
		repo := emptyStatsRepo()
		repo.ExpectedCalls = nil
		repo.On("Trends", mock.Anything, mock.Anything).Return([]domain.TrendPoint{}, nil)
		repo.On("JobStats", mock.Anything, mock.Anything).Return([]domain.JobStat{
			{JobID: 9, Title: "Unloved Job", ApplicationCount: 0},
		}, nil)
		repo.On("CategoryStats", mock.Anything, mock.Anything).Return([]domain.CategoryStat{}, nil)
		repo.On("CompanyStats", mock.Anything, mock.Anything).Return([]domain.CompanyStat{}, nil)
		repo.On("OverallStats", mock.Anything, mock.Anything).Return(&domain.OverallStats{TotalJobs: 1}, nil)

		uc := usecase.NewReportUsecase(repo)
		stats, err := uc.GetStats(context.Background(), domain.ReportFilter{Period: domain.PeriodDaily})
		assert.NoError(t, err)
		assert.Len(t, stats.JobStats, 1)
		assert.Equal(t, int64(0), stats.JobStats[0].ApplicationCount)
		assert.Equal(t, float64(0), stats.OverallStats.AvgApplicationsPerJob)
	})

	t.Run("Empty database yields zero values, not an error", func(t *testing.T) {
		uc := usecase.NewReportUsecase(emptyStatsRepo())
		stats, err := uc.GetStats(context.Background(), domain.ReportFilter{Period: domain.PeriodMonthly})

		assert.NoError(t, err)
		assert.NotNil(t, stats.Trends)
		assert.Empty(t, stats.Trends)
		assert.Equal(t, domain.OverallStats{}, stats.OverallStats)
	})

	t.Run("One failing query fails the whole request", func(t *testing.T) {
		repo := new(MockReportRepo)
		repo.On("Trends", mock.Anything, mock.Anything).Return([]domain.TrendPoint{}, nil).Maybe()
		repo.On("JobStats", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()
		repo.On("CategoryStats", mock.Anything, mock.Anything).Return([]domain.CategoryStat{}, nil).Maybe()
		repo.On("CompanyStats", mock.Anything, mock.Anything).Return([]domain.CompanyStat{}, nil).Maybe()
		repo.On("OverallStats", mock.Anything, mock.Anything).Return(&domain.OverallStats{}, nil).Maybe()

		uc := usecase.NewReportUsecase(repo)
		stats, err := uc.GetStats(context.Background(), domain.ReportFilter{Period: domain.PeriodDaily})

		assert.Error(t, err)
		assert.Nil(t, stats)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.Code)
	})
}

func TestGetDetailed(t *testing.T) {
	t.Run("Total matches row count and filters echo back", func(t *testing.T) {
		repo := new(MockReportRepo)
		repo.On("Detailed", mock.Anything, mock.Anything).Return([]domain.DetailedApplication{
			{ApplicationID: 1, ApplicantName: "Jane"},
			{ApplicationID: 2, ApplicantName: "Ola"},
		}, nil)

		start, _ := time.Parse("2006-01-02", "2024-03-01")
		uc := usecase.NewReportUsecase(repo)
		report, err := uc.GetDetailed(context.Background(), domain.ReportFilter{Start: &start})

		assert.NoError(t, err)
		assert.Equal(t, 2, report.Total)
		assert.Len(t, report.Applications, 2)
		assert.Equal(t, "2024-03-01", report.Filters.StartDate)
	})

	t.Run("Repository failure surfaces as internal error", func(t *testing.T) {
		repo := new(MockReportRepo)
		repo.On("Detailed", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		uc := usecase.NewReportUsecase(repo)
		_, err := uc.GetDetailed(context.Background(), domain.ReportFilter{})
		assert.Error(t, err)
	})
}

func TestExport(t *testing.T) {
	detailedRepo := func() *MockReportRepo {
		repo := new(MockReportRepo)
		repo.On("Detailed", mock.Anything, mock.Anything).Return([]domain.DetailedApplication{
			{ApplicationID: 1, ApplicantName: "Jane", ApplicantEmail: "jane@example.com", AppliedAt: time.Now()},
		}, nil)
		return repo
	}

	t.Run("PDF export", func(t *testing.T) {
		uc := usecase.NewReportUsecase(detailedRepo())
		file, err := uc.Export(context.Background(), domain.ReportFilter{}, domain.ReportTypeDetailed, domain.ExportFormatPDF)

		assert.NoError(t, err)
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.True(t, strings.HasPrefix(file.Filename, "job-report-"))
		assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
		assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
	})

	t.Run("Excel export", func(t *testing.T) {
		uc := usecase.NewReportUsecase(detailedRepo())
		file, err := uc.Export(context.Background(), domain.ReportFilter{}, domain.ReportTypeDetailed, domain.ExportFormatExcel)

		assert.NoError(t, err)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
		assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))
		assert.NotEmpty(t, file.Data)
	})

	t.Run("CSV export carries the same rows", func(t *testing.T) {
		uc := usecase.NewReportUsecase(detailedRepo())
		file, err := uc.Export(context.Background(), domain.ReportFilter{}, domain.ReportTypeDetailed, domain.ExportFormatCSV)

		assert.NoError(t, err)
		assert.Equal(t, "text/csv", file.ContentType)
		assert.Contains(t, string(file.Data), "Applicant Name")
		assert.Contains(t, string(file.Data), "Jane")
	})

	t.Run("Stats export includes every statistics group", func(t *testing.T) {
		uc := usecase.NewReportUsecase(emptyStatsRepo())
		file, err := uc.Export(context.Background(), domain.ReportFilter{Period: domain.PeriodDaily}, domain.ReportTypeStats, domain.ExportFormatCSV)

		assert.NoError(t, err)
		assert.Contains(t, string(file.Data), "Total Applications")
	})

	t.Run("Empty report type defaults to detailed", func(t *testing.T) {
		uc := usecase.NewReportUsecase(detailedRepo())
		file, err := uc.Export(context.Background(), domain.ReportFilter{}, "", domain.ExportFormatCSV)
		assert.NoError(t, err)
		assert.Contains(t, string(file.Data), "Jane")
	})

	t.Run("Invalid format rejected", func(t *testing.T) {
		uc := usecase.NewReportUsecase(detailedRepo())
		_, err := uc.Export(context.Background(), domain.ReportFilter{}, domain.ReportTypeDetailed, "docx")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Invalid report type rejected", func(t *testing.T) {
		uc := usecase.NewReportUsecase(new(MockReportRepo))
		_, err := uc.Export(context.Background(), domain.ReportFilter{}, "summary", domain.ExportFormatPDF)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestGetFilterOptions(t *testing.T) {
	repo := new(MockReportRepo)
	repo.On("FilterOptions", mock.Anything).Return(&domain.ReportFilterOptions{
		Companies:  []domain.CompanyOption{{ID: 1, Name: "Acme"}},
		Categories: []string{"Engineering"},
		Jobs:       []domain.JobOption{{ID: 1, Title: "Backend Engineer"}},
	}, nil)

	uc := usecase.NewReportUsecase(repo)
	opts, err := uc.GetFilterOptions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, opts.Companies, 1)
	assert.Equal(t, []string{"Engineering"}, opts.Categories)
}
