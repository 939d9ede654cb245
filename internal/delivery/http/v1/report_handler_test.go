package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReportUC struct {
	mock.Mock
}

func (m *MockReportUC) GetStats(ctx context.Context, filter domain.ReportFilter) (*domain.ReportStats, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportStats), args.Error(1)
}

func (m *MockReportUC) GetDetailed(ctx context.Context, filter domain.ReportFilter) (*domain.DetailedReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailedReport), args.Error(1)
}

func (m *MockReportUC) GetFilterOptions(ctx context.Context) (*domain.ReportFilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportFilterOptions), args.Error(1)
}

func (m *MockReportUC) Export(ctx context.Context, filter domain.ReportFilter, reportType, format string) (*domain.ExportFile, error) {
	args := m.Called(ctx, filter, reportType, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}

func reportRouter(uc domain.ReportUsecase, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/v1")
	protected.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), int64(1))
		c.Set(string(domain.KeyUserRole), role)
		c.Next()
	})
	v1.NewReportHandler(protected, uc)
	return r
}

func TestReportExportDownload(t *testing.T) {
	uc := new(MockReportUC)
	uc.On("Export", mock.Anything, mock.Anything, "detailed", "csv").Return(&domain.ExportFile{
		Data:        []byte("Applicant Name,Email\n"),
		Filename:    "job-report-1714000000000.csv",
		ContentType: "text/csv",
	}, nil)

	r := reportRouter(uc, domain.RoleEmployer)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/export?reportType=detailed&format=csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="job-report-1714000000000.csv"`,
		w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Applicant Name,Email\n", w.Body.String())
}

func TestReportRoleGate(t *testing.T) {
	uc := new(MockReportUC)

	r := reportRouter(uc, domain.RoleJobSeeker)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	uc.AssertNotCalled(t, "GetStats", mock.Anything, mock.Anything)
}
