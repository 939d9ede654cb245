package domain_test

import (
	"net/url"
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportFilter(t *testing.T) {
	t.Run("Defaults to daily with no bounds", func(t *testing.T) {
		f, err := domain.ParseReportFilter(url.Values{})
		require.NoError(t, err)
		assert.Equal(t, domain.PeriodDaily, f.Period)
		assert.Nil(t, f.Start)
		assert.Nil(t, f.End)
		assert.Equal(t, "All Time", f.Label())
	})

	t.Run("End date is pushed to end of day", func(t *testing.T) {
		f, err := domain.ParseReportFilter(url.Values{
			"startDate": {"2024-01-01"},
			"endDate":   {"2024-02-01"},
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", f.Start.Format("2006-01-02"))
		assert.Equal(t, "23:59:59", f.End.Format("15:04:05"))
		assert.Equal(t, "2024-01-01 to 2024-02-01", f.Label())
	})

	t.Run("Malformed date rejected", func(t *testing.T) {
		_, err := domain.ParseReportFilter(url.Values{"startDate": {"01/02/2024"}})
		assert.Error(t, err)
	})

	t.Run("Unknown period rejected", func(t *testing.T) {
		_, err := domain.ParseReportFilter(url.Values{"period": {"hourly"}})
		assert.Error(t, err)
	})

	t.Run("Non-numeric ids rejected", func(t *testing.T) {
		_, err := domain.ParseReportFilter(url.Values{"companyId": {"acme"}})
		assert.Error(t, err)

		_, err = domain.ParseReportFilter(url.Values{"jobId": {"1 OR 1=1"}})
		assert.Error(t, err)
	})

	t.Run("All filters parsed", func(t *testing.T) {
		f, err := domain.ParseReportFilter(url.Values{
			"period":    {"weekly"},
			"companyId": {"3"},
			"category":  {"Engineering"},
			"jobId":     {"42"},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PeriodWeekly, f.Period)
		assert.Equal(t, int64(3), *f.CompanyID)
		assert.Equal(t, "Engineering", *f.Category)
		assert.Equal(t, int64(42), *f.JobID)
	})

	t.Run("Open-ended ranges have labels", func(t *testing.T) {
		f, err := domain.ParseReportFilter(url.Values{"startDate": {"2024-01-01"}})
		require.NoError(t, err)
		assert.Equal(t, "From 2024-01-01", f.Label())

		f, err = domain.ParseReportFilter(url.Values{"endDate": {"2024-01-31"}})
		require.NoError(t, err)
		assert.Equal(t, "Until 2024-01-31", f.Label())
	})
}

func TestSalaryLabel(t *testing.T) {
	fixed := int64(60000)
	from, to := int64(40000), int64(55000)

	assert.Equal(t, "60000", domain.DetailedApplication{FixedSalary: &fixed}.SalaryLabel())
	assert.Equal(t, "40000 - 55000", domain.DetailedApplication{SalaryFrom: &from, SalaryTo: &to}.SalaryLabel())
	assert.Equal(t, "", domain.DetailedApplication{}.SalaryLabel())
}
