package usecase

import (
	"context"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type reportUsecase struct {
	reportRepo domain.ReportRepository
	now        func() time.Time
}

func NewReportUsecase(reportRepo domain.ReportRepository) domain.ReportUsecase {
	return &reportUsecase{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// GetStats fans the five aggregate queries out over the pool and joins
// them before shaping the response. The first failure cancels the rest,
// no partial result ever reaches the caller.
func (uc *reportUsecase) GetStats(ctx context.Context, filter domain.ReportFilter) (*domain.ReportStats, error) {
	stats := &domain.ReportStats{
		Period:    filter.Period,
		DateRange: filter.DateRange(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Trends, err = uc.reportRepo.Trends(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		stats.JobStats, err = uc.reportRepo.JobStats(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		stats.CategoryStats, err = uc.reportRepo.CategoryStats(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		stats.CompanyStats, err = uc.reportRepo.CompanyStats(gctx, filter)
		return err
	})
	g.Go(func() error {
		overall, err := uc.reportRepo.OverallStats(gctx, filter)
		if err != nil {
			return err
		}
		stats.OverallStats = *overall
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logReportError("stats", filter, err)
		return nil, apperror.Internal(fmt.Errorf("generate application statistics: %w", err))
	}

	return stats, nil
}

func (uc *reportUsecase) GetDetailed(ctx context.Context, filter domain.ReportFilter) (*domain.DetailedReport, error) {
	apps, err := uc.reportRepo.Detailed(ctx, filter)
	if err != nil {
		uc.logReportError("detailed", filter, err)
		return nil, apperror.Internal(fmt.Errorf("generate detailed report: %w", err))
	}

	return &domain.DetailedReport{
		Applications: apps,
		Total:        len(apps),
		Filters:      filter.DateRange(),
	}, nil
}

func (uc *reportUsecase) GetFilterOptions(ctx context.Context) (*domain.ReportFilterOptions, error) {
	opts, err := uc.reportRepo.FilterOptions(ctx)
	if err != nil {
		logger.Log.Error("report filter options failed", "error", err)
		return nil, apperror.Internal(fmt.Errorf("fetch report filters: %w", err))
	}
	return opts, nil
}

// Export renders a report in the requested container format. PDF, Excel
// and CSV are all materialized from the same tables, so content is
// identical row for row.
func (uc *reportUsecase) Export(ctx context.Context, filter domain.ReportFilter, reportType, format string) (*domain.ExportFile, error) {
	var tables []reportTable
	switch reportType {
	case domain.ReportTypeDetailed, "":
		report, err := uc.GetDetailed(ctx, filter)
		if err != nil {
			return nil, err
		}
		tables = []reportTable{detailedReportTable(report.Applications)}
	case domain.ReportTypeStats:
		stats, err := uc.GetStats(ctx, filter)
		if err != nil {
			return nil, err
		}
		tables = statsReportTables(stats)
	default:
		return nil, apperror.BadRequest("invalid reportType, expected detailed or stats")
	}

	header := exportHeader{
		Title:       "Job Application Report",
		PeriodLabel: "Report Period: " + filter.Label(),
		Generated:   "Generated: " + uc.now().Format("2006-01-02"),
	}

	timestamp := uc.now().UnixMilli()
	switch format {
	case domain.ExportFormatPDF:
		data, err := renderPDF(header, tables)
		if err != nil {
			uc.logReportError("export-pdf", filter, err)
			return nil, apperror.Internal(fmt.Errorf("generate PDF report: %w", err))
		}
		return &domain.ExportFile{
			Data:        data,
			Filename:    fmt.Sprintf("job-report-%d.pdf", timestamp),
			ContentType: "application/pdf",
		}, nil
	case domain.ExportFormatExcel:
		data, err := renderExcel(header, tables)
		if err != nil {
			uc.logReportError("export-excel", filter, err)
			return nil, apperror.Internal(fmt.Errorf("generate Excel report: %w", err))
		}
		return &domain.ExportFile{
			Data:        data,
			Filename:    fmt.Sprintf("job-report-%d.xlsx", timestamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil
	case domain.ExportFormatCSV:
		data, err := renderCSV(tables)
		if err != nil {
			uc.logReportError("export-csv", filter, err)
			return nil, apperror.Internal(fmt.Errorf("generate CSV report: %w", err))
		}
		return &domain.ExportFile{
			Data:        data,
			Filename:    fmt.Sprintf("job-report-%d.csv", timestamp),
			ContentType: "text/csv",
		}, nil
	}
	return nil, apperror.BadRequest("invalid format, expected pdf, excel or csv")
}

func (uc *reportUsecase) logReportError(query string, filter domain.ReportFilter, err error) {
	logger.Log.Error("report query failed",
		"query", query,
		"period", filter.Period,
		"dateRange", filter.Label(),
		"error", err,
	)
}
