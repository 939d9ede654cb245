package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUC domain.ReportUsecase
}

// NewReportHandler registers the reporting endpoints. All of them are
// restricted to employers.
func NewReportHandler(protected *gin.RouterGroup, reportUC domain.ReportUsecase) {
	handler := &ReportHandler{reportUC: reportUC}

	reports := protected.Group("/reports")
	reports.Use(middleware.RequireRole(domain.RoleEmployer))
	{
		reports.GET("/stats", handler.Stats)
		reports.GET("/detailed", handler.Detailed)
		reports.GET("/filters", handler.FilterOptions)
		reports.GET("/export", handler.Export)
		reports.GET("/export/pdf", handler.ExportPDF)
		reports.GET("/export/excel", handler.ExportExcel)
	}
}

// Stats godoc
// @Summary      Application statistics
// @Description  Aggregated application statistics: trends, per-job, per-category, per-company and overall totals
// @Tags         reports
// @Produce      json
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Param        period     query  string  false  "daily, weekly or monthly"  default(daily)
// @Param        companyId  query  int     false  "Limit to one company"
// @Param        category   query  string  false  "Limit to one job category"
// @Param        jobId      query  int     false  "Limit to one job"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /reports/stats [get]
// @Security     BearerAuth
func (h *ReportHandler) Stats(c *gin.Context) {
	filter, err := domain.ParseReportFilter(c.Request.URL.Query())
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	stats, err := h.reportUC.GetStats(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Report statistics generated", stats)
}

// Detailed godoc
// @Summary      Detailed application report
// @Description  Row-level applications with applicant, job and company fields
// @Tags         reports
// @Produce      json
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Param        companyId  query  int     false  "Limit to one company"
// @Param        category   query  string  false  "Limit to one job category"
// @Param        jobId      query  int     false  "Limit to one job"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /reports/detailed [get]
// @Security     BearerAuth
func (h *ReportHandler) Detailed(c *gin.Context) {
	filter, err := domain.ParseReportFilter(c.Request.URL.Query())
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	report, err := h.reportUC.GetDetailed(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Detailed report generated", report)
}

// FilterOptions godoc
// @Summary      Report filter options
// @Description  Companies, categories, jobs and the application date range available for report filtering
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /reports/filters [get]
// @Security     BearerAuth
func (h *ReportHandler) FilterOptions(c *gin.Context) {
	opts, err := h.reportUC.GetFilterOptions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Report filter options fetched", opts)
}

// Export godoc
// @Summary      Export a report
// @Description  Download a report as PDF, Excel or CSV
// @Tags         reports
// @Produce      octet-stream
// @Param        reportType  query  string  false  "detailed or stats"  default(detailed)
// @Param        format      query  string  true   "pdf, excel or csv"
// @Param        startDate   query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate     query  string  false  "End date (YYYY-MM-DD)"
// @Param        period      query  string  false  "daily, weekly or monthly"
// @Param        companyId   query  int     false  "Limit to one company"
// @Param        category    query  string  false  "Limit to one job category"
// @Param        jobId       query  int     false  "Limit to one job"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /reports/export [get]
// @Security     BearerAuth
func (h *ReportHandler) Export(c *gin.Context) {
	h.export(c, c.Query("format"))
}

// ExportPDF godoc
// @Summary      Export a report as PDF
// @Tags         reports
// @Produce      octet-stream
// @Param        reportType  query  string  false  "detailed or stats"  default(detailed)
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Router       /reports/export/pdf [get]
// @Security     BearerAuth
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	h.export(c, domain.ExportFormatPDF)
}

// ExportExcel godoc
// @Summary      Export a report as Excel
// @Tags         reports
// @Produce      octet-stream
// @Param        reportType  query  string  false  "detailed or stats"  default(detailed)
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Router       /reports/export/excel [get]
// @Security     BearerAuth
func (h *ReportHandler) ExportExcel(c *gin.Context) {
	h.export(c, domain.ExportFormatExcel)
}

func (h *ReportHandler) export(c *gin.Context, format string) {
	filter, err := domain.ParseReportFilter(c.Request.URL.Query())
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	file, err := h.reportUC.Export(c.Request.Context(), filter, c.Query("reportType"), format)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(file.Data)))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
