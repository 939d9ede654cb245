package v1

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	publicCompanies := public.Group("/companies")
	{
		publicCompanies.GET("", handler.List)
		publicCompanies.GET("/:id", handler.GetDetails)
	}

	protectedCompanies := protected.Group("/companies")
	{
		protectedCompanies.POST("", handler.Create)
		protectedCompanies.PUT("/:id", handler.Update)
		protectedCompanies.DELETE("/:id", handler.Delete)
		protectedCompanies.POST("/:id/assign", handler.Assign)
	}
}

// Create godoc
// @Summary      Create a company
// @Description  Create a company profile with an optional logo image (Employer only)
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        companyId    formData  string  true   "External company code"
// @Param        companyName  formData  string  true   "Company name"
// @Param        address      formData  string  true   "Address"
// @Param        description  formData  string  true   "Description"
// @Param        image        formData  file    false  "Logo image"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	input, err := bindCompanyInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.CreateCompany(c.Request.Context(), *input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company created successfully", company)
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyUC.ListCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Companies fetched successfully", companies)
}

// GetDetails godoc
// @Summary      Company details
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID / CastError"))
		return
	}

	company, err := h.companyUC.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company details fetched", company)
}

// Update godoc
// @Summary      Update a company
// @Description  Update a company profile, optionally replacing the logo (Employer only)
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID / CastError"))
		return
	}

	input, err := bindCompanyInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.UpdateCompany(c.Request.Context(), id, *input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company updated successfully", company)
}

// Delete godoc
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID / CastError"))
		return
	}

	if err := h.companyUC.DeleteCompany(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company deleted successfully", nil)
}

// Assign godoc
// @Summary      Assign company to self
// @Description  Link the authenticated employer to a company profile
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id}/assign [post]
// @Security     BearerAuth
func (h *CompanyHandler) Assign(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID / CastError"))
		return
	}

	if err := h.companyUC.AssignToUser(c.Request.Context(), c.GetInt64(string(domain.KeyUserID)), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company assigned successfully", nil)
}

// bindCompanyInput reads the multipart form, including the optional
// image file, into a CompanyInput.
func bindCompanyInput(c *gin.Context) (*domain.CompanyInput, error) {
	input := &domain.CompanyInput{
		ExternalCode: c.PostForm("companyId"),
		Name:         c.PostForm("companyName"),
		Address:      c.PostForm("address"),
		Description:  c.PostForm("description"),
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Image is optional
		return input, nil
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	input.ImageName = fileHeader.Filename
	input.ImageData = data
	input.ImageMIME = fileHeader.Header.Get("Content-Type")

	return input, nil
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
