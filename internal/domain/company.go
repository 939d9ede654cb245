package domain

import "context"

type Company struct {
	ID            int64   `json:"id"`
	ExternalCode  string  `json:"company_id"`
	Name          string  `json:"company_name"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	ImageFilename *string `json:"company_image_filename,omitempty"`
	ImageURL      *string `json:"company_image_url,omitempty"`
}

// CompanyInput is the create/update payload; the image is optional.
type CompanyInput struct {
	ExternalCode string `validate:"required,max=50"`
	Name         string `validate:"required,max=255"`
	Address      string `validate:"required"`
	Description  string `validate:"required"`
	ImageName    string
	ImageData    []byte
	ImageMIME    string
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	Fetch(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id int64) (*Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, input CompanyInput) (*Company, error)
	ListCompanies(ctx context.Context) ([]Company, error)
	GetCompany(ctx context.Context, id int64) (*Company, error)
	UpdateCompany(ctx context.Context, id int64, input CompanyInput) (*Company, error)
	DeleteCompany(ctx context.Context, id int64) error
	AssignToUser(ctx context.Context, userID, companyID int64) error
}
