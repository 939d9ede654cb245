package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

const companyImageKind = "companies"

const maxCompanyImageSize = 5 * 1024 * 1024 // 5MB

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	userRepo    domain.UserRepository
	store       *storage.LocalStore
	validate    *validator.Validate
}

func NewCompanyUsecase(
	companyRepo domain.CompanyRepository,
	userRepo domain.UserRepository,
	store *storage.LocalStore,
	validate *validator.Validate,
) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		store:       store,
		validate:    validate,
	}
}

func (uc *companyUsecase) CreateCompany(ctx context.Context, input domain.CompanyInput) (*domain.Company, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Please provide all company details")
	}

	company := &domain.Company{
		ExternalCode: input.ExternalCode,
		Name:         input.Name,
		Address:      input.Address,
		Description:  input.Description,
	}

	if len(input.ImageData) > 0 {
		filename, url, err := uc.storeImage(input)
		if err != nil {
			return nil, err
		}
		company.ImageFilename = &filename
		company.ImageURL = &url
	}

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		// clean up the stored image if the insert failed
		if company.ImageFilename != nil {
			_ = uc.store.Remove(companyImageKind, *company.ImageFilename)
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (uc *companyUsecase) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := uc.companyRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return companies, nil
}

func (uc *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (uc *companyUsecase) UpdateCompany(ctx context.Context, id int64, input domain.CompanyInput) (*domain.Company, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Please provide all company details")
	}

	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}

	company.ExternalCode = input.ExternalCode
	company.Name = input.Name
	company.Address = input.Address
	company.Description = input.Description

	var newImage, replaced *string
	if len(input.ImageData) > 0 {
		filename, url, err := uc.storeImage(input)
		if err != nil {
			return nil, err
		}
		replaced = company.ImageFilename
		newImage = &filename
		company.ImageFilename = &filename
		company.ImageURL = &url
	}

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		// only the file saved this request is orphaned; the row still
		// references the previous image
		if newImage != nil {
			_ = uc.store.Remove(companyImageKind, *newImage)
		}
		return nil, apperror.Internal(err)
	}
	if replaced != nil {
		_ = uc.store.Remove(companyImageKind, *replaced)
	}
	return company, nil
}

func (uc *companyUsecase) DeleteCompany(ctx context.Context, id int64) error {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}

	if err := uc.companyRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	if company.ImageFilename != nil {
		_ = uc.store.Remove(companyImageKind, *company.ImageFilename)
	}
	return nil
}

func (uc *companyUsecase) AssignToUser(ctx context.Context, userID, companyID int64) error {
	if _, err := uc.companyRepo.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}

	if err := uc.userRepo.AssignCompany(ctx, userID, companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *companyUsecase) storeImage(input domain.CompanyInput) (string, string, error) {
	if len(input.ImageData) > maxCompanyImageSize {
		return "", "", apperror.BadRequest("Image size should not exceed 5MB")
	}
	validation := security.ValidateFile(input.ImageName, input.ImageData, input.ImageMIME, security.ImageExtensions)
	if !validation.Valid {
		return "", "", apperror.BadRequest("Invalid company image: " + validation.Error)
	}

	filename, err := uc.store.Save(companyImageKind, input.ImageName, input.ImageData)
	if err != nil {
		return "", "", apperror.Internal(err)
	}
	return filename, "uploads/" + companyImageKind + "/" + filename, nil
}
