package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type blogUsecase struct {
	blogRepo domain.BlogRepository
	validate *validator.Validate
}

func NewBlogUsecase(blogRepo domain.BlogRepository, validate *validator.Validate) domain.BlogUsecase {
	return &blogUsecase{blogRepo: blogRepo, validate: validate}
}

func (uc *blogUsecase) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	blogs, err := uc.blogRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return blogs, nil
}

func (uc *blogUsecase) GetBlog(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid blog ID")
	}

	blog, err := uc.blogRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Internal(err)
	}
	return blog, nil
}

func (uc *blogUsecase) CreateBlog(ctx context.Context, blog *domain.Blog) error {
	if err := uc.validate.Struct(blog); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := uc.blogRepo.Create(ctx, blog); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *blogUsecase) UpdateBlog(ctx context.Context, id string, blog *domain.Blog) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid blog ID")
	}
	if err := uc.validate.Struct(blog); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	blog.ID = oid
	if err := uc.blogRepo.Update(ctx, blog); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Internal(err)
	}
	return uc.blogRepo.GetByID(ctx, oid)
}

func (uc *blogUsecase) DeleteBlog(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperror.BadRequest("Invalid blog ID")
	}
	if err := uc.blogRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Blog not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
