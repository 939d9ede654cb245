package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog posts live in the document store, everything else is relational.
type Blog struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title" validate:"required"`
	Content   string             `json:"content" bson:"content" validate:"required"`
	Author    string             `json:"author" bson:"author"`
	ImageURL  string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type BlogRepository interface {
	Fetch(ctx context.Context) ([]Blog, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Blog, error)
	Create(ctx context.Context, blog *Blog) error
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BlogUsecase interface {
	ListBlogs(ctx context.Context) ([]Blog, error)
	GetBlog(ctx context.Context, id string) (*Blog, error)
	CreateBlog(ctx context.Context, blog *Blog) error
	UpdateBlog(ctx context.Context, id string, blog *Blog) (*Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}
