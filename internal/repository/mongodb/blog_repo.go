package mongodb

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type blogRepo struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) domain.BlogRepository {
	return &blogRepo{coll: db.Collection("blogs")}
}

func (r *blogRepo) Fetch(ctx context.Context) ([]domain.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := make([]domain.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Blog, error) {
	var blog domain.Blog
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now().UTC()
	_, err := r.coll.InsertOne(ctx, blog)
	return err
}

func (r *blogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	update := bson.M{"$set": bson.M{
		"title":     blog.Title,
		"content":   blog.Content,
		"author":    blog.Author,
		"image_url": blog.ImageURL,
	}}
	result, err := r.coll.UpdateByID(ctx, blog.ID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
