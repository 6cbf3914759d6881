package repository

import (
	"context"
	"fmt"

	"persona-gen-go/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const postCollection = "posts"

// PostRepository 定义了帖子文档的存取接口。
type PostRepository interface {
	Put(ctx context.Context, post model.Post) error
	Get(ctx context.Context, id string) (model.Post, bool, error)
	List(ctx context.Context, userID string, limit int) ([]model.Post, error)
}

type mongoPostRepository struct {
	coll *mongo.Collection
}

// NewPostRepository 创建一个基于 MongoDB 的 PostRepository。
func NewPostRepository(db *mongo.Database) PostRepository {
	return &mongoPostRepository{coll: db.Collection(postCollection)}
}

// Put 写入一条帖子文档。
func (r *mongoPostRepository) Put(ctx context.Context, post model.Post) error {
	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// Get 按 id 获取帖子，未找到时返回 found=false。
func (r *mongoPostRepository) Get(ctx context.Context, id string) (model.Post, bool, error) {
	var post model.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return model.Post{}, false, nil
	}
	if err != nil {
		return model.Post{}, false, fmt.Errorf("failed to find post: %w", err)
	}
	return post, true, nil
}

// List 按创建时间倒序列出帖子，userID 非空时按其过滤。
func (r *mongoPostRepository) List(ctx context.Context, userID string, limit int) ([]model.Post, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}
