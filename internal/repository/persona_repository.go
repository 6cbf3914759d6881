// Package repository 提供了数据访问层的实现。
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"persona-gen-go/internal/model"
	"persona-gen-go/pkg/log"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	personaCollection = "personas"
	personaCacheTTL   = 24 * time.Hour
)

// PersonaRepository 定义了画像文档的存取接口。
// List 始终按 created_at 倒序返回，数量不超过 limit。
type PersonaRepository interface {
	Put(ctx context.Context, persona model.Persona) error
	Get(ctx context.Context, id string) (model.Persona, bool, error)
	List(ctx context.Context, userID string, limit int) ([]model.Persona, error)
}

type mongoPersonaRepository struct {
	coll *mongo.Collection
	// rdb 为 nil 时关闭读缓存。画像创建后不可变，缓存无失效问题。
	rdb *redis.Client
}

// NewPersonaRepository 创建一个基于 MongoDB 的 PersonaRepository，
// 可选地挂一层 Redis 读缓存。
func NewPersonaRepository(db *mongo.Database, rdb *redis.Client) PersonaRepository {
	return &mongoPersonaRepository{coll: db.Collection(personaCollection), rdb: rdb}
}

func personaCacheKey(id string) string {
	return fmt.Sprintf("persona:%s", id)
}

// Put 写入一条画像文档，并顺带预热缓存。
func (r *mongoPersonaRepository) Put(ctx context.Context, persona model.Persona) error {
	if _, err := r.coll.InsertOne(ctx, persona); err != nil {
		return fmt.Errorf("failed to insert persona: %w", err)
	}
	r.cacheSet(ctx, persona)
	return nil
}

// Get 按 id 获取画像，未找到时返回 found=false 而不是错误。
func (r *mongoPersonaRepository) Get(ctx context.Context, id string) (model.Persona, bool, error) {
	if persona, ok := r.cacheGet(ctx, id); ok {
		return persona, true, nil
	}

	var persona model.Persona
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&persona)
	if err == mongo.ErrNoDocuments {
		return model.Persona{}, false, nil
	}
	if err != nil {
		return model.Persona{}, false, fmt.Errorf("failed to find persona: %w", err)
	}

	r.cacheSet(ctx, persona)
	return persona, true, nil
}

// List 按创建时间倒序列出画像，userID 非空时按其过滤。
func (r *mongoPersonaRepository) List(ctx context.Context, userID string, limit int) ([]model.Persona, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}
	defer cursor.Close(ctx)

	personas := []model.Persona{}
	if err := cursor.All(ctx, &personas); err != nil {
		return nil, fmt.Errorf("failed to decode personas: %w", err)
	}
	return personas, nil
}

func (r *mongoPersonaRepository) cacheGet(ctx context.Context, id string) (model.Persona, bool) {
	if r.rdb == nil {
		return model.Persona{}, false
	}
	jsonData, err := r.rdb.Get(ctx, personaCacheKey(id)).Result()
	if err == redis.Nil {
		return model.Persona{}, false
	}
	if err != nil {
		log.Warnf("persona 缓存读取失败: %v", err)
		return model.Persona{}, false
	}
	var persona model.Persona
	if err := json.Unmarshal([]byte(jsonData), &persona); err != nil {
		return model.Persona{}, false
	}
	return persona, true
}

func (r *mongoPersonaRepository) cacheSet(ctx context.Context, persona model.Persona) {
	if r.rdb == nil {
		return
	}
	jsonData, err := json.Marshal(persona)
	if err != nil {
		return
	}
	// 缓存只是加速，写失败不影响主流程
	if err := r.rdb.Set(ctx, personaCacheKey(persona.ID), jsonData, personaCacheTTL).Err(); err != nil {
		log.Warnf("persona 缓存写入失败: %v", err)
	}
}
