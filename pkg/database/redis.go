package database

import (
	"context"

	"persona-gen-go/pkg/log"

	"github.com/go-redis/redis/v8"
)

var RDB *redis.Client

// InitRedis 初始化 Redis 客户端连接。Redis 在本服务中仅作画像读缓存，
// 连接失败只记录告警并返回 nil 句柄，不阻止进程启动。
func InitRedis(addr, password string, db int) {
	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := RDB.Ping(ctx).Err(); err != nil {
		log.Warnf("redis 连接失败，禁用画像读缓存: %v", err)
		RDB = nil
		return
	}

	log.Info("Redis client connected successfully")
}
