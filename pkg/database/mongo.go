// Package database 负责初始化并持有进程级的数据库连接句柄。
package database

import (
	"context"
	"time"

	"persona-gen-go/pkg/log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoDB *mongo.Database

// InitMongo 初始化 MongoDB 连接。进程启动时调用一次，
// 之后通过构造函数把 MongoDB 注入各 repository，不再有隐式的懒加载。
func InitMongo(uri, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("failed to connect mongodb", err)
	}

	// 启动时确认连接可用，避免第一个请求才暴露配置错误
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("failed to ping mongodb", err)
	}

	MongoDB = client.Database(dbName)
	log.Info("MongoDB connected successfully")
}
