// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"persona-gen-go/internal/config"
	"persona-gen-go/internal/handler"
	"persona-gen-go/internal/middleware"
	"persona-gen-go/internal/repository"
	"persona-gen-go/internal/service"
	"persona-gen-go/pkg/database"
	"persona-gen-go/pkg/log"
	"persona-gen-go/pkg/scraper"
	"persona-gen-go/pkg/webhook"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("日志记录器初始化成功")

	if missing := cfg.MissingRequired(); len(missing) > 0 {
		// 缺配置不阻止启动，/health 会持续报告 500
		log.Warnf("缺失必需配置项: %v", missing)
	}

	// 3. 初始化文档库与可选的读缓存
	database.InitMongo(cfg.Database.Mongo.URI, cfg.Database.Mongo.Database)
	if cfg.Database.Redis.Addr != "" {
		database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	}

	// 4. 初始化 Repository
	personaRepo := repository.NewPersonaRepository(database.MongoDB, database.RDB)
	postRepo := repository.NewPostRepository(database.MongoDB)

	// 5. 初始化外部服务客户端与 Service (依赖注入)
	scraperClient := scraper.NewClient(cfg.Scraper)
	webhookClient := webhook.NewClient(cfg.Webhook)
	personaService := service.NewPersonaService(personaRepo, scraperClient, webhookClient)
	postService := service.NewPostService(postRepo, personaRepo, webhookClient)

	// 6. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.CORS(), gin.Recovery())

	// 7. 注册路由
	registerRoutes(r, cfg, personaService, postService)

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP 服务监听失败", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("HTTP 服务器关闭失败", err)
	}

	log.Info("服务已优雅关闭")
}

// registerRoutes 按资源组注册全部路由。
func registerRoutes(r *gin.Engine, cfg config.Config, personaService service.PersonaService, postService service.PostService) {
	rootHandler := handler.NewRootHandler(cfg)
	r.GET("/", rootHandler.Root)
	r.GET("/health", rootHandler.Health)
	r.GET("/api/", rootHandler.APIInfo)

	r.GET("/questions", handler.NewQuestionHandler().GetQuestions)

	persona := r.Group("/persona")
	{
		h := handler.NewPersonaHandler(personaService)
		persona.POST("/create-persona", h.CreatePersona)
		persona.GET("", h.ListPersonas)
		persona.GET("/:personaId", h.GetPersona)
	}

	post := r.Group("/post")
	{
		h := handler.NewPostHandler(postService)
		post.POST("", h.CreatePost)
		post.GET("", h.ListPosts)
		post.GET("/:postId", h.GetPost)
	}
}
