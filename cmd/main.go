package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"bloghub-backend/config"
	adminapi "bloghub-backend/internal/api/admin"
	postapi "bloghub-backend/internal/api/post"
	tagapi "bloghub-backend/internal/api/tag"
	unsplashapi "bloghub-backend/internal/api/unsplash"
	userapi "bloghub-backend/internal/api/user"
	"bloghub-backend/internal/errors"
	"bloghub-backend/internal/middleware"
	"bloghub-backend/internal/repository/mysql"
	"bloghub-backend/internal/service"
	"bloghub-backend/internal/storage"
	"bloghub-backend/internal/util"
)

func newObjectStorage() storage.ObjectStorage {
	cfg := config.AppConfig
	switch cfg.StorageBackend {
	case "s3":
		client, err := storage.NewS3Client(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			zap.L().Fatal("初始化S3存储失败", zap.Error(err))
		}
		return client
	case "gcs":
		client, err := storage.NewGCSClient(cfg.GCSProjectID, cfg.GCSBucketName, cfg.GCSCredentialsFile)
		if err != nil {
			zap.L().Fatal("初始化GCS存储失败", zap.Error(err))
		}
		return client
	default:
		local, err := storage.NewLocalStorage(cfg.LocalStoragePath)
		if err != nil {
			zap.L().Fatal("初始化本地存储失败", zap.Error(err))
		}
		return local
	}
}

func main() {
	config.Init()
	util.InitLogger(config.AppConfig.LogLevel)
	defer zap.L().Sync()

	db, err := mysql.NewDB()
	if err != nil {
		zap.L().Fatal("数据库连接失败", zap.Error(err))
	}
	defer db.Close()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("slugfmt", util.ValidateSlugFormat)
	}

	// 仓库层
	userRepo := mysql.NewUserRepo(db)
	postRepo := mysql.NewPostRepo(db)
	socialRepo := mysql.NewSocialRepo(db)
	tagRepo := mysql.NewTagRepo(db)

	// 服务层
	objectStore := newObjectStorage()
	emailService := service.NewEmailService()
	userService := service.NewUserService(userRepo, objectStore, emailService)
	postService := service.NewPostService(postRepo, tagRepo)
	feedService := service.NewFeedService(postRepo)
	socialService := service.NewSocialService(socialRepo, userRepo)
	suggestionService := service.NewSuggestionService(socialRepo)
	tagService := service.NewTagService(tagRepo)
	unsplashService := service.NewUnsplashService()
	adminService := service.NewAdminService(userRepo, postRepo, tagRepo, socialRepo)

	// 处理器
	blacklist := util.NewTokenBlacklist()
	userHandler := userapi.NewHandler(userService, socialService, suggestionService, blacklist)
	postHandler := postapi.NewHandler(postService, feedService)
	tagHandler := tagapi.NewHandler(tagService)
	unsplashHandler := unsplashapi.NewHandler(unsplashService)

	analytics := errors.NewErrorAnalytics()
	adminHandler := adminapi.NewHandler(adminService, analytics)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.ErrorMonitorMiddleware(analytics))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if config.AppConfig.StorageBackend == "local" {
		router.Static("/uploads", config.AppConfig.LocalStoragePath)
	}

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/refresh", userHandler.RefreshToken)
			auth.GET("/verify", userHandler.VerifyEmail)
			auth.POST("/password/forgot", userHandler.ForgotPassword)
			auth.POST("/password/reset", userHandler.ResetPassword)
		}

		// 公开接口，带上令牌时附带查看者注解
		public := api.Group("")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("/posts", postHandler.GetFeed)
			public.GET("/posts/:slug", postHandler.GetBySlug)
			public.GET("/users/:username", userHandler.GetProfile)
			public.GET("/users/:username/posts", postHandler.GetByAuthor)
			public.GET("/users/:username/followers", userHandler.GetFollowers)
			public.GET("/users/:username/following", userHandler.GetFollowing)
			public.GET("/comments", postHandler.GetComments)
			public.GET("/tags", tagHandler.List)
		}

		// 需要登录的接口
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(blacklist))
		{
			protected.GET("/me", userHandler.Me)
			protected.DELETE("/me", userHandler.DeleteAccount)
			protected.POST("/auth/logout", userHandler.Logout)
			protected.POST("/auth/verify/request", userHandler.RequestEmailVerification)
			protected.PUT("/users/profile", userHandler.UpdateProfile)
			protected.PUT("/users/avatar", userHandler.UpdateAvatar)
			protected.POST("/users/avatar", userHandler.UploadAvatarFile)

			protected.POST("/posts", postHandler.Create)
			protected.PATCH("/posts/feature-image", postHandler.UpdateFeatureImage)

			protected.POST("/likes", postHandler.Like)
			protected.DELETE("/likes/:id", postHandler.Unlike)
			protected.POST("/bookmarks", postHandler.Bookmark)
			protected.DELETE("/bookmarks/:id", postHandler.Unbookmark)
			protected.POST("/comments", postHandler.Comment)
			protected.GET("/reading-list", postHandler.GetReadingList)

			protected.POST("/follows", userHandler.Follow)
			protected.DELETE("/follows/:id", userHandler.Unfollow)
			protected.GET("/suggestions", userHandler.GetSuggestions)

			protected.POST("/tags", tagHandler.Create)
			protected.GET("/unsplash/search", unsplashHandler.Search)
		}

		// 管理接口
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(blacklist), middleware.AdminMiddleware(userRepo))
		{
			adminGroup.GET("/stats", adminHandler.GetStats)
			adminGroup.GET("/errors", adminHandler.GetErrorStats)
			adminGroup.GET("/users", adminHandler.ListUsers)
			adminGroup.PUT("/users/:id/role", adminHandler.UpdateUserRole)
			adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)
			adminGroup.DELETE("/posts/:id", adminHandler.DeletePost)
		}
	}

	server := &http.Server{
		Addr:    ":8080",
		Handler: router,
	}

	go func() {
		zap.L().Info("服务启动", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("服务启动失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("收到退出信号，开始优雅关闭")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("服务关闭失败", zap.Error(err))
	}
	zap.L().Info("服务已退出")
}
