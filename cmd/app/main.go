package main

import (
	"os"

	dbadapter "blogicum/internal/adapters/database"
	"blogicum/internal/adapters/httpapi"
	"blogicum/internal/adapters/httpapi/middleware"
	redisadapter "blogicum/internal/adapters/redis"
	"blogicum/internal/config"
	"blogicum/internal/core/category"
	"blogicum/internal/core/comment"
	commentapp "blogicum/internal/core/comment/service"
	"blogicum/internal/core/post"
	postapp "blogicum/internal/core/post/service"
	"blogicum/internal/core/user"
	userapp "blogicum/internal/core/user/service"
	"blogicum/pkg/pagination"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	defer config.Logger.Sync()
	config.Init()

	config.InitDB()
	if err := config.DB.AutoMigrate(
		&user.User{},
		&category.Category{},
		&post.Post{},
		&comment.Comment{},
	); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	categoryRepo := dbadapter.NewCategoryRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(config.DB)
	sessions := redisadapter.NewSessionRepositoryRedis(config.RedisClient)

	pager := pagination.New(config.PageSize(pagination.DefaultPageSize))

	userSvc := userapp.NewUserService(userRepo, sessions, []byte(os.Getenv("JWT_SECRET")), config.Logger)
	postSvc := postapp.NewPostService(postRepo, categoryRepo, userRepo, commentRepo, pager, config.Logger)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo, config.Logger)

	auth := middleware.NewAuth(userSvc)
	r := httpapi.SetupRoutes(userSvc, postSvc, commentSvc, auth)

	config.Logger.Info("App is running")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
