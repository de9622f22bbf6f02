package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyplanner/pkg/translator"

	"studyplanner/internal/adapter/db"
	httpadapter "studyplanner/internal/adapter/http"
	"studyplanner/internal/adapter/http/handlers"
	httpmiddleware "studyplanner/internal/adapter/http/middleware"
	"studyplanner/internal/adapter/http/validation"
	"studyplanner/internal/app/service"
	"studyplanner/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	validation.UseJSONFieldNames()

	cfg := config.LoadConfig()
	client, err := db.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("failed to disconnect mongo client", zap.Error(err))
		}
	}()

	database := client.Database(cfg.DbName)
	userRepository := db.NewUserRepository(database)
	taskRepository := db.NewTaskRepository(database)
	activityRepository := db.NewActivityRepository(database)

	userService := service.NewUserService(userRepository)
	taskService := service.NewTaskService(taskRepository, userRepository)
	activityService := service.NewActivityService(activityRepository, userRepository)
	dashboardService := service.NewDashboardService(taskRepository, activityRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(client),
		handlers.NewUserHandler(userService),
		handlers.NewTaskHandler(taskService),
		handlers.NewActivityHandler(activityService),
		handlers.NewDashboardHandler(dashboardService),
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting api server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
