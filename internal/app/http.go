package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pkamenev/go-task-manager/internal/cache"
	"github.com/pkamenev/go-task-manager/internal/config"
	v1 "github.com/pkamenev/go-task-manager/internal/delivery/http/v1"
	"github.com/pkamenev/go-task-manager/internal/services"
	"github.com/pkamenev/go-task-manager/internal/storage/mongodb"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	cfg := config.Global()
	db := mongoDatabase()
	cacheStore := cache.NewRedis(globalRedisClient, cfg.Redis.KeyPrefix)

	authService := services.NewAuthService(
		globalLogger,
		mongodb.NewUserStore(db),
		cfg.JWT.Issuer,
		[]byte(cfg.JWT.SigningKey),
		cfg.JWT.TokenTTL,
	)
	taskService := services.NewTaskService(
		globalLogger,
		mongodb.NewTaskStore(db),
		mongodb.NewListStore(db),
		cacheStore,
		cfg.Cache.TasksTTL,
	)
	listService := services.NewListService(
		globalLogger,
		mongodb.NewListStore(db),
		cacheStore,
		cfg.Cache.ListsTTL,
	)
	groupService := services.NewGroupService(
		globalLogger,
		mongodb.NewGroupStore(db),
		cacheStore,
		cfg.Cache.GroupsTTL,
	)

	v1Handler := v1.New(
		globalLogger,
		authService,
		taskService,
		listService,
		groupService,
	)

	api := router.Group("/api/v1")
	api.GET("/healthz", handleHealthz)

	authRouter := api.Group("/auth")
	authRouter.POST("/register", v1Handler.HandleRegister)
	authRouter.POST("/login", v1Handler.HandleLogin)

	protected := api.Group("", v1Handler.HandleAuthMiddleware)

	taskRouter := protected.Group("/tasks")
	taskRouter.POST("", v1Handler.HandleCreateTask)
	taskRouter.GET("", v1Handler.HandleGetAllTasks)
	taskRouter.GET("/:id", v1Handler.HandleGetTask)
	taskRouter.PUT("/:id", v1Handler.HandleUpdateTask)
	taskRouter.DELETE("/:id", v1Handler.HandleDeleteTask)

	listRouter := protected.Group("/lists")
	listRouter.POST("", v1Handler.HandleCreateList)
	listRouter.GET("", v1Handler.HandleGetAllLists)
	listRouter.GET("/:id", v1Handler.HandleGetList)
	listRouter.GET("/:id/tasks", v1Handler.HandleGetTasksByList)
	listRouter.PUT("/:id", v1Handler.HandleUpdateList)
	listRouter.DELETE("/:id", v1Handler.HandleDeleteList)

	groupRouter := protected.Group("/groups")
	groupRouter.POST("", v1Handler.HandleCreateGroup)
	groupRouter.GET("", v1Handler.HandleGetAllGroups)
	groupRouter.GET("/:id", v1Handler.HandleGetGroup)
	groupRouter.PUT("/:id", v1Handler.HandleUpdateGroup)
	groupRouter.DELETE("/:id", v1Handler.HandleDeleteGroup)
}

func handleHealthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 2*time.Second)
	defer cancel()

	err := globalMongoClient.Ping(ctx, nil)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "mongo unreachable"})
		return
	}
	err = globalRedisClient.Ping(ctx).Err()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "redis unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
