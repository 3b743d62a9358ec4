package app

import (
	"context"
	"sync"

	"pairchat/configs"
	"pairchat/internal/handlers"
	"pairchat/internal/hub"
	"pairchat/internal/repositories"
	"pairchat/internal/servers/database"
	httpServer "pairchat/internal/servers/http"
	"pairchat/internal/services"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)

	userRepo := repositories.NewUserRepository(db)
	chatRepo := repositories.NewChatRepository(db)

	registry := hub.NewPresenceRegistry()
	rooms := hub.NewRoomManager()

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)

	presenceCache := services.NewRedisPresenceCache(app.redis, app.ctx)
	presenceService := services.NewPresenceService(registry, rooms, userRepo, presenceCache)
	deliveryService := services.NewDeliveryService(registry, rooms)

	authService := services.NewAuthenticationService(userRepo, app.configs)
	chatService := services.NewChatService(chatRepo, fileManagerService)

	restHandler := handlers.NewRestHandler(
		authService,
		chatService,
		presenceService,
		deliveryService,
	)
	socketHandler := handlers.NewSocketHandler(
		presenceService,
		chatService,
		deliveryService,
	)

	httpServer.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketHandler,
		presenceService,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
