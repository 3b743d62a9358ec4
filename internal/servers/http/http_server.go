package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"pairchat/configs"
	"pairchat/internal/handlers"
	"pairchat/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx             context.Context
	config          *configs.Config
	router          *gin.Engine
	restHandler     *handlers.RestHandler
	socketHandler   *handlers.SocketHandler
	presenceService *services.PresenceService
}

func NewHttpServer(
	ctx context.Context,
	config *configs.Config,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketHandler,
	presenceService *services.PresenceService,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:             ctx,
			config:          config,
			restHandler:     restHandler,
			socketHandler:   socketHandler,
			presenceService: presenceService,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	server := hs.startServer()

	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.POST("/auth/register", hs.restHandler.Register)
	hs.router.POST("/auth/login", hs.restHandler.Login)

	authenticated := hs.router.Group("/", hs.restHandler.MustAuthenticateMiddleware())
	authenticated.GET("/users", hs.restHandler.GetAllUsersWithPagination)
	authenticated.GET("/users/online", hs.restHandler.GetOnlineUsers)
	authenticated.GET("/conversations", hs.restHandler.GetUserConversations)
	authenticated.POST("/messages/:receiverId", hs.restHandler.SendMessage)
	authenticated.GET("/messages/:receiverId", hs.restHandler.GetMessages)
}

func (hs *HttpServer) setupWebSocketRoutes() {
	// Socket auth happens inside the handler, before the upgrade.
	hs.router.GET("/ws", hs.socketHandler.HandleSocketRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.config.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %v", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	hs.presenceService.Shutdown()

	log.Println("Server exiting")
}
