// File: consultify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultify/config"
	"consultify/database"
	blogRepo "consultify/database/repository/blog"
	commentRepo "consultify/database/repository/comment"
	slotRepo "consultify/database/repository/slot"
	"consultify/handlers"
	"consultify/middleware"
	"consultify/routes"
	"consultify/services/availability"
	"consultify/services/blog"
	"consultify/services/contact"
	slotService "consultify/services/slot"
	"consultify/services/storage"
	"consultify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("main: failed to load config: %v", err)
	}
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	loc, err := cfg.Location()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	mongoClient, err := database.Connect(context.Background(), cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := mongoClient.Database(cfg.DatabaseName)
	utils.StartHealthMonitor(mongoClient)

	storageService, err := storage.NewCloudinaryStorage(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	slots := slotRepo.NewMongoSlotRepo(db)
	blogs := blogRepo.NewMongoBlogRepo(db)
	comments := commentRepo.NewMongoCommentRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelIndexes()
	for _, ensure := range []func(context.Context) error{
		slots.EnsureIndexes, blogs.EnsureIndexes, comments.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	engine := &availability.Engine{Repo: slots, Loc: loc}
	slotSvc := &slotService.DefaultSlotService{Repo: slots, Loc: loc}
	blogSvc := &blog.DefaultBlogService{
		Blogs:    blogs,
		Comments: comments,
		Storage:  storageService,
	}
	contactSvc := &contact.DefaultContactService{
		Mailer:          contact.NewSMTPMailer(cfg),
		ConsultantEmail: cfg.ConsultantEmail,
	}

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Auth:    handlers.NewAuthHandler(cfg, tokens),
		Admin:   handlers.NewAdminHandler(blogSvc),
		Slots:   handlers.NewSlotHandler(slotSvc, engine),
		Blog:    handlers.NewBlogHandler(blogSvc),
		Contact: handlers.NewContactHandler(contactSvc),
		Tokens:  tokens,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
