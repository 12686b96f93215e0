package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonsuite/backend/internal/application/crud"
	"github.com/salonsuite/backend/internal/domain/resource"
	"github.com/salonsuite/backend/internal/infrastructure/auth"
	"github.com/salonsuite/backend/internal/infrastructure/config"
	"github.com/salonsuite/backend/internal/infrastructure/logger"
	"github.com/salonsuite/backend/internal/infrastructure/persistence"
	"github.com/salonsuite/backend/internal/interfaces/http/handler"
	"github.com/salonsuite/backend/internal/interfaces/http/middleware"
	"github.com/salonsuite/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting salonsuite backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if cfg.App.Env == "development" {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenExpiration)

	appointmentSvc := crud.NewService(
		crud.Config{Name: "appointments", Order: "starts_at DESC"},
		persistence.NewStore[resource.Appointment](db.DB), log)
	clientSvc := crud.NewService(
		crud.Config{Name: "clients", Order: "created_at DESC"},
		persistence.NewStore[resource.Client](db.DB), log)
	productSvc := crud.NewService(
		crud.Config{Name: "products", Order: "created_at DESC"},
		persistence.NewStore[resource.Product](db.DB), log)
	financialEntrySvc := crud.NewService(
		crud.Config{Name: "financial-entries", Order: "entry_date DESC"},
		persistence.NewStore[resource.FinancialEntry](db.DB), log)
	professionalSvc := crud.NewService(
		crud.Config{Name: "professionals", Order: "created_at DESC"},
		persistence.NewStore[resource.Professional](db.DB), log)
	serviceSvc := crud.NewService(
		crud.Config{Name: "services", Order: "created_at DESC"},
		persistence.NewStore[resource.Service](db.DB), log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	systemHandler := handler.NewSystemHandler(db.Ping)
	engine.GET("/health", systemHandler.Health)

	router.New(engine).
		Register(handler.NewAppointmentHandler(appointmentSvc)).
		Register(handler.NewClientHandler(clientSvc)).
		Register(handler.NewProductHandler(productSvc)).
		Register(handler.NewFinancialEntryHandler(financialEntrySvc)).
		Register(handler.NewProfessionalHandler(professionalSvc)).
		Register(handler.NewServiceHandler(serviceSvc)).
		Setup(middleware.Auth(jwtService))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
