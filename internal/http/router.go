package http

import (
	"database/sql"
	"time"

	"alfatih-backend/internal/auth"
	"alfatih-backend/internal/config"
	"alfatih-backend/internal/http/handlers"
	"alfatih-backend/internal/http/middleware"
	"alfatih-backend/internal/repositories"
	"alfatih-backend/internal/services"
	"alfatih-backend/internal/storage"
	"alfatih-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires repositories, services and handlers onto one engine.
func NewRouter(env config.Env, conn *sql.DB, store *storage.LocalStore) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	packageRepo := &repositories.PackageRepository{DB: conn}
	orderRepo := &repositories.OrderRepository{DB: conn}
	participantRepo := &repositories.ParticipantRepository{DB: conn}
	airlineRepo := &repositories.AirlineRepository{DB: conn}
	hotelRepo := &repositories.HotelRepository{DB: conn}
	settingsRepo := &repositories.SettingsRepository{DB: conn}
	tripRepo := &repositories.PrivateTripRepository{DB: conn}

	planner := &services.PlannerService{
		Endpoint: env.PlannerEndpoint,
		APIKey:   env.PlannerAPIKey,
	}

	verifier := auth.NewVerifier(env.JWTSecret)
	tracker := auth.NewTracker()
	authLog := logger.WithComponent("auth")
	tracker.Subscribe(func(s auth.State) {
		authLog.Info("auth state changed", zap.String("state", s.String()))
	})

	systemH := handlers.SystemHandler{
		Env:          env,
		Packages:     packageRepo,
		Orders:       orderRepo,
		Participants: participantRepo,
		PrivateTrips: tripRepo,
	}
	authH := handlers.AuthHandler{DB: conn, Verifier: verifier}
	packageH := handlers.PackageHandler{Packages: packageRepo, Store: store}
	orderH := handlers.OrderHandler{
		DB:           conn,
		Packages:     packageRepo,
		Orders:       orderRepo,
		Participants: participantRepo,
	}
	airlineH := handlers.AirlineHandler{Airlines: airlineRepo}
	hotelH := handlers.HotelHandler{Hotels: hotelRepo}
	settingsH := handlers.SettingsHandler{Settings: settingsRepo}
	tripH := handlers.PrivateTripHandler{PrivateTrips: tripRepo, Planner: planner}
	plannerH := handlers.PlannerHandler{Planner: planner}

	r.Static("/storage", env.StorageDir)

	api := r.Group("/api")
	{
		api.GET("/health", systemH.Health)
		api.GET("/db-check", systemH.DBCheck)

		api.POST("/auth/login", authH.Login)
		api.POST("/auth/register", authH.Register)

		api.GET("/packages", packageH.List)
		api.GET("/packages/:slug", packageH.GetBySlug)
		api.GET("/airlines", airlineH.List)
		api.GET("/hotels", hotelH.List)
		api.GET("/settings", settingsH.Get)

		api.POST("/planner/itinerary", plannerH.Generate)
		api.POST("/private-trips", tripH.Create)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(verifier, tracker))
	{
		admin.GET("/dashboard", systemH.Dashboard)

		admin.GET("/packages", packageH.List)
		admin.GET("/packages/:id", packageH.GetByID)
		admin.POST("/packages", packageH.Create)
		admin.PUT("/packages/:id", packageH.Update)
		admin.DELETE("/packages/:id", packageH.Delete)

		admin.GET("/orders", orderH.List)
		admin.GET("/orders/:id", orderH.Get)
		admin.POST("/orders", orderH.Save)
		admin.PUT("/orders/:id", orderH.Update)
		admin.DELETE("/orders/:id", orderH.Delete)
		admin.GET("/orders/:id/participants", orderH.ListParticipants)
		admin.GET("/orders/:id/invoice", orderH.Invoice)
		admin.GET("/orders/:id/manifest", orderH.Manifest)

		admin.POST("/airlines", airlineH.Create)
		admin.PUT("/airlines/:id", airlineH.Update)
		admin.DELETE("/airlines/:id", airlineH.Delete)

		admin.POST("/hotels", hotelH.Create)
		admin.PUT("/hotels/:id", hotelH.Update)
		admin.DELETE("/hotels/:id", hotelH.Delete)

		admin.PUT("/settings", settingsH.Update)

		admin.GET("/private-trips", tripH.List)
		admin.PATCH("/private-trips/:id/status", tripH.UpdateStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "endpoint tidak ditemukan"})
	})

	return r
}
