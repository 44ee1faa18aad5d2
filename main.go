package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parking_transit/internal/api"
	"parking_transit/internal/api/middleware"
	"parking_transit/internal/config"
	"parking_transit/internal/repository/postgresql"
	"parking_transit/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := postgresql.NewDB(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connection established.")

	lotRepo := postgresql.NewPgLotRepository(db)
	gateRepo := postgresql.NewPgGateRepository(db)
	vehicleTypeRepo := postgresql.NewPgVehicleTypeRepository(db)
	vehicleRepo := postgresql.NewPgVehicleRepository(db)
	tariffRepo := postgresql.NewPgTariffRepository(db)
	transitRepo := postgresql.NewPgTransitRepository(db)
	userRepo := postgresql.NewPgUserRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpirationHours)
	tariffService := service.NewTariffService(tariffRepo)
	transitService := service.NewTransitService(lotRepo, gateRepo, vehicleRepo, vehicleTypeRepo, transitRepo, tariffService)
	catalogService := service.NewCatalogService(lotRepo, gateRepo, vehicleTypeRepo, tariffRepo)
	statsService := service.NewStatsService(lotRepo, vehicleRepo, vehicleTypeRepo, transitRepo)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	router := api.SetupRouter(authService, transitService, catalogService, statsService, authMiddleware)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shut down: %v", err)
	}
	log.Println("Server stopped.")
}
