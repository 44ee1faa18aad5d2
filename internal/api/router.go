package api

import (
	"parking_transit/internal/api/handler"
	"parking_transit/internal/api/middleware"
	"parking_transit/internal/domain"
	"parking_transit/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	authService *service.AuthService,
	transitService *service.TransitService,
	catalogService *service.CatalogService,
	statsService *service.StatsService,
	authMw *middleware.AuthMiddleware,
) *gin.Engine {
	r := gin.Default()

	authHandler := handler.NewAuthHandler(authService)
	transitHandler := handler.NewTransitHandler(transitService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	statsHandler := handler.NewStatsHandler(statsService)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Gate terminals and operators drive the transit lifecycle.
	transits := r.Group("/transits")
	transits.Use(authMw.Authenticate(), authMw.AuthorizeRole(domain.RoleGateTerminal, domain.RoleOperator))
	{
		transits.POST("", transitHandler.Open)
		transits.POST("/:id/close", transitHandler.Close)
		transits.GET("/:id", transitHandler.GetByID)
	}

	// Catalog mutation and reporting are operator-only; reads are open to any
	// authenticated user.
	lots := r.Group("/lots")
	lots.Use(authMw.Authenticate())
	{
		lots.GET("", catalogHandler.ListLots)
		lots.GET("/:id", catalogHandler.GetLot)
		lots.GET("/:id/gates", catalogHandler.ListGatesByLot)
		lots.GET("/:id/tariffs", catalogHandler.ListTariffsByLot)
		lots.GET("/:id/transits/open", transitHandler.ListOpenByLot)

		operator := lots.Group("")
		operator.Use(authMw.AuthorizeRole(domain.RoleOperator))
		{
			operator.POST("", catalogHandler.CreateLot)
			operator.PUT("/:id", catalogHandler.UpdateLot)
			operator.DELETE("/:id", catalogHandler.DeleteLot)
		}
	}

	gates := r.Group("/gates")
	gates.Use(authMw.Authenticate())
	{
		gates.GET("/:id", catalogHandler.GetGate)

		operator := gates.Group("")
		operator.Use(authMw.AuthorizeRole(domain.RoleOperator))
		{
			operator.POST("", catalogHandler.CreateGate)
			operator.PUT("/:id", catalogHandler.UpdateGate)
			operator.DELETE("/:id", catalogHandler.DeleteGate)
		}
	}

	vehicleTypes := r.Group("/vehicle-types")
	vehicleTypes.Use(authMw.Authenticate())
	{
		vehicleTypes.GET("", catalogHandler.ListVehicleTypes)

		operator := vehicleTypes.Group("")
		operator.Use(authMw.AuthorizeRole(domain.RoleOperator))
		{
			operator.POST("", catalogHandler.CreateVehicleType)
			operator.DELETE("/:id", catalogHandler.DeleteVehicleType)
		}
	}

	tariffs := r.Group("/tariffs")
	tariffs.Use(authMw.Authenticate(), authMw.AuthorizeRole(domain.RoleOperator))
	{
		tariffs.POST("", catalogHandler.CreateTariff)
		tariffs.PUT("/:id", catalogHandler.UpdateTariff)
		tariffs.DELETE("/:id", catalogHandler.DeleteTariff)
	}

	stats := r.Group("/stats")
	stats.Use(authMw.Authenticate(), authMw.AuthorizeRole(domain.RoleOperator))
	{
		stats.GET("", statsHandler.Aggregate)
	}

	return r
}
