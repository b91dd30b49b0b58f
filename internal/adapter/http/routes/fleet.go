package routes

import (
	"okbikes_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles = "/vehicles"
	PathCatalog  = "/catalog"
	PathStores   = "/stores"
)

func addFleetRoutes(rg *gin.RouterGroup, fleetHandler *handlers.FleetHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("", fleetHandler.ListVehicles)
		vehicles.POST("", fleetHandler.CreateVehicle)
		vehicles.PUT("/:id", fleetHandler.UpdateVehicle)
		vehicles.DELETE("/:id", fleetHandler.DeleteVehicle)
		vehicles.PATCH("/:id/status", fleetHandler.ToggleVehicleStatus)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/brands", fleetHandler.Brands)
		catalog.GET("/brands/:id/models", fleetHandler.ModelsByBrand)
		catalog.GET("/categories", fleetHandler.Categories)
	}

	rg.GET(PathStores, fleetHandler.Stores)
}
