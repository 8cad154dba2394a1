package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"carkeep.kr/consumable-service/pkg/lifecycle"
	"carkeep.kr/consumable-service/pkg/odometer"
	"carkeep.kr/consumable-service/pkg/tires"
)

type RestfulServer struct {
	Server           *gin.Engine
	Engine           *lifecycle.Engine
	Odometer         *odometer.Service
	Tires            *tires.Service
	RateLimiterStore *lifecycle.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(vehicleID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(vehicleID)
	}
}

func (rs *RestfulServer) CheckVehicleLimiter(vehicleID string) bool {
	limiter := rs.GetLimiter(vehicleID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(vehicleID string, vehicleRate float64, vehicleBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(vehicleID, rate.Limit(vehicleRate), vehicleBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	vehicles := rs.Server.Group("/vehicles/:vehicle_id")
	{
		vehicles.POST("/consumables/records", rs.PostRecord)
		vehicles.GET("/consumables/records", rs.SearchRecords)
		vehicles.GET("/consumables/records/latest", rs.GetLatestRecord)
		vehicles.PATCH("/consumables/records/:record_id", rs.PatchRecord)
		vehicles.POST("/consumables/records/bulk-delete", rs.BulkDeleteRecords)

		vehicles.GET("/consumables/items", rs.GetItems)
		vehicles.POST("/consumables/items", rs.PostItem)
		vehicles.PUT("/consumables/items/:item_id", rs.PutItem)
		vehicles.DELETE("/consumables/items/:item_id", rs.DeleteItem)

		vehicles.GET("/consumables/status", rs.GetStatus)
		vehicles.POST("/consumables/drafts", rs.PostDraft)
		vehicles.GET("/consumables/drafts", rs.GetDraft)

		vehicles.GET("/due-summary", rs.GetDueSummary)
		vehicles.GET("/costs", rs.GetCostSummary)

		vehicles.POST("/odometer", rs.PostOdometer)
		vehicles.GET("/odometer/current", rs.GetOdometerCurrent)
		vehicles.GET("/odometer/monthly", rs.GetOdometerMonthly)

		vehicles.GET("/tires/summary", rs.GetTireSummary)

		vehicles.POST("/limiter", rs.PostLimiter)
	}
}
