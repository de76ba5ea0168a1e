package routes

import (
	"repairflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs = "/jobs"
)

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.POST("/:id/transitions", jobHandler.ProposeTransition)
		jobs.PATCH("/:id/items", jobHandler.ApplyItemMutation)
		jobs.GET("/:id/status", jobHandler.GetStatus)
		jobs.GET("/:id/stock-check", jobHandler.CheckStock)
		jobs.POST("/:id/close", jobHandler.CloseJob)
		jobs.POST("/:id/convert", jobHandler.ConvertToRepairOrder)
	}
}
