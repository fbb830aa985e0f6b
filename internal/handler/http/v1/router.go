package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/policy"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Ключ приложения проверяется только на маршрутах записи.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Журнал инцидентов: только добавление
	incidents := api.Group("/incidents")
	{
		incidents.POST("", auth, h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.rejectModification(policy.EntityIncident, policy.Update()))
		incidents.PATCH("/:id", h.rejectModification(policy.EntityIncident, policy.Update()))
		incidents.DELETE("/:id", h.rejectModification(policy.EntityIncident, policy.Delete()))
	}

	officers := api.Group("/officers")
	{
		officers.GET("/:badge", h.getOfficer)
		officers.GET("/:badge/incidents", h.listOfficerIncidents)
		officers.PUT("/:badge", h.rejectModification(policy.EntityOfficer, policy.Update()))
		officers.DELETE("/:badge", h.rejectModification(policy.EntityOfficer, policy.Delete()))
	}

	sightings := api.Group("/sightings")
	{
		sightings.POST("", auth, h.createSighting)
		sightings.GET("", h.listSightings)
		sightings.GET("/:id", h.getSighting)
		sightings.POST("/:id/confirm", auth, h.voteSighting(models.VoteConfirm))
		sightings.POST("/:id/not-there", auth, h.voteSighting(models.VoteNotThere))
		sightings.PUT("/:id", h.rejectModification(policy.EntitySighting, policy.Update()))
		sightings.DELETE("/:id", h.rejectModification(policy.EntitySighting, policy.Delete()))
	}

	departments := api.Group("/departments")
	{
		departments.GET("", h.listDepartments)
		departments.GET("/:id", h.getDepartment)
		departments.PUT("/:id", h.rejectModification(policy.EntityDepartment, policy.Update()))
		departments.DELETE("/:id", h.rejectModification(policy.EntityDepartment, policy.Delete()))
	}

	api.GET("/tiles", h.getTile)
	api.GET("/device-salt", h.getDeviceSalt)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
