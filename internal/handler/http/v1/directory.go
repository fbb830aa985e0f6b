package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Get officer aggregate
// @Description Get aggregated statistics for a badge number.
// @Tags Officers
// @Produce json
// @Param badge path string true "Badge number"
// @Success 200 {object} OfficerResponse
// @Failure 404 {object} map[string]string "Officer not found"
// @Router /officers/{badge} [get]
func (h *Handler) getOfficer(c *gin.Context) {
	badge := c.Param("badge")
	log := h.logger.WithField("method", "getOfficer").WithField("badge", badge)

	officer, err := h.gateway.GetOfficer(c.Request.Context(), badge)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToOfficerResponse(officer))
}

// @Summary Get incidents by badge
// @Description Get incidents reported for a badge number, newest first.
// @Tags Officers
// @Produce json
// @Param badge path string true "Badge number"
// @Param limit query int false "Maximum number of results" default(100)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /officers/{badge}/incidents [get]
func (h *Handler) listOfficerIncidents(c *gin.Context) {
	badge := c.Param("badge")
	log := h.logger.WithField("method", "listOfficerIncidents").WithField("badge", badge)
	var params ListParams
	if !h.bindQuery(c, log, &params) {
		return
	}

	incidents, err := h.gateway.IncidentsByBadge(c.Request.Context(), badge, params.Limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary List departments
// @Description Get the department directory.
// @Tags Departments
// @Produce json
// @Success 200 {array} DepartmentResponse
// @Router /departments [get]
func (h *Handler) listDepartments(c *gin.Context) {
	log := h.logger.WithField("method", "listDepartments")

	departments, err := h.gateway.ListDepartments(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDepartmentResponses(departments))
}

// @Summary Get department by ID
// @Description Get a single department directory entry.
// @Tags Departments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} DepartmentResponse
// @Failure 400 {object} map[string]string "Invalid department ID"
// @Failure 404 {object} map[string]string "Department not found"
// @Router /departments/{id} [get]
func (h *Handler) getDepartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid department ID"})
		return
	}
	log := h.logger.WithField("method", "getDepartment").WithField("id", id)

	department, err := h.gateway.GetDepartment(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDepartmentResponse(department))
}
