package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/models"
)

const defaultSightingRadiusMiles = 10

// @Summary Report a sighting
// @Description Create an ephemeral sighting that expires after a fixed TTL. Requires X-Device-Token and, if configured, the app API key.
// @Tags Sightings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Device-Token header string true "Device token derived from the daily salt"
// @Param sighting body CreateSightingRequest true "Sighting report"
// @Success 201 {object} SightingResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sightings [post]
func (h *Handler) createSighting(c *gin.Context) {
	var input CreateSightingRequest
	log := h.logger.WithField("method", "createSighting")

	if !h.bindJSON(c, log, &input) {
		return
	}

	sighting, err := h.gateway.ReportSighting(c.Request.Context(), DTOToSightingReport(input, c.GetHeader(DeviceTokenHeader)))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSightingResponse(sighting))
}

// @Summary Get sightings in radius
// @Description Get active, unexpired sightings within a radius of a point.
// @Tags Sightings
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_miles query number false "Radius in miles" default(10)
// @Param order query string false "recent or nearest" default(recent)
// @Param limit query int false "Maximum number of results" default(100)
// @Success 200 {array} SightingResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sightings [get]
func (h *Handler) listSightings(c *gin.Context) {
	log := h.logger.WithField("method", "listSightings")
	var params RadiusParams
	if !h.bindQuery(c, log, &params) {
		return
	}

	sightings, err := h.gateway.SightingsInRadius(c.Request.Context(), radiusQuery(params, defaultSightingRadiusMiles))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSightingResponses(sightings))
}

// @Summary Get sighting by ID
// @Description Get a sighting if it is active and not expired.
// @Tags Sightings
// @Produce json
// @Param id path string true "Sighting ID"
// @Success 200 {object} SightingResponse
// @Failure 400 {object} map[string]string "Invalid sighting ID"
// @Failure 404 {object} map[string]string "Sighting not found or no longer active"
// @Router /sightings/{id} [get]
func (h *Handler) getSighting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sighting ID"})
		return
	}
	log := h.logger.WithField("method", "getSighting").WithField("id", id)

	sighting, err := h.gateway.GetSighting(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSightingResponse(sighting))
}

// @Summary Vote on a sighting
// @Description Confirm a sighting or mark it as no longer there. Votes on inactive or expired sightings are accepted, change nothing and return applied=false without the record.
// @Tags Sightings
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Sighting ID"
// @Param X-Device-Token header string true "Device token derived from the daily salt"
// @Success 200 {object} VoteResponse
// @Failure 400 {object} map[string]string "Invalid sighting ID or token"
// @Failure 404 {object} map[string]string "Sighting not found"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /sightings/{id}/confirm [post]
// @Router /sightings/{id}/not-there [post]
func (h *Handler) voteSighting(kind models.VoteKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sighting ID"})
			return
		}
		log := h.logger.WithField("method", "voteSighting").WithField("id", id).WithField("kind", kind)

		result, err := h.gateway.VoteSighting(c.Request.Context(), id, kind, c.GetHeader(DeviceTokenHeader))
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelToVoteResponse(result))
	}
}
