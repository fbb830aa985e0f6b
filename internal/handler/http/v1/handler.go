package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/raayraay69/blue-ledger/internal/config"
	"github.com/raayraay69/blue-ledger/internal/devicetoken"
	"github.com/raayraay69/blue-ledger/internal/geo"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/policy"
	"github.com/raayraay69/blue-ledger/internal/service"
	"github.com/sirupsen/logrus"
)

// DeviceTokenHeader - заголовок с токеном устройства для операций записи
const DeviceTokenHeader = "X-Device-Token"

// SaltSource отдает публичную соль текущих суток
type SaltSource interface {
	Current() (devicetoken.Salt, error)
}

type Handler struct {
	gateway  service.Gateway
	salts    SaltSource
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(gateway service.Gateway, salts SaltSource, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		gateway:  gateway,
		salts:    salts,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// respondError переводит доменную ошибку в HTTP-статус.
// Текст внутренних ошибок клиенту не отдается.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, models.ErrRateLimitExceeded):
		log.WithError(err).Warn("Request rate limited")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
	case errors.Is(err, models.ErrImmutableRecord):
		log.WithError(err).Warn("Attempt to modify immutable record")
		c.JSON(http.StatusConflict, gin.H{"error": "record is immutable"})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Info("Record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrForbidden):
		log.WithError(err).Warn("Operation forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindQuery разбирает и проверяет параметры запроса
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// bindJSON разбирает и проверяет тело запроса
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// rejectModification направляет попытку изменения записи через таблицу доступа
// @Summary Update or delete a record
// @Description Incidents are append-only. Officers, sightings and departments are maintained by the service. Every external update or delete is rejected.
// @Tags Policy
// @Produce json
// @Param id path string true "Record ID or badge number"
// @Failure 409 {object} map[string]string "Record is immutable"
// @Router /incidents/{id} [put]
// @Router /incidents/{id} [patch]
// @Router /incidents/{id} [delete]
// @Router /officers/{id} [put]
// @Router /officers/{id} [delete]
// @Router /sightings/{id} [put]
// @Router /sightings/{id} [delete]
// @Router /departments/{id} [put]
// @Router /departments/{id} [delete]
func (h *Handler) rejectModification(entity policy.Entity, op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := h.logger.WithFields(logrus.Fields{
			"method":    "modify",
			"entity":    entity,
			"operation": op.String(),
		})
		id := c.Param("id")
		if id == "" {
			id = c.Param("badge")
		}
		err := h.gateway.Modify(c.Request.Context(), entity, op, id)
		if err == nil {
			// Таблица доступа не разрешает внешние изменения, до этой ветки дойти нельзя
			err = models.ErrForbidden
		}
		h.respondError(c, log, err)
	}
}

// @Summary Get location tile
// @Description Get the coarse tile key for a coordinate. Subscribers use it to receive sighting notifications for a region.
// @Tags Location
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param size query number false "Tile size in degrees" default(0.5)
// @Success 200 {object} TileResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or size"
// @Router /tiles [get]
func (h *Handler) getTile(c *gin.Context) {
	log := h.logger.WithField("method", "getTile")
	var params TileParams
	if !h.bindQuery(c, log, &params) {
		return
	}
	size := params.Size
	if size == 0 {
		size = geo.DefaultTileSize
	}
	tile, err := geo.Tile(*params.Lat, *params.Lng, size)
	if err != nil {
		log.WithError(err).Warn("Failed to compute tile")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, TileResponse{Tile: tile, Size: size})
}

// @Summary Get device salt
// @Description Get the public salt of the current day. Clients derive X-Device-Token from it and a local identifier that never leaves the device.
// @Tags System
// @Produce json
// @Success 200 {object} SaltResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /device-salt [get]
func (h *Handler) getDeviceSalt(c *gin.Context) {
	log := h.logger.WithField("method", "getDeviceSalt")
	salt, err := h.salts.Current()
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SaltToResponse(salt))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
