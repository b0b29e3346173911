package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/location_tracker/internal/config"
	"github.com/shenikar/location_tracker/internal/models"
	"github.com/shenikar/location_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	locationService service.LocationService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(locationService service.LocationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		locationService: locationService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// identifierFilterFromQuery читает фильтр идентификатора из query-параметров
func identifierFilterFromQuery(c *gin.Context) models.IdentifierFilter {
	return models.IdentifierFilter{
		PhoneNumber: c.Query("phoneNumber"),
		Email:       c.Query("email"),
	}
}

// fail отправляет конверт ошибки {success: false, error: message}
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// isValidationError сообщает, относится ли ошибка сервиса к валидации запроса
func isValidationError(err error) bool {
	return errors.Is(err, service.ErrIdentifierMissing) ||
		errors.Is(err, service.ErrCoordinatesMissing) ||
		errors.Is(err, service.ErrCoordinatesOutOfRange)
}

// @Summary Track a location
// @Description Validate and persist a new location report, returning the assigned id and an analysis summary.
// @Tags Location
// @Accept json
// @Produce json
// @Param location body TrackLocationRequest true "Location report"
// @Success 200 {object} TrackLocationResponse
// @Failure 400 {object} ErrorResponse "Missing identifier or coordinates"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /location/track [post]
func (h *Handler) trackLocation(c *gin.Context) {
	var input TrackLocationRequest
	log := h.logger.WithField("method", "trackLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	loc, analysis, err := h.locationService.TrackLocation(c.Request.Context(), DTOToTrackInput(input))
	if err != nil {
		if isValidationError(err) {
			log.WithError(err).Warn("Track request rejected")
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to track location in service")
		fail(c, http.StatusInternalServerError, "failed to save location")
		return
	}

	c.JSON(http.StatusOK, TrackLocationResponse{
		Success:   true,
		Message:   "Location tracked successfully",
		ID:        loc.ID,
		Analysis:  analysis,
		Timestamp: loc.RecordedAt,
	})
}

// @Summary Get the latest location
// @Description Get the most recent location report for a user identified by phone number and/or email.
// @Tags Location
// @Produce json
// @Param phoneNumber query string false "Phone number"
// @Param email query string false "Email"
// @Success 200 {object} LatestLocationResponse
// @Failure 400 {object} ErrorResponse "Missing identifier"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /location/latest [get]
func (h *Handler) latestLocation(c *gin.Context) {
	log := h.logger.WithField("method", "latestLocation")

	loc, analysis, err := h.locationService.GetLatestLocation(c.Request.Context(), identifierFilterFromQuery(c))
	if err != nil {
		if isValidationError(err) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to get latest location from service")
		fail(c, http.StatusInternalServerError, "failed to retrieve location")
		return
	}

	if loc == nil {
		// Ноль записей - успешный ответ с пустым результатом, не ошибка
		c.JSON(http.StatusOK, LatestLocationResponse{
			Success: true,
			Message: "No location found",
			Error:   "No tracked locations for this user",
		})
		return
	}

	c.JSON(http.StatusOK, LatestLocationResponse{
		Success:  true,
		Location: ModelToEnrichedLocation(loc),
		Analysis: analysis,
	})
}

// @Summary Get location history
// @Description Get location reports for a user, newest first. The limit defaults to 50.
// @Tags Location
// @Produce json
// @Param phoneNumber query string false "Phone number"
// @Param email query string false "Email"
// @Param limit query int false "Maximum number of rows" default(50)
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse "Missing identifier"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /location/history [get]
func (h *Handler) locationHistory(c *gin.Context) {
	log := h.logger.WithField("method", "locationHistory")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	locations, err := h.locationService.GetLocationHistory(c.Request.Context(), identifierFilterFromQuery(c), limit)
	if err != nil {
		if isValidationError(err) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to get location history from service")
		fail(c, http.StatusInternalServerError, "failed to retrieve history")
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Success:   true,
		Count:     len(locations),
		Locations: locations,
	})
}

// @Summary Get location statistics
// @Description Get aggregate statistics over a user's location reports.
// @Tags Location
// @Produce json
// @Param phoneNumber query string false "Phone number"
// @Param email query string false "Email"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse "Missing identifier"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /location/stats [get]
func (h *Handler) locationStats(c *gin.Context) {
	log := h.logger.WithField("method", "locationStats")

	stats, err := h.locationService.GetLocationStats(c.Request.Context(), identifierFilterFromQuery(c))
	if err != nil {
		if isValidationError(err) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to get location stats from service")
		fail(c, http.StatusInternalServerError, "failed to calculate statistics")
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Success: true, Statistics: stats})
}

// @Summary List recently seen users
// @Description List distinct (phone, email) pairs from the most recent location reports.
// @Tags Users
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *Handler) recentUsers(c *gin.Context) {
	log := h.logger.WithField("method", "recentUsers")

	users, err := h.locationService.GetRecentUsers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get recent users from service")
		fail(c, http.StatusInternalServerError, "failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, UsersResponse{Success: true, Users: users})
}

// @Summary Calculate distance between two points
// @Description Compute the great-circle distance between two coordinate pairs. No store interaction.
// @Tags Location
// @Accept json
// @Produce json
// @Param coordinates body DistanceRequest true "Two coordinate pairs"
// @Success 200 {object} DistanceResponse
// @Failure 400 {object} ErrorResponse "Missing coordinates"
// @Router /location/distance [post]
func (h *Handler) calculateDistance(c *gin.Context) {
	var input DistanceRequest
	log := h.logger.WithField("method", "calculateDistance")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		fail(c, http.StatusBadRequest, "all coordinates are required")
		return
	}

	meters := h.locationService.CalculateDistance(*input.Lat1, *input.Lon1, *input.Lat2, *input.Lon2)

	c.JSON(http.StatusOK, DistanceResponse{
		Success:        true,
		DistanceMeters: meters,
		DistanceKm:     strconv.FormatFloat(meters/1000, 'f', 3, 64),
	})
}

// @Summary Delete a location report
// @Description Delete a location report by id. Deleting a non-existent id is reported as success.
// @Tags Location
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid location ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /location/delete/{id} [delete]
func (h *Handler) deleteLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid location ID")
		return
	}
	log := h.logger.WithField("method", "deleteLocation").WithField("id", id)

	if err := h.locationService.DeleteLocation(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete location in service")
		fail(c, http.StatusInternalServerError, "failed to delete location")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Location deleted successfully"})
}

// @Summary Get application health status
// @Description Get health status of the application and its database connection
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} ErrorResponse "Database unreachable"
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.locationService.HealthCheck(c.Request.Context()); err != nil {
		h.logger.WithError(err).Error("Health check failed")
		fail(c, http.StatusInternalServerError, "database is not reachable")
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Success:   true,
		Status:    "Backend is running",
		Timestamp: time.Now().UTC(),
		Database:  "Connected",
	})
}

// @Summary Get API info
// @Description Get the API name, version and feature list
// @Tags System
// @Produce json
// @Success 200 {object} InfoResponse
// @Router /info [get]
func (h *Handler) apiInfo(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Name:      "Location Tracker API",
		Version:   "2.0.0",
		Features:  []string{"Location tracking", "Distance calculation", "Location statistics", "Map links"},
		Endpoints: 8,
	})
}
