package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/upload"
	"github.com/shenikar/emergency_dispatch_system/internal/ws"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	requestService service.HelpRequestService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
	uploads        upload.Storage
	hub            *ws.Hub
}

func NewHandler(requestService service.HelpRequestService, logger *logrus.Logger, cfg *config.Config, uploads upload.Storage, hub *ws.Hub) *Handler {
	return &Handler{
		requestService: requestService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
		uploads:        uploads,
		hub:            hub,
	}
}

// @Summary Report a new help request
// @Description Report a new emergency help request with an optional photo. Public endpoint.
// @Tags Requests
// @Accept multipart/form-data
// @Produce json
// @Param longitude formData number true "Longitude"
// @Param latitude formData number true "Latitude"
// @Param emergencyType formData string true "Emergency type"
// @Param victimCount formData string true "Victim count or bucket, e.g. 5+"
// @Param contactNumber formData string true "Contact number in E.164 format"
// @Param medicalInfo formData string false "Medical information"
// @Param image formData file false "Photo of the scene"
// @Success 201 {object} HelpRequestResponse
// @Failure 400 {object} map[string]string "Missing or malformed required field"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [post]
func (h *Handler) createHelpRequest(c *gin.Context) {
	var form CreateHelpRequestForm
	log := h.logger.WithField("method", "createHelpRequest")

	if err := c.ShouldBind(&form); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(form); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := FormToHelpRequestModel(form)

	// Фотография необязательна, её отсутствие ошибкой не является
	if file, err := c.FormFile("image"); err == nil && file != nil {
		path, err := h.uploads.Save(file)
		if err != nil {
			log.WithError(err).Error("Failed to store uploaded image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		model.Image = path
	}

	if err := h.requestService.Report(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to report help request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToHelpRequestResponse(model))
}

// @Summary Get a list of help requests
// @Description Get the full snapshot of help requests, newest first. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param view query string false "View filter" Enums(all, active, history) default(all)
// @Success 200 {array} HelpRequestResponse
// @Failure 400 {object} map[string]string "Invalid view value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [get]
func (h *Handler) listHelpRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listHelpRequests")

	view := c.DefaultQuery("view", service.ViewAll)
	if view != service.ViewAll && view != service.ViewActive && view != service.ViewHistory {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid view value"})
		return
	}

	requests, err := h.requestService.ListHelpRequests(c.Request.Context(), view)
	if err != nil {
		log.WithError(err).Error("Failed to list help requests from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHelpRequestResponses(requests))
}

// @Summary Get help request by ID
// @Description Get a single help request by its ID. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Help request ID"
// @Success 200 {object} HelpRequestResponse
// @Failure 400 {object} map[string]string "Invalid help request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Help request not found"
// @Router /requests/{id} [get]
func (h *Handler) getHelpRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid help request ID"})
		return
	}
	log := h.logger.WithField("method", "getHelpRequest").WithField("id", id)

	request, err := h.requestService.GetHelpRequest(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get help request from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "help request not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToHelpRequestResponse(request))
}

// @Summary Update help request status
// @Description Apply a status transition to a help request. An empty status keeps the current one. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Help request ID"
// @Param status body UpdateStatusRequest true "Status update request"
// @Success 200 {object} HelpRequestResponse
// @Failure 400 {object} map[string]string "Invalid help request ID or status value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Help request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/{id} [put]
func (h *Handler) updateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid help request ID"})
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.requestService.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			log.WithError(err).Warn("Help request not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "help request not found"})
		case errors.Is(err, service.ErrInvalidStatus):
			log.WithError(err).Warn("Invalid status value")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
		default:
			log.WithError(err).Error("Failed to update help request status in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, ModelToHelpRequestResponse(updated))
}

// @Summary Find help requests near a point
// @Description Find unresolved help requests within a radius of a point. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius_meters query int true "Search radius in meters"
// @Success 200 {array} HelpRequestResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/nearby [get]
func (h *Handler) findNearby(c *gin.Context) {
	var query NearbyQuery
	log := h.logger.WithField("method", "findNearby")

	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requests, err := h.requestService.FindNearby(c.Request.Context(), query.Latitude, query.Longitude, query.RadiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby help requests in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHelpRequestResponses(requests))
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
