package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripfolio/internal/export"
	"tripfolio/internal/middleware"
	"tripfolio/internal/service"
)

// TripHandler handles trip CRUD and export endpoints.
type TripHandler struct {
	tripService service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

type createTripRequest struct {
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

type updateTripRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// Create handles POST /api/v1/trips
func (h *TripHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		return
	}

	trip, err := h.tripService.Create(c.Request.Context(), userID, service.CreateTripInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, trip)
}

// List handles GET /api/v1/trips
func (h *TripHandler) List(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	trips, err := h.tripService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, trips)
}

// GetByID handles GET /api/v1/trips/:id
func (h *TripHandler) GetByID(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid trip id")
		return
	}

	trip, err := h.tripService.Get(c.Request.Context(), userID, tripID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, trip)
}

// Update handles PATCH /api/v1/trips/:id
func (h *TripHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid trip id")
		return
	}

	var req updateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		return
	}

	trip, err := h.tripService.Update(c.Request.Context(), userID, tripID, service.UpdateTripInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, trip)
}

// Delete handles DELETE /api/v1/trips/:id
func (h *TripHandler) Delete(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid trip id")
		return
	}

	if err := h.tripService.Delete(c.Request.Context(), userID, tripID); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /api/v1/trips/export
func (h *TripHandler) Export(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	trips, err := h.tripService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="trips.xlsx"`)
	if err := export.WriteTripsXLSX(c.Writer, trips); err != nil {
		// Headers are already out; all we can do is log.
		HandleError(c, err)
	}
}
