package handler

import (
	"errors"
	"net/http"
	"strconv"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
	"parking_transit/internal/service"

	"github.com/gin-gonic/gin"
)

type TransitHandler struct {
	transitService *service.TransitService
}

func NewTransitHandler(ts *service.TransitService) *TransitHandler {
	return &TransitHandler{transitService: ts}
}

// POST /transits
func (h *TransitHandler) Open(c *gin.Context) {
	var dto domain.OpenTransitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	transit, err := h.transitService.Open(c.Request.Context(), dto)
	if err != nil {
		writeTransitError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transit)
}

// POST /transits/:id/close
func (h *TransitHandler) Close(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transit id"})
		return
	}

	var dto domain.CloseTransitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	transit, err := h.transitService.Close(c.Request.Context(), id, dto)
	if err != nil {
		writeTransitError(c, err)
		return
	}
	c.JSON(http.StatusOK, transit)
}

// GET /transits/:id
func (h *TransitHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transit id"})
		return
	}

	transit, err := h.transitService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load transit"})
		return
	}
	c.JSON(http.StatusOK, transit)
}

// GET /lots/:id/transits/open
func (h *TransitHandler) ListOpenByLot(c *gin.Context) {
	lotID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lot id"})
		return
	}

	transits, err := h.transitService.GetOpenByLot(c.Request.Context(), lotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list open transits"})
		return
	}
	c.JSON(http.StatusOK, transits)
}

// writeTransitError translates the core's error kinds into status codes. The
// distinction between "your request is invalid" and "the system failed" lives
// here only.
func writeTransitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrTransitAlreadyClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInterval),
		errors.Is(err, service.ErrGateDirection),
		errors.Is(err, service.ErrGateLotMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTariffUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}
