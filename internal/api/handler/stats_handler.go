package handler

import (
	"errors"
	"net/http"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
	"parking_transit/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(ss *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: ss}
}

// GET /stats?lotId=&from=&to=
func (h *StatsHandler) Aggregate(c *gin.Context) {
	var filter domain.TransitWindowFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})
		return
	}

	report, err := h.statsService.Aggregate(c.Request.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not aggregate statistics", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, report)
}
