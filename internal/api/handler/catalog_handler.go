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

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(cs *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// --- Lots ---

func (h *CatalogHandler) CreateLot(c *gin.Context) {
	var dto domain.LotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	lot, err := h.catalogService.CreateLot(c.Request.Context(), dto)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lot)
}

func (h *CatalogHandler) GetLot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	lot, err := h.catalogService.GetLotByID(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, lot)
}

func (h *CatalogHandler) ListLots(c *gin.Context) {
	lots, err := h.catalogService.GetAllLots(c.Request.Context())
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, lots)
}

func (h *CatalogHandler) UpdateLot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	var dto domain.LotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	lot, err := h.catalogService.UpdateLot(c.Request.Context(), id, dto)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, lot)
}

func (h *CatalogHandler) DeleteLot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	if err := h.catalogService.DeleteLot(c.Request.Context(), id); err != nil {
		writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Gates ---

func (h *CatalogHandler) CreateGate(c *gin.Context) {
	var dto domain.GateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	gate, err := h.catalogService.CreateGate(c.Request.Context(), dto)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gate)
}

func (h *CatalogHandler) GetGate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	gate, err := h.catalogService.GetGateByID(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gate)
}

func (h *CatalogHandler) ListGatesByLot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	gates, err := h.catalogService.GetGatesByLot(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gates)
}

func (h *CatalogHandler) UpdateGate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	var dto domain.GateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	gate, err := h.catalogService.UpdateGate(c.Request.Context(), id, dto)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gate)
}

func (h *CatalogHandler) DeleteGate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	if err := h.catalogService.DeleteGate(c.Request.Context(), id); err != nil {
		writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Vehicle types ---

func (h *CatalogHandler) CreateVehicleType(c *gin.Context) {
	var dto domain.VehicleTypeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	vt, err := h.catalogService.CreateVehicleType(c.Request.Context(), dto)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vt)
}

func (h *CatalogHandler) ListVehicleTypes(c *gin.Context) {
	types, err := h.catalogService.GetAllVehicleTypes(c.Request.Context())
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *CatalogHandler) DeleteVehicleType(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	if err := h.catalogService.DeleteVehicleType(c.Request.Context(), id); err != nil {
		writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Tariffs ---

func (h *CatalogHandler) CreateTariff(c *gin.Context) {
	var dto domain.TariffDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	tariff, err := h.catalogService.CreateTariff(c.Request.Context(), dto)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tariff)
}

func (h *CatalogHandler) ListTariffsByLot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	tariffs, err := h.catalogService.GetTariffsByLot(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, tariffs)
}

func (h *CatalogHandler) UpdateTariff(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	var dto domain.TariffDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	tariff, err := h.catalogService.UpdateTariff(c.Request.Context(), id, dto)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, tariff)
}

func (h *CatalogHandler) DeleteTariff(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	if err := h.catalogService.DeleteTariff(c.Request.Context(), id); err != nil {
		writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, err
	}
	return id, nil
}

func writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}
