package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdelrhman012/parking-reservations-system/internal/service"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/response"
)

// MasterHandler handles the public read-only reference endpoints consumed by
// gate screens
type MasterHandler struct {
	masterService service.MasterService
}

// NewMasterHandler creates a new MasterHandler
func NewMasterHandler(masterService service.MasterService) *MasterHandler {
	return &MasterHandler{masterService: masterService}
}

// ListGates handles GET /master/gates
func (h *MasterHandler) ListGates(c *gin.Context) {
	gates, err := h.masterService.ListGates(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gates)
}

// ListZones handles GET /master/zones?gateId=...
func (h *MasterHandler) ListZones(c *gin.Context) {
	zones, err := h.masterService.ListZones(c.Request.Context(), c.Query("gateId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, zones)
}

// ListCategories handles GET /master/categories
func (h *MasterHandler) ListCategories(c *gin.Context) {
	categories, err := h.masterService.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, categories)
}
