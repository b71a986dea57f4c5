package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
	"github.com/Abdelrhman012/parking-reservations-system/internal/middleware"
	"github.com/Abdelrhman012/parking-reservations-system/internal/service"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/response"
)

// AdminHandler handles configuration management HTTP requests. All routes
// sit behind the admin role middleware.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ParkingStateReport handles GET /admin/reports/parking-state
func (h *AdminHandler) ParkingStateReport(c *gin.Context) {
	report, err := h.adminService.ParkingStateReport(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, report)
}

// ListCategories handles GET /admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.adminService.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory handles POST /admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	category, err := h.adminService.CreateCategory(c.Request.Context(), middleware.GetUser(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, category)
}

// UpdateCategory handles PUT /admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	category, err := h.adminService.UpdateCategory(c.Request.Context(), middleware.GetUser(c), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory handles DELETE /admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.adminService.DeleteCategory(c.Request.Context(), middleware.GetUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, dto.OKResponse{OK: true})
}

// ListZones handles GET /admin/zones
func (h *AdminHandler) ListZones(c *gin.Context) {
	zones, err := h.adminService.ListZones(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, zones)
}

// CreateZone handles POST /admin/zones
func (h *AdminHandler) CreateZone(c *gin.Context) {
	var req dto.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	zone, err := h.adminService.CreateZone(c.Request.Context(), middleware.GetUser(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, zone)
}

// UpdateZone handles PUT /admin/zones/:id
func (h *AdminHandler) UpdateZone(c *gin.Context) {
	var req dto.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	zone, err := h.adminService.UpdateZone(c.Request.Context(), middleware.GetUser(c), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, zone)
}

// SetZoneOpen handles PUT /admin/zones/:id/open
func (h *AdminHandler) SetZoneOpen(c *gin.Context) {
	var req dto.SetZoneOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	resp, err := h.adminService.SetZoneOpen(c.Request.Context(), middleware.GetUser(c), c.Param("id"), req.Open)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// DeleteZone handles DELETE /admin/zones/:id
func (h *AdminHandler) DeleteZone(c *gin.Context) {
	if err := h.adminService.DeleteZone(c.Request.Context(), middleware.GetUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, dto.OKResponse{OK: true})
}

// ListGates handles GET /admin/gates
func (h *AdminHandler) ListGates(c *gin.Context) {
	gates, err := h.adminService.ListGates(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gates)
}

// CreateGate handles POST /admin/gates
func (h *AdminHandler) CreateGate(c *gin.Context) {
	var req dto.CreateGateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	gate, err := h.adminService.CreateGate(c.Request.Context(), middleware.GetUser(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, gate)
}

// UpdateGate handles PUT /admin/gates/:id
func (h *AdminHandler) UpdateGate(c *gin.Context) {
	var req dto.UpdateGateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	gate, err := h.adminService.UpdateGate(c.Request.Context(), middleware.GetUser(c), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gate)
}

// DeleteGate handles DELETE /admin/gates/:id
func (h *AdminHandler) DeleteGate(c *gin.Context) {
	if err := h.adminService.DeleteGate(c.Request.Context(), middleware.GetUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, dto.OKResponse{OK: true})
}

// ListRushHours handles GET /admin/rush-hours
func (h *AdminHandler) ListRushHours(c *gin.Context) {
	rushHours, err := h.adminService.ListRushHours(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, rushHours)
}

// CreateRushHour handles POST /admin/rush-hours
func (h *AdminHandler) CreateRushHour(c *gin.Context) {
	var req dto.CreateRushHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	rush, err := h.adminService.CreateRushHour(c.Request.Context(), middleware.GetUser(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, rush)
}

// UpdateRushHour handles PUT /admin/rush-hours/:id
func (h *AdminHandler) UpdateRushHour(c *gin.Context) {
	var req dto.UpdateRushHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	rush, err := h.adminService.UpdateRushHour(c.Request.Context(), middleware.GetUser(c), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, rush)
}

// DeleteRushHour handles DELETE /admin/rush-hours/:id
func (h *AdminHandler) DeleteRushHour(c *gin.Context) {
	if err := h.adminService.DeleteRushHour(c.Request.Context(), middleware.GetUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, dto.OKResponse{OK: true})
}

// ListVacations handles GET /admin/vacations
func (h *AdminHandler) ListVacations(c *gin.Context) {
	vacations, err := h.adminService.ListVacations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, vacations)
}

// CreateVacation handles POST /admin/vacations
func (h *AdminHandler) CreateVacation(c *gin.Context) {
	var req dto.CreateVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	vacation, err := h.adminService.CreateVacation(c.Request.Context(), middleware.GetUser(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, vacation)
}

// UpdateVacation handles PUT /admin/vacations/:id
func (h *AdminHandler) UpdateVacation(c *gin.Context) {
	var req dto.UpdateVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	vacation, err := h.adminService.UpdateVacation(c.Request.Context(), middleware.GetUser(c), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, vacation)
}

// DeleteVacation handles DELETE /admin/vacations/:id
func (h *AdminHandler) DeleteVacation(c *gin.Context) {
	if err := h.adminService.DeleteVacation(c.Request.Context(), middleware.GetUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, dto.OKResponse{OK: true})
}

// ListSubscriptions handles GET /admin/subscriptions
func (h *AdminHandler) ListSubscriptions(c *gin.Context) {
	subscriptions, err := h.adminService.ListSubscriptions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, subscriptions)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, users)
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	user, err := h.adminService.CreateUser(c.Request.Context(), middleware.GetUser(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, user)
}

// ListTickets handles GET /admin/tickets?status=checkedin|checkedout
func (h *AdminHandler) ListTickets(c *gin.Context) {
	tickets, err := h.adminService.ListTickets(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, tickets)
}
