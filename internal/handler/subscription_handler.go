package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdelrhman012/parking-reservations-system/internal/service"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/response"
)

// SubscriptionHandler handles subscription lookup requests
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Get handles GET /subscriptions/:id; gate screens use it to verify a
// subscription before a subscriber check-in
func (h *SubscriptionHandler) Get(c *gin.Context) {
	sub, err := h.subscriptionService.GetSubscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, sub)
}
