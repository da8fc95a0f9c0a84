package handlers

import (
	"net/http"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/services"

	"github.com/gin-gonic/gin"
)

type PushHandler struct {
	pushService *services.PushService
}

func NewPushHandler(pushService *services.PushService) *PushHandler {
	return &PushHandler{pushService: pushService}
}

// SubscribeRequest mirrors the browser PushSubscription JSON shape.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required" example:"https://fcm.googleapis.com/fcm/send/..."`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

type NotifyRequest struct {
	Title string `json:"title" binding:"required" example:"سؤال اليوم متاح الآن"`
	Body  string `json:"body" example:"شارك الآن واكسب النقاط"`
}

type NotifyResponse struct {
	Sent    int `json:"sent" example:"42"`
	Removed int `json:"removed" example:"3"`
}

type VAPIDKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// VAPIDKey godoc
// @Summary      VAPID public key
// @Description  Key the browser needs to create a push subscription
// @Tags         push
// @Produce      json
// @Success      200 {object} VAPIDKeyResponse
// @Router       /api/push/vapid-key [get]
func (h *PushHandler) VAPIDKey(c *gin.Context) {
	c.JSON(http.StatusOK, VAPIDKeyResponse{PublicKey: h.pushService.PublicKey()})
}

// Subscribe godoc
// @Summary      Store a push subscription
// @Description  Duplicate endpoints are collapsed
// @Tags         push
// @Accept       json
// @Produce      json
// @Param        request body SubscribeRequest true "Subscription data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/push/subscribe [post]
func (h *PushHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participantID := c.GetUint("participant_id")
	if err := h.pushService.Subscribe(participantID, req.Endpoint, req.Keys.P256dh, req.Keys.Auth); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "subscribed"})
}

// Notify godoc
// @Summary      Send a push to everyone (admin)
// @Description  Best-effort delivery; failed or gone subscriptions are pruned
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Param        request body NotifyRequest true "Notification data"
// @Success      200 {object} NotifyResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin/notify [post]
func (h *PushHandler) Notify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sent, removed, err := h.pushService.SendToAll(req.Title, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, NotifyResponse{Sent: sent, Removed: removed})
}
