package handlers

import (
	"net/http"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

type UpdateSettingsRequest struct {
	QuizOpenTime  string `json:"quiz_open_time" example:"21:00"`
	QuizCloseTime string `json:"quiz_close_time" example:"22:45"`
	CurrentDay    *int   `json:"current_day" example:"5"`
}

// Status godoc
// @Summary      Quiz status
// @Description  Current day, open window and whether the quiz is open now
// @Tags         status
// @Produce      json
// @Success      200 {object} services.QuizStatus
// @Router       /api/status [get]
func (h *SettingsHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.settingsService.Status())
}

// Update godoc
// @Summary      Update quiz settings (admin)
// @Description  Each field is optional; only supplied fields are upserted
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Param        request body UpdateSettingsRequest true "Settings data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.settingsService.Update(req.QuizOpenTime, req.QuizCloseTime, req.CurrentDay); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "تم تحديث الإعدادات"})
}
