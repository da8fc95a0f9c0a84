package handlers

import (
	"net/http"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	statsService *services.StatsService
}

func NewLeaderboardHandler(statsService *services.StatsService) *LeaderboardHandler {
	return &LeaderboardHandler{statsService: statsService}
}

// Public godoc
// @Summary      Public leaderboard
// @Description  Anonymous top 10 by points, ties broken by answer count
// @Tags         leaderboard
// @Produce      json
// @Success      200 {array} services.LeaderboardEntry
// @Router       /api/leaderboard [get]
func (h *LeaderboardHandler) Public(c *gin.Context) {
	entries, err := h.statsService.PublicLeaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Admin godoc
// @Summary      Full leaderboard (admin)
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Success      200 {array} services.AdminLeaderboardEntry
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin/leaderboard [get]
func (h *LeaderboardHandler) Admin(c *gin.Context) {
	entries, err := h.statsService.AdminLeaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Stats godoc
// @Summary      Quiz statistics (admin)
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Success      200 {object} services.Stats
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin/stats [get]
func (h *LeaderboardHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Participants godoc
// @Summary      Registered participants (admin)
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Success      200 {array} models.Participant
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin/participants [get]
func (h *LeaderboardHandler) Participants(c *gin.Context) {
	participants, err := h.statsService.Participants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, participants)
}

// Export godoc
// @Summary      Export all answers (admin)
// @Description  Flat join of answers, participants and questions
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Success      200 {array} services.ExportRow
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin/export [get]
func (h *LeaderboardHandler) Export(c *gin.Context) {
	rows, err := h.statsService.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
