package handlers

import (
	"errors"
	"net/http"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/middleware"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/services"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/ws"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	hub         *ws.Hub
}

func NewAuthHandler(authService *services.AuthService, hub *ws.Hub) *AuthHandler {
	return &AuthHandler{authService: authService, hub: hub}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100" example:"أحمد"`
	Phone    string `json:"phone" example:"0501234567"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

type LoginRequest struct {
	Phone    string `json:"phone" example:"0501234567"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	ParticipantID uint   `json:"participant_id" example:"1"`
	Name          string `json:"name" example:"أحمد"`
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
}

// Register godoc
// @Summary      Register a new participant
// @Description  Create a participant account and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, session, err := h.authService.Register(req.Name, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhoneRequired):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "رقم الجوال مطلوب للتسجيل"})
		case errors.Is(err, services.ErrPhoneTaken):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "رقم الجوال مسجّل مسبقاً، استخدم تسجيل الدخول"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	h.setSessionCookie(c, session.Token, int(h.authService.SessionTTL().Seconds()))
	h.hub.Broadcast(ws.Event{Type: "participant_registered", Data: gin.H{
		"participant_id": participant.ID,
	}})

	c.JSON(http.StatusOK, AuthResponse{ParticipantID: participant.ID, Name: participant.Name})
}

// Login godoc
// @Summary      Login as participant
// @Description  Authenticate by phone and password; issues a fresh session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, session, err := h.authService.Login(req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhoneRequired):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "رقم الجوال مطلوب"})
		case errors.Is(err, services.ErrParticipantNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "رقم الجوال غير مسجّل، سجّل أولاً"})
		case errors.Is(err, services.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "كلمة المرور غير صحيحة"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	h.setSessionCookie(c, session.Token, int(h.authService.SessionTTL().Seconds()))
	c.JSON(http.StatusOK, AuthResponse{ParticipantID: participant.ID, Name: participant.Name})
}

// Logout godoc
// @Summary      Logout
// @Description  Delete the current session; safe to repeat
// @Tags         auth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)
	if err := h.authService.Logout(token); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// Me godoc
// @Summary      Current participant
// @Description  Return the identity bound to the session cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, AuthResponse{
		ParticipantID: c.GetUint("participant_id"),
		Name:          c.GetString("participant_name"),
	})
}
