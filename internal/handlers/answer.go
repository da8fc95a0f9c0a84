package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/services"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/ws"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService *services.AnswerService
	hub           *ws.Hub
}

func NewAnswerHandler(answerService *services.AnswerService, hub *ws.Hub) *AnswerHandler {
	return &AnswerHandler{answerService: answerService, hub: hub}
}

type SubmitAnswerRequest struct {
	QuestionID     uint   `json:"question_id" binding:"required" example:"1"`
	SelectedAnswer string `json:"selected_answer" binding:"required" example:"30"`
	TimeTaken      int    `json:"time_taken" example:"12"`
}

// Submit godoc
// @Summary      Submit an answer
// @Description  Record a timed answer; resubmitting the same question is a silent no-op
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        request body SubmitAnswerRequest true "Answer data"
// @Success      200 {object} StatusResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/answer [post]
func (h *AnswerHandler) Submit(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.TimeTaken <= 0 {
		req.TimeTaken = 30
	}

	participantID := c.GetUint("participant_id")
	if err := h.answerService.Submit(participantID, req.QuestionID, req.SelectedAnswer, req.TimeTaken); err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "السؤال غير موجود"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.Event{Type: "answer_received", Data: gin.H{
		"participant_id": participantID,
		"question_id":    req.QuestionID,
	}})

	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// MyScore godoc
// @Summary      My score
// @Description  Totals for the authenticated participant
// @Tags         answers
// @Produce      json
// @Success      200 {object} services.ScoreSummary
// @Failure      401 {object} ErrorResponse
// @Router       /api/my-score [get]
func (h *AnswerHandler) MyScore(c *gin.Context) {
	summary, err := h.answerService.MyScore(c.GetUint("participant_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CheckDay godoc
// @Summary      Check a day
// @Description  Whether the participant already answered the day's questions
// @Tags         answers
// @Produce      json
// @Param        day path int true "Day number"
// @Success      200 {object} services.DayStatus
// @Failure      401 {object} ErrorResponse
// @Router       /api/check-day/{day} [get]
func (h *AnswerHandler) CheckDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid day"})
		return
	}

	status, err := h.answerService.CheckDay(c.GetUint("participant_id"), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
