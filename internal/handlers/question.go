package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type QuestionRequest struct {
	Day           int      `json:"day" binding:"required,min=1" example:"1"`
	QuestionType  string   `json:"question_type" example:"multiple_choice"`
	QuestionText  string   `json:"question_text" binding:"required" example:"كم عدد أيام شهر رمضان؟"`
	Options       []string `json:"options" example:"29,30"`
	CorrectAnswer string   `json:"correct_answer" binding:"required" example:"30"`
	Category      string   `json:"category" example:"general"`
	OrderNum      int      `json:"order_num" example:"1"`
}

func (r *QuestionRequest) toModel() *models.Question {
	questionType := r.QuestionType
	if questionType == "" {
		questionType = models.QuestionTypeMultipleChoice
	}
	category := r.Category
	if category == "" {
		category = "general"
	}
	orderNum := r.OrderNum
	if orderNum == 0 {
		orderNum = 1
	}
	return &models.Question{
		Day:           r.Day,
		QuestionType:  questionType,
		QuestionText:  r.QuestionText,
		Options:       r.Options,
		CorrectAnswer: r.CorrectAnswer,
		Category:      category,
		OrderNum:      orderNum,
	}
}

func questionErrorStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTooFewOptions):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "يجب إضافة خيارين على الأقل"})
	case errors.Is(err, services.ErrTooManyOptions):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "الحد الأقصى 6 خيارات"})
	case errors.Is(err, services.ErrUnknownQuestionType):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "نوع سؤال غير معروف"})
	case errors.Is(err, services.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "السؤال غير موجود"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// ListForDay godoc
// @Summary      Questions for a day
// @Description  Day's questions in order, without correct answers
// @Tags         questions
// @Produce      json
// @Param        day path int true "Day number"
// @Success      200 {array} models.Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/questions/{day} [get]
func (h *QuestionHandler) ListForDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid day"})
		return
	}

	questions, err := h.questionService.ForDay(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// AdminListForDay godoc
// @Summary      Questions for a day (admin)
// @Description  Full question rows including correct answers
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Param        day path int true "Day number"
// @Success      200 {array} models.Question
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin/questions/{day} [get]
func (h *QuestionHandler) AdminListForDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid day"})
		return
	}

	questions, err := h.questionService.AdminForDay(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

type QuestionCreatedResponse struct {
	ID      uint   `json:"id" example:"1"`
	Message string `json:"message" example:"تم إضافة السؤال"`
}

// Create godoc
// @Summary      Add a question
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} QuestionCreatedResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin/questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question := req.toModel()
	if err := h.questionService.Create(question); err != nil {
		questionErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, QuestionCreatedResponse{ID: question.ID, Message: "تم إضافة السؤال"})
}

// Update godoc
// @Summary      Update a question
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Param        id path int true "Question ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/questions/{id} [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.questionService.Update(uint(questionID), req.toModel()); err != nil {
		questionErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "تم تعديل السؤال"})
}

// Delete godoc
// @Summary      Delete a question
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Token header string true "Admin token"
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/questions/{id} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	if err := h.questionService.Delete(uint(questionID)); err != nil {
		questionErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "تم الحذف"})
}
