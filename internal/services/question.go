package services

import (
	"errors"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"

	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound    = errors.New("question not found")
	ErrUnknownQuestionType = errors.New("unknown question type")
	ErrTooFewOptions       = errors.New("at least two options required")
	ErrTooManyOptions      = errors.New("at most six options allowed")
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// ForDay returns the day's questions in order, with correct answers blanked
// so the payload is safe for participants.
func (s *QuestionService) ForDay(day int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("day = ?", day).Order("order_num ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].CorrectAnswer = ""
	}
	return questions, nil
}

// AdminForDay returns the full rows, correct answers included.
func (s *QuestionService) AdminForDay(day int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("day = ?", day).Order("order_num ASC").Find(&questions).Error
	return questions, err
}

func (s *QuestionService) Create(q *models.Question) error {
	if err := normalizeOptions(q); err != nil {
		return err
	}
	return s.db.Create(q).Error
}

func (s *QuestionService) Update(questionID uint, q *models.Question) error {
	if err := normalizeOptions(q); err != nil {
		return err
	}

	var existing models.Question
	if err := s.db.First(&existing, questionID).Error; err != nil {
		return ErrQuestionNotFound
	}

	existing.Day = q.Day
	existing.QuestionType = q.QuestionType
	existing.QuestionText = q.QuestionText
	existing.Options = q.Options
	existing.CorrectAnswer = q.CorrectAnswer
	existing.Category = q.Category
	existing.OrderNum = q.OrderNum
	return s.db.Save(&existing).Error
}

func (s *QuestionService) Delete(questionID uint) error {
	result := s.db.Delete(&models.Question{}, questionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// normalizeOptions enforces the per-type option constraints: 2-6 options for
// multiple choice, a forced fixed pair for true/false, none for fill-in.
func normalizeOptions(q *models.Question) error {
	switch q.QuestionType {
	case models.QuestionTypeMultipleChoice:
		if len(q.Options) < 2 {
			return ErrTooFewOptions
		}
		if len(q.Options) > 6 {
			return ErrTooManyOptions
		}
	case models.QuestionTypeTrueFalse:
		q.Options = append([]string(nil), models.TrueFalseOptions...)
	case models.QuestionTypeFillBlank:
		q.Options = []string{}
	default:
		return ErrUnknownQuestionType
	}
	return nil
}
