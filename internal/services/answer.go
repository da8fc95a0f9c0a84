package services

import (
	"time"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewAnswerService(db *gorm.DB, scoring *ScoringService) *AnswerService {
	return &AnswerService{db: db, scoring: scoring}
}

// Submit records an answer for (participant, question). The first recorded
// answer wins: a second submission hits the unique index and is dropped
// without an error, concurrent duplicates included.
func (s *AnswerService) Submit(participantID, questionID uint, selectedAnswer string, timeTaken int) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return ErrQuestionNotFound
	}

	isCorrect := s.scoring.CheckAnswer(question.QuestionType, question.CorrectAnswer, selectedAnswer)

	answer := models.Answer{
		ParticipantID:  participantID,
		QuestionID:     questionID,
		SelectedAnswer: selectedAnswer,
		IsCorrect:      isCorrect,
		TimeTaken:      timeTaken,
		Points:         s.scoring.Points(isCorrect, timeTaken),
		AnsweredAt:     time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_id"}, {Name: "question_id"}},
		DoNothing: true,
	}).Create(&answer).Error
}

type ScoreSummary struct {
	TotalAnswered int `json:"total_answered"`
	Correct       int `json:"correct"`
	Points        int `json:"points"`
}

func (s *AnswerService) MyScore(participantID uint) (*ScoreSummary, error) {
	var summary ScoreSummary
	err := s.db.Model(&models.Answer{}).
		Select("COUNT(id) AS total_answered, COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS correct, COALESCE(SUM(points), 0) AS points").
		Where("participant_id = ?", participantID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

type DayStatus struct {
	Answered bool `json:"answered"`
	Count    int  `json:"count"`
}

// CheckDay reports whether the participant already answered any of the
// given day's questions.
func (s *AnswerService) CheckDay(participantID uint, day int) (*DayStatus, error) {
	var count int64
	err := s.db.Model(&models.Answer{}).
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.participant_id = ? AND questions.day = ?", participantID, day).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	return &DayStatus{Answered: count > 0, Count: int(count)}, nil
}
