package services

import (
	"strings"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"
)

const (
	basePoints  = 100
	pointsFloor = 10
	decayPerSec = 3
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// CheckAnswer compares a submitted answer against the stored correct one.
// fill_blank answers tolerate case and surrounding whitespace; every other
// type is an exact match.
func (s *ScoringService) CheckAnswer(questionType, correctAnswer, submitted string) bool {
	if questionType == models.QuestionTypeFillBlank {
		return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correctAnswer))
	}
	return submitted == correctAnswer
}

// Points rewards a correct answer with 100 minus 3 per elapsed second,
// floored at 10. Incorrect answers earn nothing.
func (s *ScoringService) Points(isCorrect bool, timeTaken int) int {
	if !isCorrect {
		return 0
	}
	points := basePoints - decayPerSec*timeTaken
	if points < pointsFloor {
		points = pointsFloor
	}
	return points
}
