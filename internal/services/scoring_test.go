package services

import (
	"testing"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"
)

func TestPoints(t *testing.T) {
	scoring := NewScoringService()

	testCases := []struct {
		name      string
		isCorrect bool
		timeTaken int
		expected  int
	}{
		{"instant correct answer", true, 0, 100},
		{"fast correct answer", true, 10, 70},
		{"correct at decay boundary", true, 30, 10},
		{"slow correct answer hits floor", true, 100, 10},
		{"incorrect scores nothing", false, 0, 0},
		{"incorrect slow scores nothing", false, 100, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoring.Points(tc.isCorrect, tc.timeTaken)
			if got != tc.expected {
				t.Errorf("Points(%v, %d) = %d, want %d", tc.isCorrect, tc.timeTaken, got, tc.expected)
			}
		})
	}
}

func TestCheckAnswer(t *testing.T) {
	scoring := NewScoringService()

	testCases := []struct {
		name         string
		questionType string
		correct      string
		submitted    string
		expected     bool
	}{
		{"fill_blank exact", models.QuestionTypeFillBlank, "Makkah", "Makkah", true},
		{"fill_blank case insensitive", models.QuestionTypeFillBlank, "Makkah", "makkah", true},
		{"fill_blank surrounding whitespace", models.QuestionTypeFillBlank, "Makkah", "  Makkah  ", true},
		{"fill_blank stored answer padded", models.QuestionTypeFillBlank, " Makkah ", "makkah", true},
		{"fill_blank wrong", models.QuestionTypeFillBlank, "Makkah", "Madinah", false},
		{"multiple_choice exact", models.QuestionTypeMultipleChoice, "30", "30", true},
		{"multiple_choice case matters", models.QuestionTypeMultipleChoice, "Yes", "yes", false},
		{"true_false exact", models.QuestionTypeTrueFalse, "صح", "صح", true},
		{"true_false wrong", models.QuestionTypeTrueFalse, "صح", "خطأ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoring.CheckAnswer(tc.questionType, tc.correct, tc.submitted)
			if got != tc.expected {
				t.Errorf("CheckAnswer(%q, %q, %q) = %v, want %v",
					tc.questionType, tc.correct, tc.submitted, got, tc.expected)
			}
		})
	}
}
