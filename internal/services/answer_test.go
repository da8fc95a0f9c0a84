package services

import (
	"errors"
	"testing"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"

	"gorm.io/gorm"
)

func seedQuestion(t *testing.T, db *gorm.DB, q models.Question) models.Question {
	t.Helper()
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	return q
}

func seedParticipant(t *testing.T, db *gorm.DB, phone string) models.Participant {
	t.Helper()
	p := models.Participant{Name: "Test", Phone: phone, PasswordHash: "x"}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed participant: %v", err)
	}
	return p
}

func TestSubmitScoresAndStores(t *testing.T) {
	db := setupTestDB(t)
	answers := NewAnswerService(db, NewScoringService())

	p := seedParticipant(t, db, "0501000001")
	q := seedQuestion(t, db, models.Question{
		Day: 1, QuestionType: models.QuestionTypeMultipleChoice,
		QuestionText: "كم عدد أيام شهر رمضان؟", Options: []string{"29", "30"},
		CorrectAnswer: "30", OrderNum: 1,
	})

	if err := answers.Submit(p.ID, q.ID, "30", 10); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	var stored models.Answer
	if err := db.Where("participant_id = ? AND question_id = ?", p.ID, q.ID).First(&stored).Error; err != nil {
		t.Fatalf("answer not stored: %v", err)
	}
	if !stored.IsCorrect {
		t.Error("answer should be correct")
	}
	if stored.Points != 70 {
		t.Errorf("points = %d, want 70", stored.Points)
	}
}

func TestSubmitFillBlankNormalization(t *testing.T) {
	db := setupTestDB(t)
	answers := NewAnswerService(db, NewScoringService())

	p := seedParticipant(t, db, "0501000002")
	q := seedQuestion(t, db, models.Question{
		Day: 1, QuestionType: models.QuestionTypeFillBlank,
		QuestionText: "في أي مدينة يقع المسجد الحرام؟",
		Options:      []string{}, CorrectAnswer: "مكة", OrderNum: 1,
	})

	if err := answers.Submit(p.ID, q.ID, "  مكة  ", 5); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	var stored models.Answer
	db.Where("participant_id = ?", p.ID).First(&stored)
	if !stored.IsCorrect {
		t.Error("whitespace-padded fill_blank answer should be correct")
	}
}

func TestSubmitDuplicateIsSilentNoOp(t *testing.T) {
	db := setupTestDB(t)
	answers := NewAnswerService(db, NewScoringService())

	p := seedParticipant(t, db, "0501000003")
	q := seedQuestion(t, db, models.Question{
		Day: 1, QuestionType: models.QuestionTypeMultipleChoice,
		QuestionText: "q", Options: []string{"a", "b"},
		CorrectAnswer: "a", OrderNum: 1,
	})

	if err := answers.Submit(p.ID, q.ID, "a", 5); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if err := answers.Submit(p.ID, q.ID, "b", 1); err != nil {
		t.Fatalf("duplicate submit should not error: %v", err)
	}

	var stored []models.Answer
	db.Where("participant_id = ? AND question_id = ?", p.ID, q.ID).Find(&stored)
	if len(stored) != 1 {
		t.Fatalf("stored %d answers, want 1", len(stored))
	}
	// First answer wins.
	if stored[0].SelectedAnswer != "a" || !stored[0].IsCorrect {
		t.Errorf("first answer was overwritten: %+v", stored[0])
	}
}

func TestSubmitUnknownQuestion(t *testing.T) {
	db := setupTestDB(t)
	answers := NewAnswerService(db, NewScoringService())

	p := seedParticipant(t, db, "0501000004")
	if err := answers.Submit(p.ID, 9999, "a", 5); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("got %v, want ErrQuestionNotFound", err)
	}
}

func TestMyScoreAndCheckDay(t *testing.T) {
	db := setupTestDB(t)
	answers := NewAnswerService(db, NewScoringService())

	p := seedParticipant(t, db, "0501000005")
	q1 := seedQuestion(t, db, models.Question{
		Day: 1, QuestionType: models.QuestionTypeMultipleChoice,
		QuestionText: "q1", Options: []string{"a", "b"}, CorrectAnswer: "a", OrderNum: 1,
	})
	q2 := seedQuestion(t, db, models.Question{
		Day: 1, QuestionType: models.QuestionTypeMultipleChoice,
		QuestionText: "q2", Options: []string{"a", "b"}, CorrectAnswer: "a", OrderNum: 2,
	})

	if err := answers.Submit(p.ID, q1.ID, "a", 0); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if err := answers.Submit(p.ID, q2.ID, "b", 0); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	summary, err := answers.MyScore(p.ID)
	if err != nil {
		t.Fatalf("MyScore failed: %v", err)
	}
	if summary.TotalAnswered != 2 || summary.Correct != 1 || summary.Points != 100 {
		t.Errorf("summary = %+v, want 2 answered / 1 correct / 100 points", summary)
	}

	day1, err := answers.CheckDay(p.ID, 1)
	if err != nil {
		t.Fatalf("CheckDay failed: %v", err)
	}
	if !day1.Answered || day1.Count != 2 {
		t.Errorf("day 1 = %+v, want answered with count 2", day1)
	}

	day2, err := answers.CheckDay(p.ID, 2)
	if err != nil {
		t.Fatalf("CheckDay failed: %v", err)
	}
	if day2.Answered || day2.Count != 0 {
		t.Errorf("day 2 = %+v, want untouched", day2)
	}
}
