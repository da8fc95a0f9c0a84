package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"
)

func TestCreateQuestionValidation(t *testing.T) {
	db := setupTestDB(t)
	questions := NewQuestionService(db)

	testCases := []struct {
		name    string
		q       models.Question
		wantErr error
	}{
		{
			"multiple choice needs two options",
			models.Question{Day: 1, QuestionType: models.QuestionTypeMultipleChoice,
				QuestionText: "q", Options: []string{"a"}, CorrectAnswer: "a"},
			ErrTooFewOptions,
		},
		{
			"multiple choice capped at six",
			models.Question{Day: 1, QuestionType: models.QuestionTypeMultipleChoice,
				QuestionText: "q", Options: []string{"a", "b", "c", "d", "e", "f", "g"}, CorrectAnswer: "a"},
			ErrTooManyOptions,
		},
		{
			"unknown type rejected",
			models.Question{Day: 1, QuestionType: "essay", QuestionText: "q", CorrectAnswer: "a"},
			ErrUnknownQuestionType,
		},
		{
			"valid multiple choice",
			models.Question{Day: 1, QuestionType: models.QuestionTypeMultipleChoice,
				QuestionText: "q", Options: []string{"a", "b"}, CorrectAnswer: "a"},
			nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := questions.Create(&tc.q)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreateTrueFalseForcesOptionPair(t *testing.T) {
	db := setupTestDB(t)
	questions := NewQuestionService(db)

	q := models.Question{
		Day: 1, QuestionType: models.QuestionTypeTrueFalse,
		QuestionText: "q", Options: []string{"whatever", "the", "client", "sent"},
		CorrectAnswer: "صح",
	}
	if err := questions.Create(&q); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var stored models.Question
	db.First(&stored, q.ID)
	if !reflect.DeepEqual(stored.Options, models.TrueFalseOptions) {
		t.Errorf("options = %v, want %v", stored.Options, models.TrueFalseOptions)
	}
}

func TestCreateFillBlankForcesEmptyOptions(t *testing.T) {
	db := setupTestDB(t)
	questions := NewQuestionService(db)

	q := models.Question{
		Day: 1, QuestionType: models.QuestionTypeFillBlank,
		QuestionText: "q", Options: []string{"leftover"},
		CorrectAnswer: "مكة",
	}
	if err := questions.Create(&q); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var stored models.Question
	db.First(&stored, q.ID)
	if len(stored.Options) != 0 {
		t.Errorf("options = %v, want empty", stored.Options)
	}
}

func TestForDayHidesCorrectAnswers(t *testing.T) {
	db := setupTestDB(t)
	questions := NewQuestionService(db)

	for i, text := range []string{"second", "first"} {
		q := models.Question{
			Day: 3, QuestionType: models.QuestionTypeMultipleChoice,
			QuestionText: text, Options: []string{"a", "b"},
			CorrectAnswer: "a", OrderNum: 2 - i,
		}
		if err := questions.Create(&q); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	public, err := questions.ForDay(3)
	if err != nil {
		t.Fatalf("ForDay failed: %v", err)
	}
	if len(public) != 2 {
		t.Fatalf("got %d questions, want 2", len(public))
	}
	if public[0].QuestionText != "first" || public[1].QuestionText != "second" {
		t.Errorf("wrong order: %q then %q", public[0].QuestionText, public[1].QuestionText)
	}
	for _, q := range public {
		if q.CorrectAnswer != "" {
			t.Errorf("public question %d leaks correct answer %q", q.ID, q.CorrectAnswer)
		}
	}

	admin, err := questions.AdminForDay(3)
	if err != nil {
		t.Fatalf("AdminForDay failed: %v", err)
	}
	for _, q := range admin {
		if q.CorrectAnswer == "" {
			t.Errorf("admin view missing correct answer for question %d", q.ID)
		}
	}
}

func TestUpdateAndDeleteQuestion(t *testing.T) {
	db := setupTestDB(t)
	questions := NewQuestionService(db)

	q := models.Question{
		Day: 1, QuestionType: models.QuestionTypeMultipleChoice,
		QuestionText: "before", Options: []string{"a", "b"}, CorrectAnswer: "a", OrderNum: 1,
	}
	if err := questions.Create(&q); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	update := models.Question{
		Day: 2, QuestionType: models.QuestionTypeMultipleChoice,
		QuestionText: "after", Options: []string{"x", "y", "z"}, CorrectAnswer: "z", OrderNum: 4,
	}
	if err := questions.Update(q.ID, &update); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var stored models.Question
	db.First(&stored, q.ID)
	if stored.QuestionText != "after" || stored.Day != 2 || stored.CorrectAnswer != "z" {
		t.Errorf("update not applied: %+v", stored)
	}

	if err := questions.Update(9999, &update); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("update unknown id: got %v, want ErrQuestionNotFound", err)
	}

	if err := questions.Delete(q.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := questions.Delete(q.ID); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("second delete: got %v, want ErrQuestionNotFound", err)
	}
}
