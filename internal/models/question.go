package models

type Question struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Day           int      `gorm:"not null;index" json:"day"`
	QuestionType  string   `gorm:"size:20;not null;default:'multiple_choice'" json:"question_type"`
	QuestionText  string   `gorm:"type:text;not null" json:"question_text"`
	Options       []string `gorm:"serializer:json;type:text" json:"options"`
	CorrectAnswer string   `gorm:"size:500;not null" json:"correct_answer,omitempty"`
	Category      string   `gorm:"size:100;default:'general'" json:"category"`
	OrderNum      int      `gorm:"not null;default:1" json:"order_num"`
}

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeFillBlank      = "fill_blank"
)

// TrueFalseOptions is the fixed option pair every true_false question gets.
var TrueFalseOptions = []string{"صح", "خطأ"}
