package models

import "time"

type Answer struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ParticipantID  uint      `gorm:"not null;uniqueIndex:idx_answer_unique" json:"participant_id"`
	QuestionID     uint      `gorm:"not null;uniqueIndex:idx_answer_unique" json:"question_id"`
	SelectedAnswer string    `gorm:"size:500;not null" json:"selected_answer"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`
	TimeTaken      int       `gorm:"not null;default:30" json:"time_taken"`
	Points         int       `gorm:"not null;default:0" json:"points"`
	AnsweredAt     time.Time `gorm:"index" json:"answered_at"`
}
