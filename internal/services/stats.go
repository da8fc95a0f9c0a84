package services

import (
	"math"
	"time"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type LeaderboardEntry struct {
	Rank          int `json:"rank"`
	Points        int `json:"points"`
	TotalAnswered int `json:"total_answered"`
}

// PublicLeaderboard ranks participants with at least one answer by summed
// points, ties broken by answer count. Entries are anonymous and the rank is
// the position in the sorted result, not a tie-aware rank.
func (s *StatsService) PublicLeaderboard() ([]LeaderboardEntry, error) {
	var rows []LeaderboardEntry
	err := s.db.Model(&models.Answer{}).
		Select("COALESCE(SUM(points), 0) AS points, COUNT(id) AS total_answered").
		Group("participant_id").
		Order("points DESC, total_answered DESC").
		Limit(10).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		r.Rank = i + 1
		entries = append(entries, r)
	}
	return entries, nil
}

type AdminLeaderboardEntry struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
	TotalAnswered int       `json:"total_answered"`
	Points        int       `json:"points"`
	DaysWon       int       `json:"days_won"`
}

func (s *StatsService) AdminLeaderboard() ([]AdminLeaderboardEntry, error) {
	var rows []AdminLeaderboardEntry
	err := s.db.Model(&models.Participant{}).
		Select(`participants.id, participants.name, participants.phone, participants.created_at,
			COUNT(answers.id) AS total_answered,
			COALESCE(SUM(answers.points), 0) AS points,
			COUNT(DISTINCT CASE WHEN answers.is_correct THEN DATE(answers.answered_at) END) AS days_won`).
		Joins("LEFT JOIN answers ON answers.participant_id = participants.id").
		Group("participants.id, participants.name, participants.phone, participants.created_at").
		Order("points DESC, total_answered DESC").
		Scan(&rows).Error
	return rows, err
}

type Stats struct {
	TotalParticipants int64   `json:"total_participants"`
	TotalAnswers      int64   `json:"total_answers"`
	CorrectAnswers    int64   `json:"correct_answers"`
	TodayParticipants int64   `json:"today_participants"`
	AccuracyRate      float64 `json:"accuracy_rate"`
}

func (s *StatsService) Stats() (*Stats, error) {
	var stats Stats

	if err := s.db.Model(&models.Participant{}).Count(&stats.TotalParticipants).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Answer{}).Count(&stats.TotalAnswers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Answer{}).Where("is_correct = ?", true).Count(&stats.CorrectAnswers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Answer{}).
		Where("DATE(answered_at) = CURRENT_DATE").
		Distinct("participant_id").
		Count(&stats.TodayParticipants).Error; err != nil {
		return nil, err
	}

	if stats.TotalAnswers > 0 {
		rate := float64(stats.CorrectAnswers) / float64(stats.TotalAnswers) * 100
		stats.AccuracyRate = math.Round(rate*10) / 10
	}
	return &stats, nil
}

func (s *StatsService) Participants() ([]models.Participant, error) {
	var participants []models.Participant
	err := s.db.Order("created_at DESC").Find(&participants).Error
	return participants, err
}

type ExportRow struct {
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
	Day            int       `json:"day"`
	QuestionText   string    `json:"question_text"`
	QuestionType   string    `json:"question_type"`
	Category       string    `json:"category"`
	SelectedAnswer string    `json:"selected_answer"`
	CorrectAnswer  string    `json:"correct_answer"`
	IsCorrect      bool      `json:"is_correct"`
	TimeTaken      int       `json:"time_taken"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// Export flattens every answer with its participant and question for
// offline analysis.
func (s *StatsService) Export() ([]ExportRow, error) {
	var rows []ExportRow
	err := s.db.Model(&models.Answer{}).
		Select(`participants.name, participants.phone, participants.created_at,
			questions.day, questions.question_text, questions.question_type, questions.category,
			answers.selected_answer, questions.correct_answer, answers.is_correct,
			answers.time_taken, answers.answered_at`).
		Joins("JOIN participants ON participants.id = answers.participant_id").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Order("participants.name, questions.day, questions.order_num").
		Scan(&rows).Error
	return rows, err
}
