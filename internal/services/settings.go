package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const totalQuizDays = 30

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) Get(key string) string {
	var setting models.Setting
	if err := s.db.First(&setting, "key = ?", key).Error; err != nil {
		return ""
	}
	return setting.Value
}

func (s *SettingsService) Upsert(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}

// Update applies only the supplied fields; each is independently optional.
func (s *SettingsService) Update(openTime, closeTime string, currentDay *int) error {
	if openTime != "" {
		if err := s.Upsert(models.SettingQuizOpenTime, openTime); err != nil {
			return err
		}
	}
	if closeTime != "" {
		if err := s.Upsert(models.SettingQuizCloseTime, closeTime); err != nil {
			return err
		}
	}
	if currentDay != nil {
		if err := s.Upsert(models.SettingCurrentDay, strconv.Itoa(*currentDay)); err != nil {
			return err
		}
	}
	return nil
}

type QuizStatus struct {
	CurrentDay    int    `json:"current_day"`
	QuizOpenTime  string `json:"quiz_open_time"`
	QuizCloseTime string `json:"quiz_close_time"`
	IsOpen        bool   `json:"is_open"`
	ServerTime    string `json:"server_time"`
	TotalDays     int    `json:"total_days"`
}

// Status reports the current day and whether the wall clock is inside the
// configured open window.
func (s *SettingsService) Status() *QuizStatus {
	currentDay, err := strconv.Atoi(s.Get(models.SettingCurrentDay))
	if err != nil || currentDay < 1 {
		currentDay = 1
	}
	openTime := s.Get(models.SettingQuizOpenTime)
	if openTime == "" {
		openTime = "21:00"
	}
	closeTime := s.Get(models.SettingQuizCloseTime)
	if closeTime == "" {
		closeTime = "22:45"
	}

	now := time.Now()
	quizOpen := atClockTime(now, openTime)
	quizClose := atClockTime(now, closeTime)
	isOpen := !now.Before(quizOpen) && !now.After(quizClose)

	return &QuizStatus{
		CurrentDay:    currentDay,
		QuizOpenTime:  openTime,
		QuizCloseTime: closeTime,
		IsOpen:        isOpen,
		ServerTime:    now.Format(time.RFC3339),
		TotalDays:     totalQuizDays,
	}
}

// atClockTime pins an HH:MM string onto today's date.
func atClockTime(now time.Time, clock string) time.Time {
	var hour, minute int
	fmt.Sscanf(clock, "%d:%d", &hour, &minute)
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
}
