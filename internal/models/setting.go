package models

type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"size:255" json:"value"`
}

const (
	SettingQuizOpenTime  = "quiz_open_time"
	SettingQuizCloseTime = "quiz_close_time"
	SettingCurrentDay    = "current_day"
)
