package services

import (
	"testing"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"
)

func TestUpdateOnlyTouchesSuppliedFields(t *testing.T) {
	db := setupTestDB(t)
	settings := NewSettingsService(db)

	if err := settings.Upsert(models.SettingQuizOpenTime, "21:00"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := settings.Upsert(models.SettingQuizCloseTime, "22:45"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	day := 7
	if err := settings.Update("", "", &day); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if got := settings.Get(models.SettingQuizOpenTime); got != "21:00" {
		t.Errorf("quiz_open_time = %q, want untouched 21:00", got)
	}
	if got := settings.Get(models.SettingCurrentDay); got != "7" {
		t.Errorf("current_day = %q, want 7", got)
	}

	if err := settings.Update("20:30", "", nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := settings.Get(models.SettingQuizOpenTime); got != "20:30" {
		t.Errorf("quiz_open_time = %q, want 20:30", got)
	}
	if got := settings.Get(models.SettingQuizCloseTime); got != "22:45" {
		t.Errorf("quiz_close_time = %q, want untouched 22:45", got)
	}
}

func TestStatusDefaults(t *testing.T) {
	db := setupTestDB(t)
	settings := NewSettingsService(db)

	status := settings.Status()
	if status.CurrentDay != 1 {
		t.Errorf("current_day = %d, want fallback 1", status.CurrentDay)
	}
	if status.QuizOpenTime != "21:00" || status.QuizCloseTime != "22:45" {
		t.Errorf("window = %s-%s, want defaults", status.QuizOpenTime, status.QuizCloseTime)
	}
	if status.TotalDays != 30 {
		t.Errorf("total_days = %d, want 30", status.TotalDays)
	}
	if status.ServerTime == "" {
		t.Error("server_time missing")
	}
}

func TestStatusOpenWindow(t *testing.T) {
	db := setupTestDB(t)
	settings := NewSettingsService(db)

	// A window spanning the whole day is always open; an empty one never is.
	if err := settings.Update("00:00", "23:59", nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !settings.Status().IsOpen {
		t.Error("all-day window should be open")
	}

	if err := settings.Update("00:00", "00:00", nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if settings.Status().IsOpen {
		t.Error("zero-width midnight window should be closed")
	}
}
