package models

import "time"

type Session struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Token         string      `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ParticipantID uint        `gorm:"not null;index" json:"participant_id"`
	Participant   Participant `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time   `json:"created_at"`
	ExpiresAt     time.Time   `gorm:"not null" json:"expires_at"`
}

// Expired reports whether the session is past its expiry and eligible
// for lazy deletion.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
