package models

import "time"

// PushSubscription stores one browser push endpoint per row. The endpoint
// carries the subscription identity, so duplicates collapse on it.
type PushSubscription struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"not null;index" json:"participant_id"`
	Endpoint      string    `gorm:"size:500;uniqueIndex;not null" json:"endpoint"`
	P256dh        string    `gorm:"size:255;not null" json:"-"`
	Auth          string    `gorm:"size:255;not null" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
