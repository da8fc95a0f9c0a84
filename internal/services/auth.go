package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPhoneRequired       = errors.New("phone required")
	ErrPhoneTaken          = errors.New("phone already registered")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrSessionInvalid      = errors.New("invalid session")
	ErrSessionExpired      = errors.New("session expired")
)

type AuthService struct {
	db         *gorm.DB
	sessionTTL time.Duration
}

func NewAuthService(db *gorm.DB, sessionTTLDays int) *AuthService {
	return &AuthService{
		db:         db,
		sessionTTL: time.Duration(sessionTTLDays) * 24 * time.Hour,
	}
}

func (s *AuthService) Register(name, phone, password string) (*models.Participant, *models.Session, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, nil, ErrPhoneRequired
	}

	var existing models.Participant
	if err := s.db.Where("phone = ?", phone).First(&existing).Error; err == nil {
		return nil, nil, ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	participant := models.Participant{
		Name:         strings.TrimSpace(name),
		Phone:        phone,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&participant).Error; err != nil {
		return nil, nil, err
	}

	session, err := s.CreateSession(participant.ID)
	if err != nil {
		return nil, nil, err
	}
	return &participant, session, nil
}

func (s *AuthService) Login(phone, password string) (*models.Participant, *models.Session, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, nil, ErrPhoneRequired
	}

	var participant models.Participant
	if err := s.db.Where("phone = ?", phone).First(&participant).Error; err != nil {
		return nil, nil, ErrParticipantNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(participant.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidPassword
	}

	// Sessions are additive: a new login never invalidates older sessions.
	session, err := s.CreateSession(participant.ID)
	if err != nil {
		return nil, nil, err
	}
	return &participant, session, nil
}

func (s *AuthService) CreateSession(participantID uint) (*models.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	session := models.Session{
		Token:         token,
		ParticipantID: participantID,
		ExpiresAt:     time.Now().Add(s.sessionTTL),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ValidateSession resolves a token to its participant. An expired session is
// deleted on the spot; the delete carries the same expiry guard so two
// requests racing on one expiring session both see it as expired.
func (s *AuthService) ValidateSession(token string) (*models.Participant, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	var session models.Session
	if err := s.db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, ErrSessionInvalid
	}

	now := time.Now()
	if session.Expired(now) {
		s.db.Where("token = ? AND expires_at <= ?", token, now).Delete(&models.Session{})
		return nil, ErrSessionExpired
	}

	var participant models.Participant
	if err := s.db.First(&participant, session.ParticipantID).Error; err != nil {
		return nil, ErrSessionInvalid
	}
	return &participant, nil
}

// Logout deletes the session row if present; unknown tokens are a no-op.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// SessionTTL exposes the configured lifetime for cookie max-age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
