package services

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/config"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/models"

	webpush "github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PushSender delivers one payload to one subscription and returns the
// upstream status code.
type PushSender interface {
	Send(sub *models.PushSubscription, payload []byte) (int, error)
}

type webpushSender struct {
	options webpush.Options
}

func (w *webpushSender) Send(sub *models.PushSubscription, payload []byte) (int, error) {
	resp, err := webpush.SendNotification(payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &w.options)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

type PushService struct {
	db        *gorm.DB
	sender    PushSender
	publicKey string
}

func NewPushService(db *gorm.DB, cfg *config.Config) *PushService {
	return &PushService{
		db: db,
		sender: &webpushSender{options: webpush.Options{
			Subscriber:      cfg.VAPIDSubject,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             60,
		}},
		publicKey: cfg.VAPIDPublicKey,
	}
}

// NewPushServiceWithSender wires a custom transport; tests use it to fake
// delivery.
func NewPushServiceWithSender(db *gorm.DB, sender PushSender, publicKey string) *PushService {
	return &PushService{db: db, sender: sender, publicKey: publicKey}
}

func (s *PushService) PublicKey() string {
	return s.publicKey
}

// Subscribe stores a push endpoint for the participant. Re-subscribing with
// the same endpoint is a no-op.
func (s *PushService) Subscribe(participantID uint, endpoint, p256dh, auth string) error {
	sub := models.PushSubscription{
		ParticipantID: participantID,
		Endpoint:      endpoint,
		P256dh:        p256dh,
		Auth:          auth,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoNothing: true,
	}).Create(&sub).Error
}

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SendToAll delivers the message to every stored subscription. Endpoints
// that error or report the subscription gone are pruned in one batch after
// the pass; the operation always completes and reports counts.
func (s *PushService) SendToAll(title, body string) (sent int, removed int, err error) {
	var subs []models.PushSubscription
	if err := s.db.Find(&subs).Error; err != nil {
		return 0, 0, err
	}

	payload, err := json.Marshal(pushPayload{Title: title, Body: body})
	if err != nil {
		return 0, 0, err
	}

	var stale []uint
	for i := range subs {
		status, sendErr := s.sender.Send(&subs[i], payload)
		switch {
		case sendErr != nil:
			log.Printf("push: delivery to subscription %d failed: %v", subs[i].ID, sendErr)
			stale = append(stale, subs[i].ID)
		case status >= 400:
			if status != http.StatusNotFound && status != http.StatusGone {
				log.Printf("push: subscription %d responded %d", subs[i].ID, status)
			}
			stale = append(stale, subs[i].ID)
		default:
			sent++
		}
	}

	if len(stale) > 0 {
		if err := s.db.Delete(&models.PushSubscription{}, stale).Error; err != nil {
			return sent, 0, err
		}
		removed = len(stale)
	}
	return sent, removed, nil
}
