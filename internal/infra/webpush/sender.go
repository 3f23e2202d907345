package webpush

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	webpushgo "github.com/SherClockHolmes/webpush-go"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

//go:generate mockgen -source=sender.go -destination=sender_mock.go -package=webpush

const maxErrorBody = 512

type Sender interface {
	Send(ctx context.Context, sub domain.PushSubscription, payload []byte) error
}

// DeliveryError is returned when the push service rejects a message.
type DeliveryError struct {
	StatusCode int
	Message    string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("push delivery failed with status %d: %s", e.StatusCode, e.Message)
}

// Is reports a 410 response as domain.ErrSubscriptionGone.
func (e *DeliveryError) Is(target error) bool {
	return target == domain.ErrSubscriptionGone && e.StatusCode == http.StatusGone
}

type Config struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	// Subscriber is the contact for the push service, a mailto: or https: URL.
	Subscriber string
	TTL        time.Duration
	HTTPClient webpushgo.HTTPClient
}

type VAPIDSender struct {
	cfg Config
}

func NewVAPIDSender(cfg Config) (*VAPIDSender, error) {
	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return nil, errors.New("VAPID key pair is required")
	}

	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}

	return &VAPIDSender{cfg: cfg}, nil
}

func (s *VAPIDSender) Send(ctx context.Context, sub domain.PushSubscription, payload []byte) error {
	resp, err := webpushgo.SendNotificationWithContext(ctx, payload, &webpushgo.Subscription{
		Endpoint: sub.Endpoint(),
		Keys: webpushgo.Keys{
			P256dh: sub.P256dh(),
			Auth:   sub.Auth(),
		},
	}, &webpushgo.Options{
		HTTPClient:      s.cfg.HTTPClient,
		Subscriber:      s.cfg.Subscriber,
		TTL:             int(s.cfg.TTL.Seconds()),
		Urgency:         webpushgo.UrgencyHigh,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
	})
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		slog.DebugContext(ctx, "push notification accepted",
			slog.String("event", "push.send.finish"),
			slog.Int("status", resp.StatusCode),
		)

		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return &DeliveryError{
		StatusCode: resp.StatusCode,
		Message:    string(body),
	}
}
