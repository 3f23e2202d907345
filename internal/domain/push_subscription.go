package domain

import "context"

// PushSubscription is a browser Web Push endpoint with its encryption keys.
type PushSubscription struct {
	endpoint string
	p256dh   string
	auth     string
}

func NewPushSubscription(endpoint, p256dh, auth string) (PushSubscription, error) {
	if endpoint == "" {
		return PushSubscription{}, ErrEmptyEndpoint
	}

	if p256dh == "" || auth == "" {
		return PushSubscription{}, ErrEmptyKeys
	}

	return PushSubscription{
		endpoint: endpoint,
		p256dh:   p256dh,
		auth:     auth,
	}, nil
}

func (s PushSubscription) Endpoint() string {
	return s.endpoint
}

func (s PushSubscription) P256dh() string {
	return s.p256dh
}

func (s PushSubscription) Auth() string {
	return s.auth
}

type UserSubscription struct {
	UserID       UserID
	Subscription PushSubscription
}

type PushSubscriptionRepository interface {
	Save(ctx context.Context, userID UserID, sub PushSubscription) error
	FindByUserID(ctx context.Context, userID UserID) (PushSubscription, error)
	ListWithSubscription(ctx context.Context) ([]UserSubscription, error)
	Clear(ctx context.Context, userID UserID) error
}
