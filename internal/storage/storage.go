// Package storage defines the persistence contract for contact subscribers.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyExists is returned when a subscriber e-mail is already stored.
var ErrAlreadyExists = errors.New("subscriber already exists")

// Subscriber is an e-mail address left through the contact form.
type Subscriber struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}

// SubscriberStore persists contact subscribers.
type SubscriberStore interface {
	// AddSubscriber stores a normalized e-mail address. It returns
	// ErrAlreadyExists when the address is already stored.
	AddSubscriber(ctx context.Context, email string) error
	// ListSubscribers returns every subscriber in insertion order.
	ListSubscribers(ctx context.Context) ([]Subscriber, error)
}
