package common

import (
	"sync"
	"time"

	"github.com/satori/go.uuid"
)

const subscriptionChanSize = 16

// DefaultTimeout is the maximum time to wait when publishing an event to a
// slow subscriber before giving up on it.
const DefaultTimeout = 2 * time.Second

// SubscriptionTarget defines the interface between a subscription and its
// target object
type SubscriptionTarget interface {
	NewSubscription() (*Subscription, error)
	CloseSubscription(*Subscription) error
}

// Subscription exposes an event channel for consumers, and attaches to a
// SubscriptionTarget, that will feed it with events
type Subscription struct {
	events chan interface{}
	closed bool
	id     uuid.UUID
	target SubscriptionTarget
	sync.RWMutex
}

// ID returns the unique ID for this subscription
func (s *Subscription) ID() string {
	return s.id.String()
}

// Events returns a chan reader for reading events published to this
// subscription
func (s *Subscription) Events() <-chan interface{} {
	return s.events
}

// Write pushes an event onto the events channel.  The read lock is held
// across the send so Close can not tear the channel down under an in-flight
// write.
func (s *Subscription) Write(event interface{}) error {
	s.RLock()
	defer s.RUnlock()
	if s.closed {
		return ErrClosed
	}

	select {
	case s.events <- event:
		return nil
	case <-time.After(DefaultTimeout):
		return ErrTimeout
	}
}

// Close cleans up resources and notifies the target that the subscription
// should no longer be used.  It is important to close subscriptions when
// you are done with them to avoid blocking operations.
func (s *Subscription) Close() error {
	s.Lock()
	if s.closed {
		s.Unlock()
		Log.Warnf(`subscription already closed`)
		return ErrClosed
	}
	s.closed = true
	close(s.events)
	s.Unlock()

	return s.target.CloseSubscription(s)
}

// NewSubscription returns a *Subscription attached to the specified target
func NewSubscription(target SubscriptionTarget) *Subscription {
	return &Subscription{
		events: make(chan interface{}, subscriptionChanSize),
		id:     uuid.NewV4(),
		target: target,
	}
}
