// Package state provides a shared store for last known bulb states.
//
// Hosts that expose several views of the same bulb (an individual light
// and a group containing it, say) construct one Store and hand it to each
// device, instead of relying on process-wide registries.  Every publish
// records the state and fans it out to the endpoint's subscribers.
package state

import (
	"sync"

	"github.com/gawindx/goihomma/common"
)

// Store keeps the last published state per endpoint and notifies
// subscribers on updates.  The zero value is not usable, always construct
// with NewStore.
type Store struct {
	states        map[string]common.State
	subscriptions map[string]*common.Subscription
	endpoints     map[string]string
	sync.RWMutex
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		states:        make(map[string]common.State),
		subscriptions: make(map[string]*common.Subscription),
		endpoints:     make(map[string]string),
	}
}

// Update records the state for an endpoint and publishes an
// EventUpdateState to its subscribers.
func (s *Store) Update(ip string, state common.State) {
	s.Lock()
	s.states[ip] = state
	subs := make([]*common.Subscription, 0, len(s.subscriptions))
	for id, sub := range s.subscriptions {
		if s.endpoints[id] == ip {
			subs = append(subs, sub)
		}
	}
	s.Unlock()

	event := common.EventUpdateState{IP: ip, State: state}
	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf(`dropping state update for %v: %v`, ip, err)
		}
	}
}

// Get returns the last published state for an endpoint, and whether one
// has been published at all.
func (s *Store) Get(ip string) (common.State, bool) {
	s.RLock()
	state, ok := s.states[ip]
	s.RUnlock()
	return state, ok
}

// Subscribe returns a subscription receiving EventUpdateState events for
// the given endpoint only.
func (s *Store) Subscribe(ip string) (*common.Subscription, error) {
	sub := common.NewSubscription(s)
	s.Lock()
	s.subscriptions[sub.ID()] = sub
	s.endpoints[sub.ID()] = ip
	s.Unlock()
	return sub, nil
}

// NewSubscription is not meaningful without an endpoint, use Subscribe.
// Implemented to satisfy common.SubscriptionTarget.
func (s *Store) NewSubscription() (*common.Subscription, error) {
	return nil, common.ErrNotFound
}

// CloseSubscription is a callback for handling the closing of
// subscriptions.
func (s *Store) CloseSubscription(sub *common.Subscription) error {
	s.RLock()
	_, ok := s.subscriptions[sub.ID()]
	s.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	s.Lock()
	delete(s.subscriptions, sub.ID())
	delete(s.endpoints, sub.ID())
	s.Unlock()

	return nil
}
