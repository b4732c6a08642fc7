package logic

import (
	"context"
	"errors"
	"sync"
)

type EventKind string

const (
	EvMuteConversation     EventKind = "mute_conversation"
	EvMute                 EventKind = "mute"
	EvBlock                EventKind = "block"
	EvStatusDeleted        EventKind = "status_deleted"
	EvDomainBlock          EventKind = "domain_block"
	EvActiveAccountChanged EventKind = "active_account_changed"
	EvFilterChanged        EventKind = "filter_changed"
)

// Event is anything published on the event bus. AccountId is the local account it concerns.
type Event interface {
	Kind() EventKind
	AccountId() int64
}

type MuteConversationEvent struct {
	Account  int64  `json:"account_id"`
	StatusId string `json:"status_id"`
	Mute     bool   `json:"mute"`
}

func (e *MuteConversationEvent) Kind() EventKind  { return EvMuteConversation }
func (e *MuteConversationEvent) AccountId() int64 { return e.Account }

type MuteEvent struct {
	Account int64  `json:"account_id"`
	UserId  string `json:"user_id"`
}

func (e *MuteEvent) Kind() EventKind  { return EvMute }
func (e *MuteEvent) AccountId() int64 { return e.Account }

type BlockEvent struct {
	Account int64  `json:"account_id"`
	UserId  string `json:"user_id"`
}

func (e *BlockEvent) Kind() EventKind  { return EvBlock }
func (e *BlockEvent) AccountId() int64 { return e.Account }

type StatusDeletedEvent struct {
	Account  int64  `json:"account_id"`
	StatusId string `json:"status_id"`
}

func (e *StatusDeletedEvent) Kind() EventKind  { return EvStatusDeleted }
func (e *StatusDeletedEvent) AccountId() int64 { return e.Account }

type DomainBlockEvent struct {
	Account int64  `json:"account_id"`
	Domain  string `json:"domain"`
}

func (e *DomainBlockEvent) Kind() EventKind  { return EvDomainBlock }
func (e *DomainBlockEvent) AccountId() int64 { return e.Account }

// ActiveAccountChangedEvent has AccountId 0 if no account is active any more.
type ActiveAccountChangedEvent struct {
	Account int64 `json:"account_id"`
}

func (e *ActiveAccountChangedEvent) Kind() EventKind  { return EvActiveAccountChanged }
func (e *ActiveAccountChangedEvent) AccountId() int64 { return e.Account }

type FilterChangedEvent struct {
	Account int64 `json:"account_id"`
}

func (e *FilterChangedEvent) Kind() EventKind  { return EvFilterChanged }
func (e *FilterChangedEvent) AccountId() int64 { return e.Account }

// EventFilter selects events for a subscriber. Zero values match everything.
type EventFilter struct {
	Kinds     []EventKind
	AccountId int64
}

func (f *EventFilter) Matches(ev Event) bool {
	if ev == nil {
		return false
	}
	if len(f.Kinds) > 0 {
		matched := false
		for _, k := range f.Kinds {
			if ev.Kind() == k {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if f.AccountId != 0 && ev.AccountId() != f.AccountId {
		return false
	}
	return true
}

type EventHandler func(ev Event)

var (
	ErrInvalidSubscriptionId = errors.New("subscription ID is required")
	ErrNilHandler            = errors.New("handler cannot be nil")
	ErrSubscriptionExists    = errors.New("subscription with this ID already exists")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
)

type IEventBus interface {
	// Publish calls every matching handler before returning.
	Publish(ev Event)
	// Subscribe registers handler until ctx is done or Unsubscribe is called.
	Subscribe(ctx context.Context, id string, filter EventFilter, handler EventHandler) error
	Unsubscribe(id string) error
	SubscriberCount() int
}

type subscription struct {
	filter  EventFilter
	handler EventHandler
	done    chan struct{} // Closed by Unsubscribe
}

type eventBus struct {
	mu   sync.RWMutex
	subs map[string]*subscription
}

func NewEventBus() IEventBus {
	return &eventBus{
		subs: make(map[string]*subscription),
	}
}

func (eb *eventBus) Publish(ev Event) {
	if ev == nil {
		return
	}

	eb.mu.RLock()
	var handlers []EventHandler
	for _, sub := range eb.subs {
		if sub.filter.Matches(ev) {
			handlers = append(handlers, sub.handler)
		}
	}
	eb.mu.RUnlock()

	// Handlers may subscribe or unsubscribe, so they run outside the lock
	for _, handler := range handlers {
		handler(ev)
	}
}

func (eb *eventBus) Subscribe(ctx context.Context, id string, filter EventFilter, handler EventHandler) error {
	if id == "" {
		return ErrInvalidSubscriptionId
	}
	if handler == nil {
		return ErrNilHandler
	}

	eb.mu.Lock()
	if _, exists := eb.subs[id]; exists {
		eb.mu.Unlock()
		return ErrSubscriptionExists
	}
	sub := &subscription{filter: filter, handler: handler, done: make(chan struct{})}
	eb.subs[id] = sub
	eb.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-sub.done:
			return
		}
		eb.mu.Lock()
		defer eb.mu.Unlock()
		// The ID may have been reused after an explicit Unsubscribe
		if eb.subs[id] == sub {
			delete(eb.subs, id)
		}
	}()

	return nil
}

func (eb *eventBus) Unsubscribe(id string) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	sub, exists := eb.subs[id]
	if !exists {
		return ErrSubscriptionNotFound
	}
	delete(eb.subs, id)
	close(sub.done)
	return nil
}

func (eb *eventBus) SubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subs)
}
