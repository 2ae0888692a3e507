package mocks

import (
	"context"
	"sync"

	"farmshop/domain/order"
)

// EventPublisher In-memory event publisher that records every published
// event. Setting FailPublish makes Publish return that error.
type EventPublisher struct {
	mu     sync.Mutex
	events []order.Event

	FailPublish error
}

func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

func (p *EventPublisher) Publish(ctx context.Context, routingKey string, event order.Event) error {
	if p.FailPublish != nil {
		return p.FailPublish
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything published so far. Test helper.
func (p *EventPublisher) Events() []order.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]order.Event(nil), p.events...)
}

var _ order.EventPublisher = (*EventPublisher)(nil)
