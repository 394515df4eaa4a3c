package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/Happykiller/DraftDream-sub004/logging"
)

// Event is one in-process message: a topic plus an opaque payload. CRUD
// mutations publish the resource id on "<entity topic>.<change>".
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler consumes one event; errors are collected, never re-raised
// into the publisher.
type EventHandler func(context.Context, Event) error

// EventBus fans mutations out to in-process subscribers (notifications
// today; a broker client would slot in here).
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	errorChan   chan error
}

const errorBuffer = 100

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
		errorChan:   make(chan error, errorBuffer),
	}
}

// Subscribe adds a handler for one topic.
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

// Publish delivers an event to every subscriber of its topic, each on its
// own goroutine: a slow notification must not stall the mutation path.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	eb.mu.RLock()
	handlers, exists := eb.subscribers[eventType]
	eb.mu.RUnlock()

	if !exists {
		return
	}

	event := Event{
		Type:    eventType,
		Payload: payload,
	}

	for _, handler := range handlers {
		go func(h EventHandler) {
			if err := h(ctx, event); err != nil {
				select {
				case eb.errorChan <- fmt.Errorf("event handler error: %w", err):
				default:
					logger.Error("Error channel full, logging event handler error",
						zap.Error(err),
						zap.String("eventType", eventType))
				}
			}
		}(handler)
	}
}

// PublishEntityChange publishes one CRUD mutation: topic is the entity's
// descriptor topic, change is created/updated/deleted, the payload is the
// resource id.
func (eb *EventBus) PublishEntityChange(ctx context.Context, topic, change, resourceID string) {
	eb.Publish(ctx, topic+"."+change, resourceID)
}

// Start begins draining handler errors until ctx is cancelled.
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}

// Unsubscribe removes a handler from one topic.
func (eb *EventBus) Unsubscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if handlers, exists := eb.subscribers[eventType]; exists {
		for i, h := range handlers {
			if fmt.Sprintf("%p", h) == fmt.Sprintf("%p", handler) {
				eb.subscribers[eventType] = append(handlers[:i], handlers[i+1:]...)
				break
			}
		}
	}
}
