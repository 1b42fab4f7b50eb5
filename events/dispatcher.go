// Package events routes document create/update notifications to registered
// handlers, collection by collection. It stands in for the store's native
// trigger mechanism: controllers emit after their writes land, and handlers
// are written to tolerate at-least-once delivery.
package events

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CreateHandler reacts to a newly written document.
type CreateHandler func(ctx context.Context, item map[string]types.AttributeValue) error

// UpdateHandler reacts to a document change with before and after images.
type UpdateHandler func(ctx context.Context, before, after map[string]types.AttributeValue) error

// Dispatcher holds the handler registry. Register everything during startup;
// emitting is safe from any goroutine afterwards.
type Dispatcher struct {
	onCreate map[string][]CreateHandler
	onUpdate map[string][]UpdateHandler
}

// NewDispatcher returns an empty registry.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		onCreate: map[string][]CreateHandler{},
		onUpdate: map[string][]UpdateHandler{},
	}
}

// OnCreate registers a handler for document creation in a collection.
func (d *Dispatcher) OnCreate(collection string, h CreateHandler) {
	d.onCreate[collection] = append(d.onCreate[collection], h)
}

// OnUpdate registers a handler for document updates in a collection.
func (d *Dispatcher) OnUpdate(collection string, h UpdateHandler) {
	d.onUpdate[collection] = append(d.onUpdate[collection], h)
}

// EmitCreate invokes every create handler for the collection. Handler errors
// are logged, never propagated: the write that triggered the event has
// already committed, and each handler re-derives its state from the store on
// the next delivery.
func (d *Dispatcher) EmitCreate(ctx context.Context, collection string, item map[string]types.AttributeValue) {
	for _, h := range d.onCreate[collection] {
		if err := h(ctx, item); err != nil {
			log.Printf("❌ %s create handler failed: %v", collection, err)
		}
	}
}

// EmitUpdate invokes every update handler for the collection.
func (d *Dispatcher) EmitUpdate(ctx context.Context, collection string, before, after map[string]types.AttributeValue) {
	for _, h := range d.onUpdate[collection] {
		if err := h(ctx, before, after); err != nil {
			log.Printf("❌ %s update handler failed: %v", collection, err)
		}
	}
}
