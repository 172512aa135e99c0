package ecs

import (
	"time"

	"go.uber.org/zap"
)

// Event is one entry in the typed discriminated-union event channel. Tag
// names the variant; Data carries its typed payload as the game-events
// closed set defines it — kept as `any` here since the concrete variant set
// belongs to the game layer, not the ECS runtime.
type Event struct {
	Tag         string
	Data        any
	TimestampMs int64
}

// EventHandler reacts to one dispatched event.
type EventHandler func(Event)

const wildcardTag = "*"

// EventQueue is a FIFO channel of typed events with per-tag and wildcard
// subscribers.
type EventQueue struct {
	logger     *zap.Logger
	handlers   map[string][]EventHandler
	pending    []Event
	processing bool
}

// NewEventQueue returns an empty queue. logger may be nil.
func NewEventQueue(logger *zap.Logger) *EventQueue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventQueue{logger: logger, handlers: make(map[string][]EventHandler)}
}

// Subscribe registers handler for the named tag, or for every event when
// tag is "*".
func (q *EventQueue) Subscribe(tag string, handler EventHandler) {
	q.handlers[tag] = append(q.handlers[tag], handler)
}

// Emit stamps an event with the current time and appends it to the queue.
func (q *EventQueue) Emit(tag string, data any) {
	q.pending = append(q.pending, Event{Tag: tag, Data: data, TimestampMs: time.Now().UnixMilli()})
}

// Process drains the queue FIFO, dispatching each event to its
// type-specific handlers then the wildcard handlers, preserving emission
// order. Handler panics are recovered, logged, and do
// not stop dispatch of the remaining handlers or events. Re-entrant Process
// calls made from within a handler are refused with a logged warning.
func (q *EventQueue) Process() {
	if q.processing {
		q.logger.Warn("ecs: re-entrant EventQueue.Process call refused")
		return
	}
	q.processing = true
	defer func() { q.processing = false }()

	for len(q.pending) > 0 {
		ev := q.pending[0]
		q.pending = q.pending[1:]
		q.dispatch(ev, q.handlers[ev.Tag])
		q.dispatch(ev, q.handlers[wildcardTag])
	}
}

func (q *EventQueue) dispatch(ev Event, handlers []EventHandler) {
	for _, h := range handlers {
		q.runHandler(ev, h)
	}
}

func (q *EventQueue) runHandler(ev Event, h EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("ecs: event handler panicked", zap.String("tag", ev.Tag), zap.Any("recovered", r))
		}
	}()
	h(ev)
}

// Len returns the number of events awaiting dispatch.
func (q *EventQueue) Len() int { return len(q.pending) }
