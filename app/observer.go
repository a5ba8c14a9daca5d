package app

import (
	"sort"
)

type Priority int

const (
	PriorityFirst Priority = iota
	PriorityBeforeRender
	PriorityRender
	PriorityAfterRender
	PriorityLast
)

// Handler receives a published message. Handlers must not block:
// dispatch is synchronous and completes before the next event poll.
type Handler func(msg interface{})

type subscription struct {
	handler  Handler
	priority Priority
	id       int
}

// Observer dispatches messages to subscribed handlers in priority
// order. Everything runs on the single main thread, publishing from a
// handler is not allowed.
type Observer struct {
	subs   []subscription
	lastID int
	sorted bool
}

func NewObserver() *Observer {
	return &Observer{}
}

// Subscribe registers a handler and returns its subscription id.
func (o *Observer) Subscribe(h Handler, p Priority) int {
	o.lastID++
	o.subs = append(o.subs, subscription{handler: h, priority: p, id: o.lastID})
	o.sorted = false
	return o.lastID
}

func (o *Observer) Unsubscribe(id int) {
	for i, s := range o.subs {
		if s.id == id {
			copy(o.subs[i:], o.subs[i+1:])
			o.subs = o.subs[:len(o.subs)-1]
			return
		}
	}
}

// Publish delivers msg to every handler, lowest priority value first.
func (o *Observer) Publish(msg interface{}) {
	if !o.sorted {
		sort.SliceStable(o.subs, func(i, j int) bool {
			return o.subs[i].priority < o.subs[j].priority
		})
		o.sorted = true
	}

	for _, s := range o.subs {
		s.handler(msg)
	}
}
