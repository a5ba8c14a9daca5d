package app

import (
	"testing"
)

func TestInputManager_KeyTracking(t *testing.T) {
	m := NewInputManager(NewObserver())

	if m.IsKeyDown(KeyW) {
		t.Error("key down before any event")
	}
	if m.AnyKeyDown() {
		t.Error("any key down before any event")
	}

	m.KeyEvent(KeyW, Press)
	if !m.IsKeyDown(KeyW) {
		t.Error("key not down after press")
	}
	if !m.AnyKeyDown() {
		t.Error("no key down after press")
	}
	if m.IsKeyDown(KeyQ) {
		t.Error("unrelated key reported down")
	}

	m.KeyEvent(KeyW, Release)
	if m.IsKeyDown(KeyW) {
		t.Error("key still down after release")
	}
	if m.AnyKeyDown() {
		t.Error("any key down after release")
	}
}

func TestInputManager_Repeat(t *testing.T) {
	m := NewInputManager(NewObserver())

	m.KeyEvent(KeyW, Press)
	m.KeyEvent(KeyW, Repeat)

	if !m.IsKeyDown(KeyW) {
		t.Error("repeat cleared the pressed state")
	}
}

func TestInputManager_Publishes(t *testing.T) {
	events := NewObserver()
	m := NewInputManager(events)

	var got []MessageKey
	events.Subscribe(func(msg interface{}) {
		if k, ok := msg.(MessageKey); ok {
			got = append(got, k)
		}
	}, PriorityFirst)

	m.KeyEvent(KeyQ, Press)
	m.KeyEvent(KeyQ, Release)

	want := []MessageKey{
		{Key: KeyQ, Action: Press},
		{Key: KeyQ, Action: Release},
	}
	if len(got) != len(want) {
		t.Fatalf("received %v messages instead of %v", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("received %+v instead of %+v", got[i], want[i])
		}
	}
}

func TestInputManager_UnknownKey(t *testing.T) {
	events := NewObserver()
	m := NewInputManager(events)

	var published int
	events.Subscribe(func(msg interface{}) { published++ }, PriorityFirst)

	m.KeyEvent(Key(-1), Press)

	if published != 0 {
		t.Errorf("published %v events for an unmapped key", published)
	}
	if m.AnyKeyDown() {
		t.Error("unmapped key recorded as pressed")
	}
}
