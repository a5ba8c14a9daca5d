package app

import (
	"github.com/willf/bitset"
)

// InputManager tracks the pressed-key set and forwards key events to
// the observer.
type InputManager struct {
	pressed *bitset.BitSet
	events  *Observer
}

func NewInputManager(events *Observer) *InputManager {
	return &InputManager{
		pressed: bitset.New(512),
		events:  events,
	}
}

// KeyEvent records the state change and publishes a MessageKey. Keys
// without a platform mapping (negative codes) are dropped.
func (m *InputManager) KeyEvent(key Key, action Action) {
	if key < 0 {
		return
	}

	switch action {
	case Press:
		m.pressed.Set(uint(key))
	case Release:
		m.pressed.Clear(uint(key))
	}

	m.events.Publish(MessageKey{Key: key, Action: action})
}

func (m *InputManager) IsKeyDown(key Key) bool {
	return key >= 0 && m.pressed.Test(uint(key))
}

func (m *InputManager) AnyKeyDown() bool {
	return m.pressed.Any()
}
