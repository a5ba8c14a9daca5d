package app

import (
	"fmt"
)

// ControlSystem is the event handler: a window-close request or a
// press of the quit key marks the window for closing, every other
// event is traced and otherwise ignored. Handling is synchronous, the
// loop exits after the iteration in which the flag was set.
type ControlSystem struct {
	window  Window
	quitKey Key
}

func NewControlSystem(window Window, quitKey Key, events *Observer) *ControlSystem {
	s := &ControlSystem{
		window:  window,
		quitKey: quitKey,
	}
	events.Subscribe(s.handle, PriorityFirst)
	return s
}

func (s *ControlSystem) handle(msg interface{}) {
	Logger().Debug("event", "msg", fmt.Sprintf("%T%+v", msg, msg))

	switch m := msg.(type) {
	case MessageClose:
		s.window.SetShouldClose(true)
	case MessageKey:
		if m.Key == s.quitKey && m.Action == Press {
			s.window.SetShouldClose(true)
		}
	}
}
