package app

// fakeWindow stands in for the glfw window so the loop and the event
// handling can run headless.
type fakeWindow struct {
	shouldClose bool
	polls       int
	swaps       int

	// onPoll simulates events arriving during a poll
	onPoll func(w *fakeWindow)
}

func (w *fakeWindow) ShouldClose() bool {
	return w.shouldClose
}

func (w *fakeWindow) SetShouldClose(v bool) {
	w.shouldClose = v
}

func (w *fakeWindow) Poll() {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w)
	}
}

func (w *fakeWindow) Swap() {
	w.swaps++
}

func (w *fakeWindow) FramebufferSize() (int, int) {
	return 1280, 640
}
