package app

// MessageClose is published when the user requests to close the window.
type MessageClose struct{}

type MessageKey struct {
	Key    Key
	Action Action
}

type MessageResize struct {
	Width, Height int
}

type MessageMouseMove struct {
	X, Y float64
}

type MessageMouseButton struct {
	Button MouseButton
	Action Action
}

type MessageScroll struct {
	X, Y float64
}
