package graphics

// Context defines the interface for a window that owns an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(value bool)
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	KeyState
	// SetResizeHandler installs the function called once for every framebuffer resize event.
	SetResizeHandler(fn func(width, height int))
}

// KeyState reports whether a key is currently held down.
type KeyState interface {
	KeyPressed(key Key) bool
}
