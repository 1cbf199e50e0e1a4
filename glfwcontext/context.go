package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glmix/graphics"
	"github.com/richinsley/glmix/options"
)

var glfwKeys = map[graphics.Key]glfw.Key{
	graphics.KeyUp:     glfw.KeyUp,
	graphics.KeyDown:   glfw.KeyDown,
	graphics.KeyEscape: glfw.KeyEscape,
}

// Context wraps a GLFW window and its OpenGL context.
type Context struct {
	window   *glfw.Window
	onResize func(width, height int)
}

// New creates a window with a core-profile OpenGL context of the requested
// version. A visible window is resizable; an invisible one is used for recording.
func New(opts *options.ViewerOptions, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, *opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, *opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	return c, nil
}

// SetResizeHandler installs fn as the single framebuffer resize handler.
func (c *Context) SetResizeHandler(fn func(width, height int)) {
	c.onResize = fn
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.onResize != nil {
		c.onResize(width, height)
	}
}

// KeyPressed polls the current state of key.
func (c *Context) KeyPressed(key graphics.Key) bool {
	k, ok := glfwKeys[key]
	if !ok {
		return false
	}
	return c.window.GetKey(k) == glfw.Press
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(value bool) {
	c.window.SetShouldClose(value)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

var _ graphics.Context = (*Context)(nil)
