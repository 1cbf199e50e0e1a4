package input

import "github.com/richinsley/glmix/graphics"

const (
	// DefaultMix is the blend factor the viewer starts with.
	DefaultMix float32 = 0.2
	// MixStep is applied once per polled frame while Up or Down is held.
	MixStep float32 = 0.005
)

// Mix is the texture blend factor, always within [0, 1].
type Mix struct {
	value float32
}

// NewMix returns a Mix holding v clamped to [0, 1].
func NewMix(v float32) Mix {
	m := Mix{value: v}
	m.clamp()
	return m
}

func (m Mix) Value() float32 {
	return m.value
}

func (m *Mix) Increase() {
	m.value += MixStep
	m.clamp()
}

func (m *Mix) Decrease() {
	m.value -= MixStep
	m.clamp()
}

func (m *Mix) clamp() {
	if m.value >= 1.0 {
		m.value = 1.0
	}
	if m.value <= 0.0 {
		m.value = 0.0
	}
}

// CloseRequester is the part of a window that can be asked to close.
type CloseRequester interface {
	SetShouldClose(value bool)
}

// Window is everything ProcessInput needs from a window.
type Window interface {
	graphics.KeyState
	CloseRequester
}

// ProcessInput polls the keys the viewer reacts to: Up and Down move the
// blend factor one step, Escape asks the window to close.
func ProcessInput(w Window, mix *Mix) {
	if w.KeyPressed(graphics.KeyUp) {
		mix.Increase()
	}
	if w.KeyPressed(graphics.KeyDown) {
		mix.Decrease()
	}
	if w.KeyPressed(graphics.KeyEscape) {
		w.SetShouldClose(true)
	}
}
