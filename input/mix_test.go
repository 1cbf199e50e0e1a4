package input

import (
	"math/rand"
	"testing"

	"github.com/richinsley/glmix/graphics"
)

func TestMixIncreaseSaturates(t *testing.T) {
	m := NewMix(DefaultMix)
	for i := 0; i < 200; i++ {
		m.Increase()
	}
	if got := m.Value(); got != 1.0 {
		t.Fatalf("after 200 increases Value() = %v, want 1.0", got)
	}
}

func TestMixDecreaseSaturates(t *testing.T) {
	m := NewMix(DefaultMix)
	for i := 0; i < 200; i++ {
		m.Decrease()
	}
	if got := m.Value(); got != 0.0 {
		t.Fatalf("after 200 decreases Value() = %v, want 0.0", got)
	}
}

func TestMixStep(t *testing.T) {
	step := MixStep
	tests := []struct {
		name  string
		start float32
		op    func(*Mix)
		want  float32
	}{
		{"increase", 0.5, (*Mix).Increase, float32(0.5) + step},
		{"decrease", 0.5, (*Mix).Decrease, float32(0.5) - step},
		{"increase from zero", 0, (*Mix).Increase, step},
		{"decrease from one", 1, (*Mix).Decrease, float32(1) - step},
		{"increase at one", 1, (*Mix).Increase, 1},
		{"decrease at zero", 0, (*Mix).Decrease, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMix(tt.start)
			tt.op(&m)
			if got := m.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewMixClamps(t *testing.T) {
	if got := NewMix(3).Value(); got != 1 {
		t.Errorf("NewMix(3) = %v, want 1", got)
	}
	if got := NewMix(-1).Value(); got != 0 {
		t.Errorf("NewMix(-1) = %v, want 0", got)
	}
}

func TestMixStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewMix(DefaultMix)
	for i := 0; i < 10000; i++ {
		if rng.Intn(2) == 0 {
			m.Increase()
		} else {
			m.Decrease()
		}
		if v := m.Value(); v < 0 || v > 1 {
			t.Fatalf("step %d: Value() = %v out of [0,1]", i, v)
		}
	}
}

type fakeWindow struct {
	pressed     map[graphics.Key]bool
	shouldClose bool
}

func (w *fakeWindow) KeyPressed(k graphics.Key) bool { return w.pressed[k] }
func (w *fakeWindow) SetShouldClose(v bool)         { w.shouldClose = v }

func TestProcessInput(t *testing.T) {
	start, step := DefaultMix, MixStep
	tests := []struct {
		name      string
		keys      []graphics.Key
		wantMix   float32
		wantClose bool
	}{
		{"idle", nil, start, false},
		{"up", []graphics.Key{graphics.KeyUp}, start + step, false},
		{"down", []graphics.Key{graphics.KeyDown}, start - step, false},
		{"up and down", []graphics.Key{graphics.KeyUp, graphics.KeyDown}, (start + step) - step, false},
		{"escape", []graphics.Key{graphics.KeyEscape}, start, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWindow{pressed: map[graphics.Key]bool{}}
			for _, k := range tt.keys {
				w.pressed[k] = true
			}
			m := NewMix(start)
			ProcessInput(w, &m)
			if got := m.Value(); got != tt.wantMix {
				t.Errorf("mix = %v, want %v", got, tt.wantMix)
			}
			if w.shouldClose != tt.wantClose {
				t.Errorf("shouldClose = %v, want %v", w.shouldClose, tt.wantClose)
			}
		})
	}
}
