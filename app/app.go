// Package app runs the viewer: it bootstraps the window and GL context,
// builds the scene and drives the frame loop until the window closes.
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/richinsley/glmix/assets"
	"github.com/richinsley/glmix/encoder"
	"github.com/richinsley/glmix/graphics"
	"github.com/richinsley/glmix/input"
	"github.com/richinsley/glmix/options"
)

// Process exit codes.
const (
	ExitOK               = 0
	ExitBootstrapFailure = -1
	ExitRecordFailure    = 1
)

// ErrBootstrap marks failures that happen before the first frame.
var ErrBootstrap = errors.New("bootstrap failed")

// Scene is what the frame loop draws.
type Scene interface {
	SetViewport(x, y, width, height int32)
	Draw(mix float32)
	ReadPixels(dst []byte, width, height int) error
	Shutdown()
}

// FrameSink consumes recorded frames, top row first.
type FrameSink interface {
	WriteFrame(pixels []byte) error
	Close() error
}

// Platform holds the constructors the app bootstraps with. Each step is only
// reached when every earlier step succeeded.
type Platform struct {
	Init       func() error
	Terminate  func()
	NewContext func(opts *options.ViewerOptions, visible bool) (graphics.Context, error)
	LoadGL     func() error
	NewScene   func(opts *options.ViewerOptions) (Scene, error)
	NewSink    func(cfg encoder.Config) (FrameSink, error)
}

type App struct {
	opts     *options.ViewerOptions
	platform Platform
	mix      input.Mix
}

func New(opts *options.ViewerOptions, platform Platform) *App {
	return &App{
		opts:     opts,
		platform: platform,
		mix:      input.NewMix(float32(*opts.Mix)),
	}
}

// Mix returns the current blend factor.
func (a *App) Mix() float32 {
	return a.mix.Value()
}

// Run bootstraps and runs the viewer and returns the process exit code.
func (a *App) Run() int {
	err := a.run()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrBootstrap):
		log.Println(err)
		return ExitBootstrapFailure
	default:
		log.Println(err)
		return ExitRecordFailure
	}
}

func (a *App) run() error {
	p := a.platform
	if err := p.Init(); err != nil {
		return fmt.Errorf("%w: failed to initialize GLFW: %v", ErrBootstrap, err)
	}
	defer p.Terminate()

	ctx, err := p.NewContext(a.opts, !a.opts.RecordMode())
	if err != nil {
		return fmt.Errorf("%w: failed to create GLFW window: %v", ErrBootstrap, err)
	}
	defer ctx.Shutdown()
	ctx.MakeCurrent()

	if err := p.LoadGL(); err != nil {
		return fmt.Errorf("%w: failed to initialize OpenGL loader: %v", ErrBootstrap, err)
	}

	scene, err := p.NewScene(a.opts)
	if err != nil {
		return fmt.Errorf("%w: failed to initialize scene: %v", ErrBootstrap, err)
	}
	defer scene.Shutdown()

	ctx.SetResizeHandler(func(width, height int) {
		scene.SetViewport(0, 0, int32(width), int32(height))
	})
	width, height := ctx.GetFramebufferSize()
	scene.SetViewport(0, 0, int32(width), int32(height))

	if a.opts.RecordMode() {
		return a.record(ctx, scene, width, height)
	}

	log.Println("Starting interactive render loop...")
	a.loop(ctx, scene, nil)
	return nil
}

// loop runs frames until the window is asked to close. afterDraw, when set,
// runs between drawing and presenting and ends the loop by returning false.
func (a *App) loop(ctx graphics.Context, scene Scene, afterDraw func() bool) {
	for !ctx.ShouldClose() {
		input.ProcessInput(ctx, &a.mix)
		scene.Draw(a.mix.Value())
		more := afterDraw == nil || afterDraw()
		ctx.EndFrame()
		if !more {
			return
		}
	}
}

func (a *App) record(ctx graphics.Context, scene Scene, width, height int) error {
	total := a.opts.TotalFrames()
	sink, err := a.platform.NewSink(encoder.Config{
		OutputFile:  *a.opts.OutputFile,
		FFMPEGPath:  *a.opts.FFMPEGPath,
		Width:       width,
		Height:      height,
		FPS:         *a.opts.FPS,
		TotalFrames: total,
	})
	if err != nil {
		return fmt.Errorf("failed to start encoder: %w", err)
	}

	log.Println("Starting offscreen render loop...")
	pixels := make([]byte, width*height*4)
	frames := 0
	var captureErr error
	a.loop(ctx, scene, func() bool {
		if err := scene.ReadPixels(pixels, width, height); err != nil {
			captureErr = fmt.Errorf("failed to read pixels on frame %d: %w", frames, err)
			return false
		}
		assets.FlipRows(pixels, width*4, height)
		if err := sink.WriteFrame(pixels); err != nil {
			captureErr = fmt.Errorf("failed to queue frame %d: %w", frames, err)
			return false
		}
		frames++
		return frames < total
	})

	if err := sink.Close(); err != nil && captureErr == nil {
		captureErr = err
	}
	if captureErr != nil {
		return captureErr
	}
	log.Printf("Successfully rendered %d frames to %s", frames, *a.opts.OutputFile)
	return nil
}
