package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/glmix/app"
	"github.com/richinsley/glmix/encoder"
	"github.com/richinsley/glmix/glfwcontext"
	"github.com/richinsley/glmix/graphics"
	"github.com/richinsley/glmix/options"
	"github.com/richinsley/glmix/renderer"
)

func init() {
	runtime.LockOSThread()
}

// glPlatform wires the app to GLFW, go-gl and ffmpeg.
func glPlatform() app.Platform {
	return app.Platform{
		Init:      glfwcontext.InitGraphics,
		Terminate: glfwcontext.TerminateGraphics,
		NewContext: func(opts *options.ViewerOptions, visible bool) (graphics.Context, error) {
			return glfwcontext.New(opts, visible)
		},
		LoadGL: renderer.InitGL,
		NewScene: func(opts *options.ViewerOptions) (app.Scene, error) {
			return renderer.NewRenderer(opts)
		},
		NewSink: func(cfg encoder.Config) (app.FrameSink, error) {
			return encoder.New(cfg)
		},
	}
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.Register(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	if *opts.Help {
		fmt.Println("Textured quad blend viewer")
		fmt.Println("Up/Down change the blend factor, Escape quits.")
		fs.PrintDefaults()
		return
	}

	if *opts.ConfigFile != "" {
		cfg, err := options.LoadFile(*opts.ConfigFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		opts.Apply(cfg, fs)
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	os.Exit(app.New(opts, glPlatform()).Run())
}
