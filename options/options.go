package options

import "flag"

// Defaults reproduce the original viewer when no flags are given.
const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultTitle    = "LearnOpenGL"
	DefaultGLMajor  = 3
	DefaultGLMinor  = 3
	DefaultVertex   = "vertex.s"
	DefaultFragment = "fragment.s"
	DefaultTexture1 = "res/container.jpg"
	DefaultTexture2 = "res/awesomeface.png"
	DefaultMix      = 0.2
	DefaultDuration = 5.0
	DefaultFPS      = 60
)

type ViewerOptions struct {
	ConfigFile *string
	Help       *bool
	Width      *int
	Height     *int
	Title      *string
	GLMajor    *int
	GLMinor    *int
	Vertex     *string // vertex shader source file; the built-in source is used when missing
	Fragment   *string // fragment shader source file
	Texture1   *string
	Texture2   *string
	FlipY      *bool // flip images vertically on load to match GL texture coordinates
	Mix        *float64
	// Recording options
	OutputFile *string // non-empty enables record mode
	Duration   *float64
	FPS        *int
	FFMPEGPath *string
}

// Register binds every viewer option to a flag on fs.
func Register(fs *flag.FlagSet) *ViewerOptions {
	return &ViewerOptions{
		ConfigFile: fs.String("config", "", "YAML config file; flags given on the command line take precedence"),
		Help:       fs.Bool("help", false, "Show help message"),
		Width:      fs.Int("width", DefaultWidth, "Window width"),
		Height:     fs.Int("height", DefaultHeight, "Window height"),
		Title:      fs.String("title", DefaultTitle, "Window title"),
		GLMajor:    fs.Int("gl-major", DefaultGLMajor, "Requested OpenGL major version"),
		GLMinor:    fs.Int("gl-minor", DefaultGLMinor, "Requested OpenGL minor version"),
		Vertex:     fs.String("vertex", DefaultVertex, "Vertex shader file"),
		Fragment:   fs.String("fragment", DefaultFragment, "Fragment shader file"),
		Texture1:   fs.String("texture1", DefaultTexture1, "First texture (texture unit 0)"),
		Texture2:   fs.String("texture2", DefaultTexture2, "Second texture (texture unit 1)"),
		FlipY:      fs.Bool("flip", true, "Flip textures vertically on load"),
		Mix:        fs.Float64("mix", DefaultMix, "Initial blend factor between the two textures"),
		OutputFile: fs.String("record", "", "Render offscreen and record to this file"),
		Duration:   fs.Float64("duration", DefaultDuration, "Duration to record in seconds"),
		FPS:        fs.Int("fps", DefaultFPS, "Frames per second for recording"),
		FFMPEGPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
}

// Defaults returns options holding the default value of every field.
func Defaults() *ViewerOptions {
	return Register(flag.NewFlagSet("defaults", flag.ContinueOnError))
}

// RecordMode reports whether frames should be rendered offscreen to a file.
func (o *ViewerOptions) RecordMode() bool {
	return o.OutputFile != nil && *o.OutputFile != ""
}

// TotalFrames is the number of frames rendered in record mode.
func (o *ViewerOptions) TotalFrames() int {
	return int(*o.Duration * float64(*o.FPS))
}
