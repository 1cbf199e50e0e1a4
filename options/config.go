package options

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors ViewerOptions for the YAML config file. Pointer fields
// distinguish a key that is absent from one set to its zero value.
type FileConfig struct {
	Width    *int     `yaml:"width"`
	Height   *int     `yaml:"height"`
	Title    *string  `yaml:"title"`
	GLMajor  *int     `yaml:"gl_major"`
	GLMinor  *int     `yaml:"gl_minor"`
	Vertex   *string  `yaml:"vertex"`
	Fragment *string  `yaml:"fragment"`
	Texture1 *string  `yaml:"texture1"`
	Texture2 *string  `yaml:"texture2"`
	FlipY    *bool    `yaml:"flip"`
	Mix      *float64 `yaml:"mix"`
	Record   *struct {
		Output   *string  `yaml:"output"`
		Duration *float64 `yaml:"duration"`
		FPS      *int     `yaml:"fps"`
		FFMPEG   *string  `yaml:"ffmpeg"`
	} `yaml:"record"`
}

const maxConfigSize = 1 << 20

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*FileConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file %s too large (%d bytes)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply copies values from cfg into o for every option whose flag was not
// set explicitly on fs.
func (o *ViewerOptions) Apply(cfg *FileConfig, fs *flag.FlagSet) {
	explicit := make(map[string]bool)
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	}
	set := func(name string, ok bool, assign func()) {
		if ok && !explicit[name] {
			assign()
		}
	}

	set("width", cfg.Width != nil, func() { *o.Width = *cfg.Width })
	set("height", cfg.Height != nil, func() { *o.Height = *cfg.Height })
	set("title", cfg.Title != nil, func() { *o.Title = *cfg.Title })
	set("gl-major", cfg.GLMajor != nil, func() { *o.GLMajor = *cfg.GLMajor })
	set("gl-minor", cfg.GLMinor != nil, func() { *o.GLMinor = *cfg.GLMinor })
	set("vertex", cfg.Vertex != nil, func() { *o.Vertex = *cfg.Vertex })
	set("fragment", cfg.Fragment != nil, func() { *o.Fragment = *cfg.Fragment })
	set("texture1", cfg.Texture1 != nil, func() { *o.Texture1 = *cfg.Texture1 })
	set("texture2", cfg.Texture2 != nil, func() { *o.Texture2 = *cfg.Texture2 })
	set("flip", cfg.FlipY != nil, func() { *o.FlipY = *cfg.FlipY })
	set("mix", cfg.Mix != nil, func() { *o.Mix = *cfg.Mix })

	if r := cfg.Record; r != nil {
		set("record", r.Output != nil, func() { *o.OutputFile = *r.Output })
		set("duration", r.Duration != nil, func() { *o.Duration = *r.Duration })
		set("fps", r.FPS != nil, func() { *o.FPS = *r.FPS })
		set("ffmpeg", r.FFMPEG != nil, func() { *o.FFMPEGPath = *r.FFMPEG })
	}
}

// Validate rejects option values the viewer cannot start with.
func (o *ViewerOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if *o.GLMajor < 3 || (*o.GLMajor == 3 && *o.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is not supported, need 3.3 core or newer", *o.GLMajor, *o.GLMinor)
	}
	if o.RecordMode() {
		if *o.FPS <= 0 {
			return fmt.Errorf("invalid fps %d", *o.FPS)
		}
		if *o.Duration <= 0 {
			return fmt.Errorf("invalid duration %v", *o.Duration)
		}
	}
	return nil
}
