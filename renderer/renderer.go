package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/glmix/assets"
	"github.com/richinsley/glmix/options"
	"github.com/richinsley/glmix/shader"
)

var glInitOnce sync.Once

// InitGL loads the OpenGL function pointers for the current context.
func InitGL() error {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

// Renderer draws the textured quad, blending two textures by a mix factor.
type Renderer struct {
	program  *Program
	quad     *Quad
	textures [2]*Texture
	mixLoc   int32
}

// NewRenderer builds the shader program, loads both textures and uploads the
// quad. A texture that fails to load is reported and left empty; only a
// shader failure is returned as an error.
func NewRenderer(opts *options.ViewerOptions) (*Renderer, error) {
	program, err := NewProgramFromFiles(*opts.Vertex, *opts.Fragment, shader.QuadVertexShader(), shader.QuadFragmentShader())
	if err != nil {
		return nil, err
	}

	r := &Renderer{program: program}
	paths := []string{*opts.Texture1, *opts.Texture2}
	assets.LoadEach(paths, func(i int, path string) error {
		tex, err := LoadTexture(path, *opts.FlipY)
		r.textures[i] = tex
		if err != nil {
			return err
		}
		log.Printf("Loaded texture %s (%dx%d)", path, tex.Width, tex.Height)
		return nil
	})
	r.quad = NewQuad()

	r.program.Use()
	r.program.SetInt("texture1", 0)
	r.program.SetInt("texture2", 1)
	r.mixLoc = r.program.UniformLocation("mixValue")

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[0].ID)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[1].ID)

	return r, nil
}

// SetViewport maps normalized device coordinates onto the framebuffer rectangle.
func (r *Renderer) SetViewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// Draw clears the framebuffer and draws the quad with the given blend factor.
func (r *Renderer) Draw(mix float32) {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.program.SetFloatAt(r.mixLoc, mix)
	r.quad.Draw()
}

// ReadPixels reads the RGBA contents of the bound framebuffer into dst,
// bottom row first.
func (r *Renderer) ReadPixels(dst []byte, width, height int) error {
	if len(dst) < width*height*4 {
		return fmt.Errorf("pixel buffer too small: %d bytes for %dx%d", len(dst), width, height)
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dst))
	return nil
}

func (r *Renderer) Shutdown() {
	r.quad.Delete()
	for _, t := range r.textures {
		t.Delete()
	}
	r.program.Delete()
}
