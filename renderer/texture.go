package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/glmix/assets"
)

// Texture is a 2D texture uploaded from an image file.
type Texture struct {
	ID     uint32
	Width  int32
	Height int32
}

// LoadTexture decodes the image at path and uploads it with repeat wrapping,
// linear filtering and a full mipmap chain. The texture object is created
// before decoding, so on error the returned Texture still carries a valid,
// empty handle that may be bound.
func LoadTexture(path string, flip bool) (*Texture, error) {
	t := &Texture{}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	rgba, err := assets.LoadImage(path, flip)
	if err != nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return t, err
	}

	t.Width = int32(rgba.Rect.Dx())
	t.Height = int32(rgba.Rect.Dy())
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		t.Width,
		t.Height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t, nil
}

func (t *Texture) Delete() {
	if t != nil && t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
