package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// twoRows builds a 2x2 image with a red top row and a blue bottom row.
func twoRows() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	for x := 0; x < 2; x++ {
		img.Set(x, 0, red)
		img.Set(x, 1, blue)
	}
	return img
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadImageFlip(t *testing.T) {
	path := writeFile(t, "rows.png", encodePNG(t, twoRows()))

	tests := []struct {
		name    string
		flip    bool
		wantTop color.RGBA
	}{
		{"no flip", false, color.RGBA{R: 255, A: 255}},
		{"flip", true, color.RGBA{B: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := LoadImage(path, tt.flip)
			if err != nil {
				t.Fatalf("LoadImage: %v", err)
			}
			if got := img.RGBAAt(0, 0); got != tt.wantTop {
				t.Errorf("first row = %v, want %v", got, tt.wantTop)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
				t.Errorf("bounds = %v", img.Bounds())
			}
		})
	}
}

func TestLoadImageBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, twoRows()); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImage(writeFile(t, "rows.bmp", buf.Bytes()), true)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("last row after flip = %v, want red", got)
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"), true); !os.IsNotExist(err) {
		t.Errorf("missing file: err = %v, want not-exist", err)
	}
	if _, err := LoadImage(writeFile(t, "junk.png", []byte("not an image")), true); err == nil {
		t.Error("junk file: err = nil")
	}
}

func TestToRGBAOffsetBounds(t *testing.T) {
	src := twoRows().SubImage(image.Rect(1, 1, 2, 2))
	rgba := ToRGBA(src)
	if rgba.Bounds() != image.Rect(0, 0, 1, 1) {
		t.Fatalf("bounds = %v", rgba.Bounds())
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel = %v, want blue", got)
	}
}

func TestFlipRows(t *testing.T) {
	pix := []byte{1, 1, 2, 2, 3, 3}
	FlipRows(pix, 2, 3)
	want := []byte{3, 3, 2, 2, 1, 1}
	if !bytes.Equal(pix, want) {
		t.Errorf("FlipRows = %v, want %v", pix, want)
	}
}
