// Package encoder streams raw RGBA frames into an ffmpeg process.
package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const numBuffers = 3

// Config describes the video being recorded.
type Config struct {
	OutputFile  string
	FFMPEGPath  string
	Width       int
	Height      int
	FPS         int
	TotalFrames int // drives the progress bar; 0 hides it
}

// Encoder is a frame consumer backed by an ffmpeg child process. Frames are
// handed over on a buffered channel and written to ffmpeg's stdin by a
// separate goroutine.
type Encoder struct {
	cfg       Config
	frameSize int
	frames    chan []byte
	done      chan error
	closed    bool
}

// InputArgs are the ffmpeg options describing the raw frames on stdin.
func InputArgs(cfg Config) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"framerate": cfg.FPS,
	}
}

// OutputArgs picks an encoder for the container named by the file extension.
func OutputArgs(outputFile string) ffmpeg.KwArgs {
	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".mp4", ".mov", ".mkv":
		return ffmpeg.KwArgs{"c:v": "libx264", "pix_fmt": "yuv420p", "movflags": "+faststart"}
	case ".webm":
		return ffmpeg.KwArgs{"c:v": "libvpx-vp9", "pix_fmt": "yuv420p"}
	default:
		return ffmpeg.KwArgs{}
	}
}

func (c Config) validate() error {
	if c.OutputFile == "" {
		return errors.New("no output file")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d", c.FPS)
	}
	return nil
}

// New starts ffmpeg and the goroutine feeding it.
func New(cfg Config) (*Encoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pipeReader, pipeWriter := io.Pipe()
	cmd := ffmpeg.Input("pipe:", InputArgs(cfg)).
		Output(cfg.OutputFile, OutputArgs(cfg.OutputFile)).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if cfg.FFMPEGPath != "" {
		cmd = cmd.SetFfmpegPath(cfg.FFMPEGPath)
	}

	e := &Encoder{
		cfg:       cfg,
		frameSize: cfg.Width * cfg.Height * 4,
		frames:    make(chan []byte, numBuffers),
		done:      make(chan error, 1),
	}

	errc := make(chan error, 1)
	go func() {
		err := cmd.Run()
		// Unblock the writer if ffmpeg exits early.
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()
	go e.run(pipeWriter, errc)

	log.Printf("Recording %dx%d @ %d fps to %s", cfg.Width, cfg.Height, cfg.FPS, cfg.OutputFile)
	return e, nil
}

func (e *Encoder) run(w *io.PipeWriter, errc <-chan error) {
	var bar *progressbar.ProgressBar
	if e.cfg.TotalFrames > 0 {
		bar = progressbar.Default(int64(e.cfg.TotalFrames), "encoding")
	}

	var writeErr error
	for frame := range e.frames {
		if writeErr != nil {
			continue // drain so WriteFrame never blocks forever
		}
		if _, err := w.Write(frame); err != nil {
			writeErr = fmt.Errorf("failed to write frame to ffmpeg: %w", err)
			continue
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	w.Close()
	if bar != nil {
		bar.Finish()
	}

	runErr := <-errc
	if runErr != nil {
		e.done <- fmt.Errorf("ffmpeg failed: %w", runErr)
		return
	}
	e.done <- writeErr
}

// FrameSize is the number of bytes WriteFrame expects.
func (e *Encoder) FrameSize() int {
	return e.frameSize
}

// WriteFrame queues a copy of pixels, top row first.
func (e *Encoder) WriteFrame(pixels []byte) error {
	if e.closed {
		return errors.New("encoder closed")
	}
	if len(pixels) != e.frameSize {
		return fmt.Errorf("frame is %d bytes, want %d", len(pixels), e.frameSize)
	}
	frame := make([]byte, len(pixels))
	copy(frame, pixels)
	e.frames <- frame
	return nil
}

// Close flushes queued frames and waits for ffmpeg to exit.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	close(e.frames)
	return <-e.done
}
