// Package debug provides frame capture for inspecting rendered output.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshot saves one frame as a PNG once the frame counter reaches a
// threshold. A zero threshold or an empty directory disables it.
type Screenshot struct {
	dir         string
	prefix      string
	afterFrames uint64
	taken       bool

	now func() time.Time
}

// NewScreenshot creates a one-shot capture for the given frame.
func NewScreenshot(dir, prefix string, afterFrames int) *Screenshot {
	s := &Screenshot{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
	}
	if afterFrames > 0 {
		s.afterFrames = uint64(afterFrames)
	}
	return s
}

// Enabled reports whether a capture is configured.
func (s *Screenshot) Enabled() bool {
	return s.dir != "" && s.afterFrames > 0
}

// Due reports whether the frame with the given count should be captured.
// It returns true at most once.
func (s *Screenshot) Due(frames uint64) bool {
	return s.Enabled() && !s.taken && frames >= s.afterFrames
}

// Save writes bottom-up RGBA rows, as read from the framebuffer, to a PNG
// file and marks the capture as taken. It returns the file path.
func (s *Screenshot) Save(pixels []byte, width, height int) (string, error) {
	s.taken = true

	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	filename := filepath.Join(s.dir, fmt.Sprintf("%s_%s.png", s.prefix, s.now().Format("2006-01-02_15-04-05")))
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// FromPixels builds a top-down image from bottom-up RGBA rows.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
