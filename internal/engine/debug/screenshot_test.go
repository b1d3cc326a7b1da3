package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromPixelsFlips(t *testing.T) {
	// Two rows, bottom row red, top row blue, as GL returns them.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}

	img, err := FromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}

	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top-left = %v, want blue", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom-right = %v, want red", got)
	}
}

func TestFromPixelsErrors(t *testing.T) {
	tests := []struct {
		name          string
		pixels        []byte
		width, height int
	}{
		{"size mismatch", make([]byte, 10), 2, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromPixels(tt.pixels, tt.width, tt.height); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScreenshotDue(t *testing.T) {
	tests := []struct {
		name   string
		dir    string
		after  int
		frames uint64
		want   bool
	}{
		{"disabled by frames", "shots", 0, 100, false},
		{"disabled by dir", "", 10, 100, false},
		{"too early", "shots", 10, 9, false},
		{"exactly", "shots", 10, 10, true},
		{"late", "shots", 10, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreenshot(tt.dir, "globe", tt.after)
			if got := s.Due(tt.frames); got != tt.want {
				t.Errorf("Due(%d) = %v, want %v", tt.frames, got, tt.want)
			}
		})
	}
}

func TestScreenshotSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewScreenshot(dir, "globe", 1)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }

	if !s.Due(1) {
		t.Fatal("expected capture to be due")
	}

	pixels := make([]byte, 3*2*4)
	for i := range pixels {
		pixels[i] = 200
	}
	path, err := s.Save(pixels, 3, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if want := filepath.Join(dir, "globe_2024-03-01_12-30-45.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}

	if s.Due(2) {
		t.Error("capture due again after Save")
	}
}

func TestScreenshotSaveMarksTakenOnError(t *testing.T) {
	s := NewScreenshot(t.TempDir(), "globe", 1)
	if _, err := s.Save([]byte{1}, 1, 1); err == nil {
		t.Fatal("expected error")
	}
	if s.Due(5) {
		t.Error("failed capture should not be retried every frame")
	}
}
