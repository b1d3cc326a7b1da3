package texture

import (
	"context"
	"image"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/globe/internal/logger"
)

// Request names an image file to load.
type Request struct {
	Name string
	Path string
}

// Result carries a decoded, upload-ready image or the reason it failed.
type Result struct {
	Name  string
	Path  string
	Image *image.RGBA
	Err   error
}

// Loader decodes images off the render thread.
type Loader struct {
	// MaxSize caps the longest side of a loaded image; 0 disables scaling.
	MaxSize int

	// ReadFile reads raw file contents. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

// Load starts decoding every request in the background. The returned
// channel yields exactly one Result per request, in completion order, and
// is closed after the last one. It never blocks the caller.
func (l *Loader) Load(ctx context.Context, reqs []Request) <-chan Result {
	out := make(chan Result, len(reqs))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	go func() {
		for _, req := range reqs {
			g.Go(func() error {
				out <- l.load(ctx, req)
				return nil
			})
		}
		_ = g.Wait()
		close(out)
	}()

	return out
}

func (l *Loader) load(ctx context.Context, req Request) Result {
	res := Result{Name: req.Name, Path: req.Path}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	read := l.ReadFile
	if read == nil {
		read = os.ReadFile
	}

	data, err := read(req.Path)
	if err != nil {
		res.Err = err
		return res
	}

	img, err := Decode(req.Path, data)
	if err != nil {
		res.Err = err
		return res
	}

	res.Image = Prepare(img, l.MaxSize)
	logger.Named("texture").Debug("texture decoded",
		zap.String("name", req.Name),
		zap.String("path", req.Path),
		zap.Int("width", res.Image.Bounds().Dx()),
		zap.Int("height", res.Image.Bounds().Dy()),
		zap.Duration("took", time.Since(start)),
	)
	return res
}
