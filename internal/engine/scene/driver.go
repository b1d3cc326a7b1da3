package scene

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/engine/texture"
	"github.com/Faultbox/globe/internal/logger"
)

// DriverConfig holds the fixed per-session inputs of the render driver.
type DriverConfig struct {
	Camera Projector

	// BaseModelView is loaded before each object's transform is composed.
	BaseModelView mgl32.Mat4

	DegreesPerMs float64
	EarthAngle   float64
	MoonAngle    float64
}

// Driver advances the animation and draws every drawable once per frame.
// It is not safe for concurrent use; call it from the render thread only.
type Driver struct {
	cfg       DriverConfig
	gfx       Graphics
	surface   Surface
	drawables []Drawable
	state     *SceneState
	log       *zap.Logger

	textures       <-chan texture.Result
	textureTargets map[string]TextureHandle

	running bool
	frames  uint64
}

// NewDriver creates a driver that draws drawables in the given order.
func NewDriver(cfg DriverConfig, gfx Graphics, surface Surface, drawables []Drawable) *Driver {
	return &Driver{
		cfg:       cfg,
		gfx:       gfx,
		surface:   surface,
		drawables: drawables,
		state:     NewSceneState(cfg.EarthAngle, cfg.MoonAngle),
		log:       logger.Named("scene"),
		running:   true,
	}
}

// WatchTextures makes the driver upload loader results as they arrive.
// targets maps a request name to the texture it fills. Results for
// unknown names are ignored.
func (d *Driver) WatchTextures(results <-chan texture.Result, targets map[string]TextureHandle) {
	d.textures = results
	d.textureTargets = targets
}

// Frame advances the clock to now and renders one frame.
func (d *Driver) Frame(now time.Time) error {
	d.pollTextures()
	d.state.Anim.Advance(now, d.cfg.DegreesPerMs)

	width, height := d.surface.DrawableSize()
	d.gfx.SetViewport(width, height)
	d.gfx.Clear()
	if width <= 0 || height <= 0 {
		// Minimized; keep the clock running but skip drawing.
		return nil
	}

	d.gfx.SetProjection(d.cfg.Camera.ViewProjection(float32(width) / float32(height)))

	for _, obj := range d.drawables {
		mv, err := ModelView(d.state.Stack, d.cfg.BaseModelView, obj.Transform, d.state.Anim)
		if err != nil {
			return fmt.Errorf("drawing %s: %w", obj.Name, err)
		}
		d.gfx.Draw(DrawCall{
			Mesh:      obj.Mesh,
			Texture:   obj.Texture,
			ModelView: mv,
			Normals:   obj.Normals,
		})
	}

	d.frames++
	return nil
}

// pollTextures uploads every texture that finished decoding since the last
// frame without waiting for the rest.
func (d *Driver) pollTextures() {
	for d.textures != nil {
		select {
		case res, ok := <-d.textures:
			if !ok {
				d.textures = nil
				return
			}
			d.applyTexture(res)
		default:
			return
		}
	}
}

func (d *Driver) applyTexture(res texture.Result) {
	tex, ok := d.textureTargets[res.Name]
	if !ok {
		return
	}
	if res.Err != nil {
		d.log.Warn("texture unavailable",
			zap.String("name", res.Name),
			zap.String("path", res.Path),
			zap.Error(res.Err),
		)
		return
	}
	if err := d.gfx.UploadTexture(tex, res.Image); err != nil {
		d.log.Warn("texture upload failed", zap.String("name", res.Name), zap.Error(err))
		return
	}
	d.log.Info("texture ready",
		zap.String("name", res.Name),
		zap.Int("width", res.Image.Bounds().Dx()),
		zap.Int("height", res.Image.Bounds().Dy()),
	)
}

// Stop asks the host to stop requesting frames.
func (d *Driver) Stop() {
	d.running = false
}

// Running reports whether the host should keep requesting frames.
func (d *Driver) Running() bool {
	return d.running
}

// Frames returns the number of frames drawn so far.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// State exposes the scene state for inspection.
func (d *Driver) State() *SceneState {
	return d.state
}
