// Package app wires the window, renderer and scene together and runs the
// frame loop.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/config"
	"github.com/Faultbox/globe/internal/engine/debug"
	"github.com/Faultbox/globe/internal/engine/input"
	"github.com/Faultbox/globe/internal/engine/mesh"
	"github.com/Faultbox/globe/internal/engine/renderer"
	"github.com/Faultbox/globe/internal/engine/scene"
	"github.com/Faultbox/globe/internal/engine/texture"
	"github.com/Faultbox/globe/internal/engine/window"
	"github.com/Faultbox/globe/internal/logger"
)

// App is the running viewer.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	driver     *scene.Driver
	screenshot *debug.Screenshot

	cancelLoads context.CancelFunc
}

// New opens the window, uploads both spheres and starts decoding their
// textures. Any failure leaves nothing open.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}
	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// The renderer needs the GL context the window just made current.
	a.renderer, err = renderer.New(renderer.Config{ClearColor: cfg.Scene.ClearColor})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	earth, moon, err := a.uploadBodies()
	if err != nil {
		a.Close()
		return nil, err
	}

	orbit := orbitParams(cfg.Scene)
	a.driver = scene.NewDriver(
		driverConfig(cfg, newCamera(cfg.Camera)),
		a.renderer,
		a.window,
		drawables(orbit, earth, moon),
	)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancelLoads = cancel
	loader := &texture.Loader{MaxSize: cfg.Assets.MaxTextureSize}
	a.driver.WatchTextures(loader.Load(ctx, textureRequests(cfg.Assets)), map[string]scene.TextureHandle{
		earthName: earth.texture,
		moonName:  moon.texture,
	})

	a.input = input.New()
	a.screenshot = debug.NewScreenshot(cfg.Debug.ScreenshotDir, "globe", cfg.Debug.ScreenshotAfterFrames)

	a.log.Info("viewer initialized")
	return a, nil
}

func (a *App) uploadBodies() (earth, moon bodyHandles, err error) {
	earthMesh := mesh.NewSphere(sphereParams(a.cfg.Scene.Earth))
	if earth.mesh, err = a.renderer.UploadMesh(earthMesh); err != nil {
		return earth, moon, fmt.Errorf("uploading earth: %w", err)
	}
	moonMesh := mesh.NewSphere(sphereParams(a.cfg.Scene.Moon))
	if moon.mesh, err = a.renderer.UploadMesh(moonMesh); err != nil {
		return earth, moon, fmt.Errorf("uploading moon: %w", err)
	}
	earth.texture = a.renderer.NewTexture()
	moon.texture = a.renderer.NewTexture()
	return earth, moon, nil
}

// Run draws frames until the window is closed, Escape is pressed or a frame
// fails.
func (a *App) Run() error {
	a.log.Info("starting frame loop")

	var fps fpsCounter
	lastFrame := time.Now()

	for a.driver.Running() {
		if a.input.Update() {
			a.driver.Stop()
			break
		}
		for _, ev := range a.input.Events() {
			if ev.Type == input.EventWindowResize {
				a.log.Debug("window resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
			}
		}

		now := time.Now()
		if err := a.driver.Frame(now); err != nil {
			return fmt.Errorf("frame %d: %w", a.driver.Frames(), err)
		}

		if a.screenshot.Due(a.driver.Frames()) {
			a.capture()
		}

		a.window.SwapBuffers()

		if rate, ok := fps.tick(now); ok && a.cfg.Debug.ShowFPS {
			a.log.Debug("fps",
				zap.Float64("fps", rate),
				zap.Duration("frame", now.Sub(lastFrame)),
			)
		}
		lastFrame = now
	}

	a.log.Info("frame loop stopped", zap.Uint64("frames", a.driver.Frames()))
	return nil
}

// capture reads the back buffer before it is swapped away.
func (a *App) capture() {
	w, h := a.window.DrawableSize()
	path, err := a.screenshot.Save(a.renderer.ReadPixels(w, h), w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.cancelLoads != nil {
		a.cancelLoads()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
