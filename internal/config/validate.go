package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/globe/internal/logger"
)

// Validate reports every setting that would make the scene unrenderable.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera: fov_y %v must be in (0, 180)", c.Camera.FovY))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		err = multierr.Append(err, fmt.Errorf("camera: need 0 < near (%v) < far (%v)", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Eye == c.Camera.Center {
		err = multierr.Append(err, fmt.Errorf("camera: eye and center are both %v", c.Camera.Eye))
	}

	err = multierr.Append(err, c.Scene.Earth.validate("earth"))
	err = multierr.Append(err, c.Scene.Moon.validate("moon"))

	if c.Assets.EarthTexture == "" {
		err = multierr.Append(err, fmt.Errorf("assets: earth_texture is empty"))
	}
	if c.Assets.MoonTexture == "" {
		err = multierr.Append(err, fmt.Errorf("assets: moon_texture is empty"))
	}
	if c.Assets.MaxTextureSize < 0 {
		err = multierr.Append(err, fmt.Errorf("assets: max_texture_size %d is negative", c.Assets.MaxTextureSize))
	}

	if c.Debug.ScreenshotAfterFrames < 0 {
		err = multierr.Append(err, fmt.Errorf("debug: screenshot_after_frames %d is negative", c.Debug.ScreenshotAfterFrames))
	}

	if _, lerr := logger.ParseLevel(c.Logging.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging: %w", lerr))
	}

	return err
}

func (b BodyConfig) validate(name string) error {
	var err error
	if b.Radius <= 0 {
		err = multierr.Append(err, fmt.Errorf("scene.%s: radius %v must be positive", name, b.Radius))
	}
	if b.LatitudeBands < 1 || b.LongitudeBands < 1 {
		err = multierr.Append(err, fmt.Errorf("scene.%s: bands %dx%d must be at least 1", name, b.LatitudeBands, b.LongitudeBands))
	}
	return err
}
