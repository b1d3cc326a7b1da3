package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/globe/internal/config"
	"github.com/Faultbox/globe/internal/engine/camera"
	"github.com/Faultbox/globe/internal/engine/mesh"
	"github.com/Faultbox/globe/internal/engine/scene"
	"github.com/Faultbox/globe/internal/engine/texture"
)

// Texture request names.
const (
	earthName = "earth"
	moonName  = "moon"
)

func sphereParams(b config.BodyConfig) mesh.SphereParams {
	return mesh.SphereParams{
		LatitudeBands:  b.LatitudeBands,
		LongitudeBands: b.LongitudeBands,
		Radius:         b.Radius,
		Center:         b.Center,
	}
}

// orbitParams places the moon's orbit around the moon mesh's own center, so
// the spin keeps it in place.
func orbitParams(sc config.SceneConfig) scene.OrbitParams {
	o := sc.Orbit
	return scene.OrbitParams{
		WobblePivot:    mgl32.Vec3(o.WobblePivot),
		WobbleRate:     o.WobbleRate,
		EarthSpinRate:  o.EarthSpinRate,
		MoonOffset:     mgl32.Vec3(sc.Moon.Center),
		Tilt:           o.Tilt,
		RevolutionRate: o.RevolutionRate,
		MoonSpinRate:   o.MoonSpinRate,
	}
}

func newCamera(c config.CameraConfig) *camera.Fixed {
	return camera.NewFixed(c.FovY, c.Near, c.Far,
		mgl32.Vec3(c.Eye), mgl32.Vec3(c.Center), mgl32.Vec3(c.Up))
}

func driverConfig(cfg *config.Config, proj scene.Projector) scene.DriverConfig {
	off := cfg.Camera.ModelOffset
	return scene.DriverConfig{
		Camera:        proj,
		BaseModelView: mgl32.Translate3D(off[0], off[1], off[2]),
		DegreesPerMs:  cfg.Animation.DegreesPerMs,
		EarthAngle:    cfg.Animation.EarthAngle,
		MoonAngle:     cfg.Animation.MoonAngle,
	}
}

func textureRequests(a config.AssetsConfig) []texture.Request {
	return []texture.Request{
		{Name: earthName, Path: a.EarthTexture},
		{Name: moonName, Path: a.MoonTexture},
	}
}

type bodyHandles struct {
	mesh    scene.MeshHandle
	texture scene.TextureHandle
}

// drawables lists the bodies in draw order. Only the moon binds its normal
// buffer.
func drawables(o scene.OrbitParams, earth, moon bodyHandles) []scene.Drawable {
	return []scene.Drawable{
		{
			Name:      moonName,
			Mesh:      moon.mesh,
			Texture:   moon.texture,
			Transform: o.MoonTransform,
			Normals:   true,
		},
		{
			Name:      earthName,
			Mesh:      earth.mesh,
			Texture:   earth.texture,
			Transform: o.EarthTransform,
		},
	}
}
