// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
	Animation AnimationConfig `yaml:"animation"`
	Assets    AssetsConfig    `yaml:"assets"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the fixed projection and view.
type CameraConfig struct {
	FovY   float32    `yaml:"fov_y"` // degrees
	Near   float32    `yaml:"near"`
	Far    float32    `yaml:"far"`
	Eye    [3]float32 `yaml:"eye"`
	Center [3]float32 `yaml:"center"`
	Up     [3]float32 `yaml:"up"`

	// ModelOffset is the base model-view translation every object starts from.
	ModelOffset [3]float32 `yaml:"model_offset"`
}

// BodyConfig describes one sphere's geometry.
type BodyConfig struct {
	Radius         float32    `yaml:"radius"`
	LatitudeBands  int        `yaml:"latitude_bands"`
	LongitudeBands int        `yaml:"longitude_bands"`
	Center         [3]float32 `yaml:"center"`
}

// OrbitConfig holds the orbital rates. Angles are in degrees.
type OrbitConfig struct {
	WobblePivot    [3]float32 `yaml:"wobble_pivot"`
	WobbleRate     float64    `yaml:"wobble_rate"`
	EarthSpinRate  float64    `yaml:"earth_spin_rate"`
	Tilt           float64    `yaml:"tilt"`
	RevolutionRate float64    `yaml:"revolution_rate"`
	MoonSpinRate   float64    `yaml:"moon_spin_rate"`
}

// SceneConfig holds the two bodies and how they move.
type SceneConfig struct {
	Earth      BodyConfig  `yaml:"earth"`
	Moon       BodyConfig  `yaml:"moon"`
	Orbit      OrbitConfig `yaml:"orbit"`
	ClearColor [4]float32  `yaml:"clear_color"`
}

// AnimationConfig holds the angular speed and starting angles.
type AnimationConfig struct {
	DegreesPerMs float64 `yaml:"degrees_per_ms"`
	EarthAngle   float64 `yaml:"earth_angle"`
	MoonAngle    float64 `yaml:"moon_angle"`
}

// AssetsConfig holds texture paths.
type AssetsConfig struct {
	EarthTexture   string `yaml:"earth_texture"`
	MoonTexture    string `yaml:"moon_texture"`
	MaxTextureSize int    `yaml:"max_texture_size"`
}

// DebugConfig holds diagnostics settings.
type DebugConfig struct {
	ShowFPS               bool   `yaml:"show_fps"`
	ScreenshotDir         string `yaml:"screenshot_dir"`
	ScreenshotAfterFrames int    `yaml:"screenshot_after_frames"` // 0 disables
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config reproducing the classic earth/moon scene.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Globe",
			Width:  1024,
			Height: 768,
			VSync:  true,
		},
		Camera: CameraConfig{
			FovY:        45,
			Near:        0.1,
			Far:         100,
			Eye:         [3]float32{0, 80, 0},
			Center:      [3]float32{0, -1, 0},
			Up:          [3]float32{0, 0, -1},
			ModelOffset: [3]float32{0, 0, -20},
		},
		Scene: SceneConfig{
			Earth: BodyConfig{
				Radius:         4,
				LatitudeBands:  30,
				LongitudeBands: 30,
			},
			Moon: BodyConfig{
				Radius:         1,
				LatitudeBands:  30,
				LongitudeBands: 30,
				Center:         [3]float32{5, -3, 0},
			},
			Orbit: OrbitConfig{
				WobblePivot:    [3]float32{0, 0, 20},
				WobbleRate:     0.8,
				EarthSpinRate:  1,
				Tilt:           30,
				RevolutionRate: 2,
				MoonSpinRate:   1,
			},
			ClearColor: [4]float32{0, 0, 0, 1},
		},
		Animation: AnimationConfig{
			DegreesPerMs: 0.05,
			EarthAngle:   0,
			MoonAngle:    180,
		},
		Assets: AssetsConfig{
			EarthTexture:   "assets/earth.jpg",
			MoonTexture:    "assets/moon.gif",
			MaxTextureSize: 4096,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
