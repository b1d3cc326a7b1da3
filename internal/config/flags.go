package config

import "flag"

// defaultScreenshotFrames is used when -screenshot is given without a frame count in config.
const defaultScreenshotFrames = 120

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and FPS output")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagEarth      = flag.String("earth", "", "Earth texture image")
	flagMoon       = flag.String("moon", "", "Moon texture image")
	flagScreenshot = flag.String("screenshot", "", "Save one screenshot into this directory")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
	flagInitConfig = flag.Bool("init-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the path given via --save-config, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// InitConfig reports whether --init-config was given.
func InitConfig() bool {
	return *flagInitConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagEarth != "" {
		cfg.Assets.EarthTexture = *flagEarth
	}
	if *flagMoon != "" {
		cfg.Assets.MoonTexture = *flagMoon
	}
	if *flagScreenshot != "" {
		cfg.Debug.ScreenshotDir = *flagScreenshot
		if cfg.Debug.ScreenshotAfterFrames == 0 {
			cfg.Debug.ScreenshotAfterFrames = defaultScreenshotFrames
		}
	}
}
