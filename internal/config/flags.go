package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPoints     = flag.String("points", "", "Control point file")
	flagResolution = flag.Int("resolution", 0, "Samples per curve segment")
	flagRadius     = flag.Float64("radius", 0, "Tube radius")
	flagSegments   = flag.Int("segments", 0, "Tube segments per ring")
	flagSpeed      = flag.Int("speed", 0, "Vehicle speed in points per tick")
	flagLaps       = flag.Int("laps", -1, "Laps to drive (0 = until interrupted)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPoints != "" {
		cfg.Track.ControlPoints = *flagPoints
	}
	if *flagResolution > 0 {
		cfg.Curve.Resolution = *flagResolution
	}
	if *flagRadius > 0 {
		cfg.Tube.Radius = float32(*flagRadius)
	}
	if *flagSegments > 0 {
		cfg.Tube.Segments = *flagSegments
	}
	if *flagSpeed > 0 {
		cfg.Follower.Speed = *flagSpeed
	}
	if *flagLaps >= 0 {
		cfg.Follower.Laps = *flagLaps
	}
}
