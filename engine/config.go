// config.go holds the tunable values search and evaluation read: material
// weights and the time-management constants behind the wtime/btime budget
// formula. Defaults match the numbers spec'd for this engine; a TOML file
// can override them.
package engine

import "github.com/BurntSushi/toml"

// Config bundles the engine's tunable constants. A zero Config is not
// usable; start from DefaultConfig and override individual fields.
type Config struct {
	// Material holds the centipawn value of WP..BK; BK/WK are always 0.
	Material [12]int `toml:"material"`

	// MovesToGoDivisor is the fallback divisor applied to the remaining
	// clock when the engine isn't told how many moves remain to the next
	// time control.
	MovesToGoDivisor int `toml:"moves_to_go_divisor"`
	// MinMoveTimeMs floors the computed per-move time budget.
	MinMoveTimeMs int `toml:"min_move_time_ms"`
	// DefaultMoveTimeMs is used when go is given no positive depth and no
	// positive clock for the side to move.
	DefaultMoveTimeMs int `toml:"default_move_time_ms"`
}

// DefaultConfig returns the engine's built-in tunables: P=100, N=320,
// B=330, R=500, Q=900, K=0 for both colors, a movestogo divisor of 30, a
// 10ms floor and a 1000ms default move time.
func DefaultConfig() Config {
	return Config{
		Material: [12]int{
			100, 320, 330, 500, 900, 0,
			100, 320, 330, 500, 900, 0,
		},
		MovesToGoDivisor:  30,
		MinMoveTimeMs:     10,
		DefaultMoveTimeMs: 1000,
	}
}

// LoadConfig reads a TOML file and overlays it on top of DefaultConfig;
// fields absent from the file keep their default value. A missing or
// malformed file is returned as an error; callers typically fall back to
// DefaultConfig() on failure rather than refusing to start.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
