package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the optional settings loaded from a TOML file.
type Config struct {
	Load   LoadConfig   `toml:"load"`
	Export ExportConfig `toml:"export"`
	Serve  ServeConfig  `toml:"serve"`
}

// LoadConfig tunes edge-list loading.
type LoadConfig struct {
	// ProgressEvery is the number of parsed edges between progress log
	// lines. Zero keeps the default.
	ProgressEvery int `toml:"progress_every"`
}

// ExportConfig tunes subgraph export.
type ExportConfig struct {
	// CacheDir is where rendered artifacts are cached. Empty disables
	// caching.
	CacheDir string `toml:"cache_dir"`

	// CacheTTL is how long cached artifacts stay valid. Zero or negative
	// means they never expire.
	CacheTTL duration `toml:"cache_ttl"`
}

// ServeConfig tunes the HTTP server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// duration wraps time.Duration so TOML values like "24h" decode.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// defaultConfig returns the settings used when no config file is present.
func defaultConfig() Config {
	return Config{
		Load:   LoadConfig{ProgressEvery: 1_000_000},
		Export: ExportConfig{CacheDir: defaultCacheDir(), CacheTTL: duration(24 * time.Hour)},
		Serve:  ServeConfig{Addr: "localhost:8080"},
	}
}

// defaultCacheDir resolves the artifact cache location under the user
// cache directory, falling back to a temp path when unavailable.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "neurograph")
	}
	return filepath.Join(base, "neurograph")
}

// loadConfig reads path and merges it over the defaults. A missing file
// is not an error; a malformed one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var loaded Config
	if _, err := toml.DecodeFile(path, &loaded); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if loaded.Load.ProgressEvery > 0 {
		cfg.Load.ProgressEvery = loaded.Load.ProgressEvery
	}
	if loaded.Export.CacheDir != "" {
		cfg.Export.CacheDir = loaded.Export.CacheDir
	}
	if loaded.Export.CacheTTL != 0 {
		cfg.Export.CacheTTL = loaded.Export.CacheTTL
	}
	if loaded.Serve.Addr != "" {
		cfg.Serve.Addr = loaded.Serve.Addr
	}
	return cfg, nil
}
