// Package config loads and saves the nescart configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"nescart/hw/input"
	"nescart/log"
)

type LogConfig struct {
	// Modules for which debug logs are enabled, "all" for all of them.
	Modules []string `toml:"modules"`
}

type CheckConfig struct {
	// Jobs is the number of images checked concurrently, 0 means one per
	// CPU.
	Jobs int `toml:"jobs"`
}

type Config struct {
	Log   LogConfig    `toml:"log"`
	Check CheckConfig  `toml:"check"`
	Input input.Config `toml:"input"`
}

const DefaultFileMode = os.FileMode(0755)

var ConfigDir = sync.OnceValue(func() string {
	cfgdir, err := os.UserConfigDir()
	if err != nil {
		log.ModEmu.Fatalf("failed to get user config directory: %v", err)
	}

	dir := filepath.Join(cfgdir, "nescart")
	if err := os.MkdirAll(dir, DefaultFileMode); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})

const cfgFilename = "config.toml"

// DefaultPath returns the path of the configuration file in the user config
// directory.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), cfgFilename)
}

func Default() Config {
	return Config{
		Input: input.DefaultConfig(),
	}
}

// Load reads the configuration at path. Missing keys keep their default
// value, unknown keys are reported as errors.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: unknown configuration keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the configuration from the nescart config
// directory, or provide a default one.
func LoadConfigOrDefault() Config {
	cfg, err := Load(DefaultPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.ModEmu.Warnf("using default configuration: %v", err)
		}
		return Default()
	}
	return cfg
}

// SaveConfig writes cfg at path.
func SaveConfig(cfg Config, path string) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

func (cfg *Config) Validate() error {
	if cfg.Check.Jobs < 0 {
		return fmt.Errorf("check.jobs must be positive, got %d", cfg.Check.Jobs)
	}
	for _, name := range cfg.Log.Modules {
		if name == "all" {
			continue
		}
		if _, ok := log.ModuleByName(name); !ok {
			return fmt.Errorf("unknown log module %q", name)
		}
	}
	return cfg.Input.Validate()
}

// ApplyLog enables debug logs for the configured modules.
func (cfg *Config) ApplyLog() {
	var mask log.ModuleMask
	for _, name := range cfg.Log.Modules {
		if name == "all" {
			mask = log.ModuleMaskAll
			break
		}
		if mod, ok := log.ModuleByName(name); ok {
			mask |= mod.Mask()
		}
	}
	log.EnableDebugModules(mask)
}

// Jobs returns the number of concurrent checks to run.
func (cfg *Config) Jobs() int {
	if cfg.Check.Jobs == 0 {
		return runtime.NumCPU()
	}
	return cfg.Check.Jobs
}
