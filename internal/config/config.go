package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
	envutil "github.com/projectdiscovery/utils/env"

	"github.com/firefly-engineering/lan-address-gen/internal/address"
	"github.com/firefly-engineering/lan-address-gen/internal/probe"
	"github.com/firefly-engineering/lan-address-gen/internal/system"
)

const (
	AppName        = "lan-address-gen"
	ConfigFileName = "config.toml"

	// SaltEnvVar supplies the salt when --salt is not given.
	SaltEnvVar = "LAN_ADDRESS_SALT"
)

// ProbeConfig holds liveness probe settings
type ProbeConfig struct {
	Method      string        `toml:"method"`
	Timeout     time.Duration `toml:"timeout"`
	MaxAttempts int           `toml:"max_attempts"` // 0 means unbounded
}

// Config represents the settings loaded from config.toml
type Config struct {
	Salt    string      `toml:"salt"`
	Pattern string      `toml:"pattern"`
	Probe   ProbeConfig `toml:"probe"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pattern: address.DefaultPattern,
		Probe: ProbeConfig{
			Method:  string(probe.MethodExec),
			Timeout: probe.DefaultTimeout,
		},
	}
}

// Validate checks probe settings. The pattern is checked when an address
// is generated, so a bad pattern surfaces as an invalid ip pattern error.
func (c *Config) Validate() error {
	if _, err := probe.ParseMethod(c.Probe.Method); err != nil {
		return err
	}

	if c.Probe.Timeout < 0 {
		return fmt.Errorf("probe timeout cannot be negative: %s", c.Probe.Timeout)
	}

	if c.Probe.MaxAttempts < 0 {
		return fmt.Errorf("probe max_attempts cannot be negative: %d", c.Probe.MaxAttempts)
	}

	return nil
}

// ApplyEnv overrides the salt with LAN_ADDRESS_SALT when it is set.
func (c *Config) ApplyEnv() {
	c.Salt = envutil.GetEnvOrDefault(SaltEnvVar, c.Salt)
}

// ProbeMethod returns the validated probe method.
func (c *Config) ProbeMethod() probe.Method {
	m, err := probe.ParseMethod(c.Probe.Method)
	if err != nil {
		return probe.MethodExec
	}
	return m
}

// DefaultPath returns <user config dir>/lan-address-gen/config.toml.
func DefaultPath(fsys system.FileSystem) (string, error) {
	dir, err := fsys.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}

	path, err := securejoin.SecureJoin(dir, filepath.Join(AppName, ConfigFileName))
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}

	return path, nil
}

// Load reads the config file at path on top of Default. A missing file is an error.
func Load(fsys system.FileSystem, path string) (*Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDefault loads the config file from DefaultPath, falling back to
// Default when there is no such file.
func LoadDefault(fsys system.FileSystem) (*Config, error) {
	path, err := DefaultPath(fsys)
	if err != nil {
		// No config directory means no config file.
		return Default(), nil
	}

	if !fsys.Exists(path) {
		return Default(), nil
	}

	cfg, err := Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		// Removed between the check and the read.
		return Default(), nil
	}
	return cfg, err
}
