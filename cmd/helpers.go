package cmd

import (
	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/lan-address-gen/internal/config"
	"github.com/firefly-engineering/lan-address-gen/internal/errors"
	"github.com/firefly-engineering/lan-address-gen/internal/system"
)

// loadConfig reads the config file and layers flags and environment on top:
// explicit flags win, then LAN_ADDRESS_SALT (salt only), then the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fsys := system.DefaultFS()

	var (
		cfg *config.Config
		err error
	)
	if configFlag != "" {
		cfg, err = config.Load(fsys, configFlag)
	} else {
		cfg, err = config.LoadDefault(fsys)
	}
	if err != nil {
		return nil, errors.ConfigError("failed to load config", err)
	}

	flags := cmd.Flags()

	if flags.Changed("salt") {
		cfg.Salt = saltFlag
	} else {
		cfg.ApplyEnv()
	}
	if flags.Changed("pattern") {
		cfg.Pattern = patternFlag
	}
	if flags.Changed("probe") {
		cfg.Probe.Method = probeFlag
	}
	if flags.Changed("timeout") {
		cfg.Probe.Timeout = timeoutFlag
	}
	if flags.Changed("max-attempts") {
		cfg.Probe.MaxAttempts = maxAttemptsFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("invalid settings", err)
	}

	return cfg, nil
}

// quoteArgs renders args the way a shell would need them typed.
func quoteArgs(args []string) string {
	return shellquote.Join(args...)
}
