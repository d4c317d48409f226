package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/lan-address-gen/internal/address"
	"github.com/firefly-engineering/lan-address-gen/internal/allocate"
	"github.com/firefly-engineering/lan-address-gen/internal/app"
	"github.com/firefly-engineering/lan-address-gen/internal/errors"
	"github.com/firefly-engineering/lan-address-gen/internal/logging"
	"github.com/firefly-engineering/lan-address-gen/internal/system"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	// Arguments are valid past this point; runtime errors don't need usage.
	cmd.SilenceUsage = true

	input := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !pingFlag {
		for _, name := range []string{"probe", "timeout", "max-attempts"} {
			if cmd.Flags().Changed(name) {
				logWarning("--%s has no effect without --ping", name)
			}
		}
	}

	a := app.New(app.WithConfig(cfg), app.WithExecutor(system.DefaultExecutor()))

	if verbose {
		if cfg.Salt != "" {
			logInfo("Using salt: %s", cfg.Salt)
		}
		logInfo("Using pattern: %s", cfg.Pattern)
	}

	addr, err := a.Generate(input)
	if err != nil {
		if errors.Is(err, address.ErrInvalidPattern) {
			return errors.InvalidPattern(cfg.Pattern, err)
		}
		return err
	}
	logging.Debug("generated address", "input", input, "pattern", cfg.Pattern, "addr", addr.String())

	if verbose {
		logInfo("Generated address: %s", addr)
	}

	if pingFlag {
		addr, err = findAvailable(cmd.Context(), a, addr)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), addr)
	return nil
}

func findAvailable(ctx context.Context, a *app.App, initial address.Address) (address.Address, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var observer func(allocate.Attempt)
	if verbose {
		logInfo("Checking for an available address...")
		observer = func(at allocate.Attempt) {
			if at.Alive {
				logInfo("%s is in use", at.Address)
			}
		}
	}

	res, err := a.FindAvailable(ctx, initial, observer)
	if err != nil {
		if errors.Is(err, allocate.ErrExhausted) {
			return nil, errors.Exhausted(err)
		}
		return nil, err
	}

	if verbose {
		logSuccess("Available address found: %s", res.Address)
	}
	return res.Address, nil
}
