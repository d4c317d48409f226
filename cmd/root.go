package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/lan-address-gen/internal/address"
	"github.com/firefly-engineering/lan-address-gen/internal/errors"
	"github.com/firefly-engineering/lan-address-gen/internal/logging"
	"github.com/firefly-engineering/lan-address-gen/internal/probe"
)

var (
	verbose    bool
	jsonOutput bool

	saltFlag        string
	patternFlag     string
	pingFlag        bool
	probeFlag       string
	timeoutFlag     time.Duration
	maxAttemptsFlag int
	configFlag      string
)

var rootCmd = &cobra.Command{
	Use:   "lan-address-gen <input_string>",
	Short: "Generate a deterministic LAN address from the input string",
	Long: `lan-address-gen derives a private IPv4 address from an input string.

The same input, salt and pattern always produce the same address. With
--ping, addresses that answer a ping are skipped until a free one is found.

Pattern examples:
  192.168   - generates 192.168.x.x addresses (default)
  10        - generates 10.x.x.x addresses
  172.16    - generates 172.16.x.x addresses`,
	Example: `  lan-address-gen build-runner
  lan-address-gen build-runner --pattern 10 --ping
  LAN_ADDRESS_SALT=s3cret lan-address-gen build-runner --verbose`,
	Args: inputArg,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())
		logging.SetUserOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
	RunE: runGenerate,
}

// Execute runs the root command. SIGINT and SIGTERM cancel a running address search.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Display detailed output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")

	rootCmd.Flags().StringVar(&saltFlag, "salt", "", "Salt for the hash (overrides the LAN_ADDRESS_SALT env variable)")
	rootCmd.Flags().StringVar(&patternFlag, "pattern", address.DefaultPattern, "Address pattern to use")
	rootCmd.Flags().BoolVar(&pingFlag, "ping", false, "Check if the generated address is in use and find an available one")
	rootCmd.Flags().StringVar(&probeFlag, "probe", string(probe.MethodExec), "Probe method for --ping: exec (system ping) or icmp")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", probe.DefaultTimeout, "Wait for a reply per probed address")
	rootCmd.Flags().IntVar(&maxAttemptsFlag, "max-attempts", 0, "Give up after this many addresses in use (0 = never)")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Config file (default $XDG_CONFIG_HOME/lan-address-gen/config.toml)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// inputArg requires exactly one positional input string.
func inputArg(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0 || args[0] == "":
		return errors.MissingInput()
	case len(args) > 1:
		return errors.ValidationError("expected a single input string, got " + quoteArgs(args))
	}
	return nil
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
