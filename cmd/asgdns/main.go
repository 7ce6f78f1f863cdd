package main

import (
	"context"
	"os"

	_ "github.com/kompox/asgdns/adapters/drivers/provider/aws"
	"github.com/kompox/asgdns/config/asgdnscfg"
	"github.com/kompox/asgdns/internal/logging"
	"github.com/spf13/cobra"
)

type configKey struct{}

// configFromContext returns the configuration resolved in PersistentPreRunE,
// or the defaults when none was stored.
func configFromContext(ctx context.Context) *asgdnscfg.Root {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*asgdnscfg.Root); ok && cfg != nil {
			return cfg
		}
	}
	return asgdnscfg.Default()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "asgdns",
		Short:   "Auto Scaling group DNS reconciler",
		Long:    "Keeps <group>.alteon.internal. A records in a Route 53 private zone in sync with Auto Scaling group members",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Config file path (env "+asgdnscfg.ConfigEnvKey+")")
	cmd.PersistentFlags().String("log-format", "", "Log format (human|text|json) (env "+asgdnscfg.LogFormatEnvKey+")")
	cmd.PersistentFlags().String("log-level", "", "Log level (DEBUG|INFO|WARN|ERROR) (env "+asgdnscfg.LogLevelEnvKey+")")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		path, _ := c.Flags().GetString("config")
		cfg, err := asgdnscfg.Resolve(path, os.Getenv)
		if err != nil {
			return err
		}
		// flags override file and env
		if c.Flags().Changed("log-format") {
			cfg.Logging.Format, _ = c.Flags().GetString("log-format")
		}
		if c.Flags().Changed("log-level") {
			cfg.Logging.Level, _ = c.Flags().GetString("log-level")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level, err := logging.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.Logging.Format, level)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		ctx = context.WithValue(ctx, configKey{}, cfg)
		c.SetContext(ctx)
		return nil
	}

	// Add subcommands
	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdLambda())
	cmd.AddCommand(newCmdReconcile())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
