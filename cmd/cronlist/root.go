package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xzzpig/cronlist/internal/core/config"
	"github.com/xzzpig/cronlist/internal/core/logger"
	"github.com/xzzpig/cronlist/internal/i18n"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cronlist",
	Short: "List upcoming fire times of a cron schedule",
	Long: `cronlist turns a cron expression into a bounded list of upcoming occurrences,
either the next N fire times or every fire time before an end date.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		logger.InitLogger(logger.Environment(cfg.App.Environment), logger.LogLevel(cfg.Log.Level), cfg.Log.Levels)
		logger.L().Debug("Config loaded",
			zap.String("file", viper.ConfigFileUsed()),
			zap.String("environment", cfg.App.Environment),
			zap.String("timezone", cfg.Schedule.Timezone),
		)

		if err := i18n.Init(); err != nil {
			return fmt.Errorf("failed to initialize i18n: %w", err)
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.toml)")
}
