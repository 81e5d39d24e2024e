package cli

import (
	"fmt"

	"parish-match/internal/config"
	"parish-match/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	appName = "parish-match"
)

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "parish-match ranks jobs and citizens by parish and skill overlap",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	mustBind("debug", "LOG_DEBUG")
	mustBind("json", "LOG_JSON")
}

func mustBind(key, env string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
		panic(fmt.Sprintf("binding --%s: %v", key, err))
	}
	if err := viper.BindEnv(key, env); err != nil {
		panic(fmt.Sprintf("binding %s: %v", env, err))
	}
}

// loadConfig reads the environment and lets the logging flags override it.
func loadConfig() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if viper.IsSet("json") {
		cfg.Log.JSON = viper.GetBool("json")
	}
	if viper.IsSet("debug") {
		cfg.Log.Debug = viper.GetBool("debug")
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("creating a logger: %w", err)
	}
	return cfg, log.With(zap.String("env", cfg.App.Environment)), nil
}
