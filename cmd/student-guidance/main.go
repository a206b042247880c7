// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the student-guidance CLI. It looks up
// online courses and universities by country, either from the command line
// or through the browser UI started by `serve`.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/student-guidance/internal/logger"
	"github.com/pdiddy/student-guidance/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appConfig is loaded and validated before any subcommand runs.
var appConfig types.Config

// rootCmd is the base command for the student-guidance CLI.
var rootCmd = &cobra.Command{
	Use:   "student-guidance",
	Short: "Find online courses and universities by country",
	Long: `student-guidance looks up online courses in the Coursera catalog and
universities in the Hipolabs directory, and shows the results as tables.

Use "courses" and "universities" for one-off lookups on the command line, or
"serve" to start the two-tab browser UI with CSV export of course results.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		appConfig = cfg
		logger.Init(logger.FromConfig(cfg.Log))
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Named("config").Debug().Str("file", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./student-guidance.yaml or ~/.config/student-guidance/student-guidance.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("student-guidance")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "student-guidance"))
		}
	}

	viper.SetEnvPrefix("STUDENT_GUIDANCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// setDefaults registers every config key so env overrides are picked up
// by Unmarshal even when no config file sets them.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault("http.timeout", d.HTTP.Timeout)
	v.SetDefault("http.user_agent", "student-guidance/"+version)
	v.SetDefault("courses.base_url", d.Courses.BaseURL)
	v.SetDefault("universities.base_url", d.Universities.BaseURL)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// loadConfig unmarshals v over the defaults and validates the result.
func loadConfig(v *viper.Viper) (types.Config, error) {
	setDefaults(v)
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errAdvised) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
