// Copyright 2016 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nxgtw/go-gstack"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gstackdemo",
	Short: "Runs a push/peek/pop scenario on a fixed size stack",
	Long: `Gstackdemo initializes a stack of one-byte elements over a caller-owned
container, pushes a value, peeks and pops it, and reports the stack state.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(configFromViper(), cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr()))
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if errors.Cause(err) == gstack.ErrInit {
		fmt.Fprintln(stderr, "Error at initialisation, check input data")
	}
	logger := newLogger(stderr)
	logger.Error().Err(err).Msg("demo failed")
	return 1
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gstackdemo.yaml)")
	flags.Int("capacity", 5, "maximum number of elements")
	flags.Int("buffer-size", 0, "container size in bytes (default: capacity)")
	flags.Uint8("value", 10, "value to push")
	flags.Bool("upward", false, "grow the stack upward")
	flags.Bool("debug", false, "zero the container on init and after pop")
	flags.String("region-file", "", "place the container in a memory mapped file")
	flags.BoolP("verbose", "v", false, "prints additional log information")
	for _, name := range []string{"capacity", "buffer-size", "value", "upward", "debug", "region-file", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gstackdemo")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.SetEnvPrefix("GSTACK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger := newLogger(rootCmd.ErrOrStderr())
		logger.Info().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

func configFromViper() Config {
	return Config{
		Capacity:   viper.GetInt("capacity"),
		BufferSize: viper.GetInt("buffer-size"),
		Value:      uint8(viper.GetUint("value")),
		Upward:     viper.GetBool("upward"),
		Debug:      viper.GetBool("debug"),
		RegionFile: viper.GetString("region-file"),
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}
