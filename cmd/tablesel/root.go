package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsawler/tablesel"
)

const envPrefix = "tablesel"

// app holds the configuration shared by every subcommand.
type app struct {
	v      *viper.Viper
	logger *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: logrus.New()}

	root := &cobra.Command{
		Use:           "tablesel",
		Short:         "Select and edit cells of HTML tables",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default ./tablesel.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("readonly", false, "open the editor in read-only mode")
	flags.Int("matrix-cache", 0, "number of logical matrices to cache, 0 disables the cache")

	root.AddCommand(
		a.newSelectCommand(),
		a.newExecCommand(),
		a.newMatrixCommand(),
	)
	return root
}

// init loads the configuration of cmd from its flags, the environment and
// the config file, in that order of precedence, and sets up logging.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	configFile := a.v.GetString("config")
	if configFile != "" {
		a.v.SetConfigFile(configFile)
	} else {
		a.v.SetConfigName("tablesel")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.logger.SetLevel(level)
	a.logger.SetOutput(cmd.ErrOrStderr())

	switch format := a.v.GetString("log-format"); format {
	case "json":
		a.logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// session opens filename with the configured options.
func (a *app) session(filename string) *tablesel.Session {
	s := tablesel.Open(filename).Logger(a.logger)
	if a.v.GetBool("readonly") {
		s = s.ReadOnly()
	}
	if n := a.v.GetInt("matrix-cache"); n > 0 {
		s = s.MatrixCache(n)
	}
	return s
}

// addGestureFlags adds the flags describing a drag.
func addGestureFlags(flags *pflag.FlagSet) {
	flags.Int("table", 0, "index of the table in document order")
	flags.String("from", "0,0", "logical row,column the drag starts at")
	flags.String("to", "", "logical row,column the drag ends at (default: --from)")
}

// gesture reads the drag flags.
func gesture(flags *pflag.FlagSet) (table int, from, to string, err error) {
	if table, err = flags.GetInt("table"); err != nil {
		return 0, "", "", err
	}
	if from, err = flags.GetString("from"); err != nil {
		return 0, "", "", err
	}
	if to, err = flags.GetString("to"); err != nil {
		return 0, "", "", err
	}
	if to == "" {
		to = from
	}
	return table, from, to, nil
}
