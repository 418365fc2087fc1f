package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zeusync/gravity/internal/config"
	"github.com/zeusync/gravity/internal/observability/log"
)

type app struct {
	logLevel   string
	configPath string

	logger *log.Logger
	config *config.Config
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gravity",
		Short: "Vector arithmetic and body catalog inspection",
		Long: `gravity exposes the math3d vector library on the command line and
inspects catalogs of bodies (mass, location, velocity) described in YAML.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML body catalog")

	rootCmd.AddCommand(
		newVectorCmd(a),
		newBodiesCmd(a),
		newDistancesCmd(a),
	)
	return rootCmd
}

// setup loads the config file, when given, and builds the logger.
func (a *app) setup() error {
	a.config = &config.Config{}
	if a.configPath != "" {
		c, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		a.config = c
	}

	level, err := a.level()
	if err != nil {
		return err
	}

	a.logger = log.New(level)
	a.logger.Debug("configured",
		log.String("config", a.configPath),
		log.String("level", level.String()),
		log.Int("bodies", len(a.config.Bodies)),
	)
	return nil
}

// level prefers the --log-level flag over the config file.
func (a *app) level() (log.Level, error) {
	if a.logLevel != "" {
		return log.ParseLevel(a.logLevel)
	}
	return a.config.Level()
}

// close flushes the logger, if one was built.
func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
