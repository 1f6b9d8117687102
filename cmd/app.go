// Package cmd implements the CLI application to simulate portfolios under stress scenarios.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/simfolio/config"
	"github.com/etnz/simfolio/market"
	"github.com/etnz/simfolio/session"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands, for registration and completion.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&metricsCmd{},
	&strategiesCmd{},
	&assetsCmd{},
	&serveCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", os.Getenv("SIMFOLIO_CONFIG"), "Path to the YAML configuration file. Defaults to the built-in configuration.")
var Verbose = flag.Bool("v", false, "Print debug logs.")

// newLogger returns the console logger of the application.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

// loadConfig loads the configuration selected by the -config flag.
func loadConfig() (*config.Config, error) {
	return config.LoadAndValidate(*configFile)
}

// openSession opens the market data provider and the session described by cfg.
func openSession(cfg *config.Config, log zerolog.Logger) (*session.Session, error) {
	u, err := cfg.AssetUniverse()
	if err != nil {
		return nil, err
	}
	provider, err := market.Open(cfg.MarketOptions(), log)
	if err != nil {
		return nil, err
	}
	runs, err := session.NewRuns(cfg.Session.MaxRuns)
	if err != nil {
		return nil, err
	}
	return session.New(u, session.NewDatasets(provider, log), runs, log), nil
}

// printMarkdown renders md in the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// setup loads the configuration and builds the logger, it reports errors on stderr.
func setup() (*config.Config, zerolog.Logger, bool) {
	log := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration %q: %v\n", *configFile, err)
		return nil, log, false
	}
	return cfg, log, true
}
