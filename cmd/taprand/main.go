package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/taprand/internal/config"
	"github.com/lox/taprand/internal/draw"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config   string           `short:"c" default:"taprand.hcl" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	NoColor  bool             `help:"Disable colored output"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`

	out io.Writer
	cfg *config.Config
	log *log.Logger
}

type CLI struct {
	Globals

	Draw    DrawCmd    `cmd:"" help:"Print values drawn from a seeded generator"`
	Shuffle ShuffleCmd `cmd:"" help:"Shuffle the given items"`
	Stats   StatsCmd   `cmd:"" help:"Summarize a sample and run a chi-square goodness-of-fit test"`
	Bench   BenchCmd   `cmd:"" help:"Draw concurrently from many goroutines and report throughput"`
	Serve   ServeCmd   `cmd:"" help:"Stream draws over WebSocket"`
	Fetch   FetchCmd   `cmd:"" help:"Read a stream of draws from a running server"`
	Seed    SeedCmd    `cmd:"" help:"Print a seed read from operating system entropy"`
}

func main() {
	var cli CLI
	cli.out = os.Stdout
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("taprand"),
		kong.Description("Deterministic lagged-Fibonacci random number generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"kinds":   kindNames(),
		},
		kong.Bind(&cli.Globals),
	}, options...)
	return kong.New(cli, options...)
}

// load reads the configuration file, applies global overrides and sets up
// logging and terminal styling. Commands call it before doing any work.
func (g *Globals) load() error {
	if g.out == nil {
		g.out = os.Stdout
	}
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.log = logger
	return nil
}

func kindNames() string {
	names := make([]string, len(draw.Kinds))
	for i, k := range draw.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
