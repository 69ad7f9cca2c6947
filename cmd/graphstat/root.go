package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/simplegraph/core"
	"github.com/katalvlaran/simplegraph/loader"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// settings are the global options after flags, GRAPHSTAT_* environment
// variables and the optional config file have been merged.
type settings struct {
	Directed   bool   `mapstructure:"directed"`
	Format     string `mapstructure:"format"`
	Verbose    bool   `mapstructure:"verbose"`
	LogFile    string `mapstructure:"log_file"`
	MaxLogSize int    `mapstructure:"max_log_size"` // megabytes
	MaxLogAge  int    `mapstructure:"max_log_age"`  // days
}

// app carries state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     settings
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "graphstat",
		Short: "Inspect graphs stored in the text or YAML snapshot format",
		Long: `graphstat loads a graph file and reports on it.

Files ending in .yaml or .yml are read as snapshots; anything else is read
in the line format with #V / #E section markers. "-" reads stdin.

Global options can also be set through GRAPHSTAT_DIRECTED, GRAPHSTAT_FORMAT,
GRAPHSTAT_VERBOSE and GRAPHSTAT_LOG_FILE, or a config file passed with
--config. The config file may also set max_log_size (MB) and max_log_age
(days) for the rotating log file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.Bool("directed", false, "treat text input as a directed graph")
	pf.StringP("format", "f", formatText, "output format (text|yaml)")
	pf.BoolP("verbose", "v", false, "log graph operations to stderr")
	pf.String("log-file", "", "with --verbose, write logs to this rotating file instead of stderr")
	for key, name := range map[string]string{
		"directed": "directed",
		"format":   "format",
		"verbose":  "verbose",
		"log_file": "log-file",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind %s flag: %v", name, err))
		}
	}
	a.v.SetDefault("max_log_size", 10)
	a.v.SetDefault("max_log_age", 7)

	root.AddCommand(
		newSummaryCmd(a),
		newPathCmd(a),
		newDiameterCmd(a),
		newComponentsCmd(a),
		newBetweennessCmd(a),
		newCliquesCmd(a),
		newExportCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup merges configuration sources and builds the logger.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix("GRAPHSTAT")
	a.v.AutomaticEnv()
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	a.cfg.Format = strings.ToLower(a.cfg.Format)
	if a.cfg.Format != formatText && a.cfg.Format != formatYAML {
		return fmt.Errorf("unknown format %q (want text or yaml)", a.cfg.Format)
	}

	if a.cfg.Verbose {
		l, err := a.cfg.logger()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		a.log = l.Named("graphstat")
	}

	return nil
}

// logger builds a development logger on stderr, or on a size-rotated file
// when LogFile is set.
func (s settings) logger() (*zap.Logger, error) {
	if s.LogFile == "" {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.OutputPaths = []string{"stderr"}
		return zcfg.Build()
	}
	sink := &lumberjack.Logger{
		Filename: s.LogFile,
		MaxSize:  s.MaxLogSize,
		MaxAge:   s.MaxLogAge,
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(sink), zap.DebugLevel)), nil
}

// loadGraph reads path ("-" for the command's stdin) into a new graph.
func (a *app) loadGraph(cmd *cobra.Command, path string) (*core.Graph[string], error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		snap, err := loader.DecodeSnapshot(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if a.cfg.Directed {
			snap.Directed = true
		}
		g, err := core.FromSnapshot(snap, core.WithLogger(a.log))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	}

	g := core.NewGraph[string](core.WithDirected(a.cfg.Directed), core.WithLogger(a.log))
	if err := loader.Load(r, g); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("graph loaded",
		zap.String("path", path),
		zap.Int("vertices", g.Order()),
		zap.Int("edges", g.Size()))

	return g, nil
}
