// Package config loads the node parameter options from the command line and
// an optional yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	defaultConfigFilename = "config.yml"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
	defaultFormat         = "yaml"
)

var (
	// DefaultHomeDir is the data directory used when none is configured.
	DefaultHomeDir = btcutil.AppDataDir("bloodcoin", false)

	knownFormats = []string{"yaml", "json"}
)

// Config describes the configuration file format.
type Config struct {
	TestNet  bool   `yaml:"testnet"`
	RegTest  bool   `yaml:"regtest"`
	DataDir  string `yaml:"datadir"`
	LogDir   string `yaml:"logdir"`
	LogLevel string `yaml:"loglevel"`
	Format   string `yaml:"format"`
}

// Flags defines the command line options.
type Flags struct {
	ConfigFile   string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir      string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir       string `long:"logdir" description:"Directory to log output"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, fatal}"`
	TestNet      bool   `long:"testnet" description:"Use the test network"`
	RegTest      bool   `long:"regtest" description:"Use the regression test network"`
	Format       string `long:"format" description:"Output format of the network parameters {yaml, json}"`
	VerifyBlocks bool   `long:"verifyblocks" description:"Check that the stored block files start with the network genesis block"`
}

// Options is the merged result of flags and configuration file.
type Options struct {
	Config
	ConfigFile   string
	VerifyBlocks bool
}

// Level returns the parsed log level.
func (o *Options) Level() logrus.Level {
	// Validated by Load.
	level, _ := logrus.ParseLevel(o.LogLevel)
	return level
}

// Load parses args, reads the configuration file and merges both. Strings
// set on the command line win over the file. A network switch is requested
// when either source sets it; resolving conflicting switches is left to the
// network selector.
func Load(args []string) (*Options, []string, error) {
	var f Flags
	parser := flags.NewParser(&f, flags.Default)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	opts := &Options{
		ConfigFile:   f.ConfigFile,
		VerifyBlocks: f.VerifyBlocks,
	}

	configFile := f.ConfigFile
	explicit := configFile != ""
	if !explicit {
		base := f.DataDir
		if base == "" {
			base = DefaultHomeDir
		}
		configFile = filepath.Join(base, defaultConfigFilename)
	}
	fileCfg, err := ReadFile(configFile)
	switch {
	case err == nil:
		opts.Config = *fileCfg
		opts.ConfigFile = configFile
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, nil, err
	}

	opts.TestNet = opts.TestNet || f.TestNet
	opts.RegTest = opts.RegTest || f.RegTest
	opts.DataDir = pick(f.DataDir, opts.DataDir, DefaultHomeDir)
	opts.LogDir = pick(f.LogDir, opts.LogDir, filepath.Join(opts.DataDir, defaultLogDirname))
	opts.LogLevel = pick(f.DebugLevel, opts.LogLevel, defaultLogLevel)
	opts.Format = strings.ToLower(pick(f.Format, opts.Format, defaultFormat))
	opts.DataDir = cleanAndExpandPath(opts.DataDir)
	opts.LogDir = cleanAndExpandPath(opts.LogDir)

	if _, err = logrus.ParseLevel(opts.LogLevel); err != nil {
		return nil, nil, fmt.Errorf("invalid debuglevel: %w", err)
	}
	if !validFormat(opts.Format) {
		return nil, nil, fmt.Errorf("invalid format %q, must be one of %v", opts.Format, knownFormats)
	}
	return opts, remaining, nil
}

// ReadFile reads a yaml configuration file.
func ReadFile(path string) (*Config, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var config Config
	if err = yaml.Unmarshal(b, &config); err != nil {
		return nil, fmt.Errorf("failed to read config file, bad format: %w", err)
	}
	return &config, nil
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func validFormat(format string) bool {
	for _, f := range knownFormats {
		if f == format {
			return true
		}
	}
	return false
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultHomeDir)
		if h, err := os.UserHomeDir(); err == nil {
			homeDir = h
		}
		path = strings.Replace(path, "~", homeDir, 1)
	}
	return filepath.Clean(os.ExpandEnv(path))
}
