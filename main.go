package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
	"github.com/magic53/go-chainparams/blockfile"
	"github.com/magic53/go-chainparams/chaincfg"
	"github.com/magic53/go-chainparams/config"
	"gopkg.in/yaml.v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run loads the options, builds the network parameters, activates the
// requested network and prints it.
func run(args []string) error {
	opts, _, err := config.Load(args)
	if err != nil {
		return loadFailure(os.Stderr, err)
	}
	backendLog.SetLevel(opts.Level())

	// Genesis constants are checked for every network before any of them
	// can be used.
	sel, err := chaincfg.NewSelector(chaincfg.DefaultPrimitives())
	if err != nil {
		mainLog.WithError(err).Error("network parameters are corrupted")
		return err
	}
	if err = sel.SelectFromFlags(opts.TestNet, opts.RegTest); err != nil {
		mainLog.WithError(err).Error("unable to select network")
		return err
	}
	params := sel.Current()

	logFile := filepath.Join(opts.LogDir, params.Name, defaultLogFilename)
	if err = initLogRotator(logFile); err != nil {
		mainLog.WithError(err).Error("unable to initialize logging")
		return err
	}
	defer logRotator.Close()

	if opts.ConfigFile != "" {
		mainLog.WithField("file", opts.ConfigFile).Info("loaded configuration file")
	}
	mainLog.WithField("network", params.Name).WithField("datadir", params.DataDir(opts.DataDir)).Info("active network")

	if opts.VerifyBlocks {
		if err = blockfile.VerifyGenesis(opts.DataDir, params); err != nil {
			mainLog.WithError(err).Error("block files don't match the network")
			return err
		}
	}

	out, err := marshalSummary(params.Summarize(), opts.Format)
	if err != nil {
		mainLog.WithError(err).Error("unable to encode network parameters")
		return err
	}
	fmt.Println(string(out))
	return nil
}

// loadFailure reports a configuration error to w and returns the error run
// should fail with. The flags parser prints its own errors and the help
// text, so those are not repeated.
func loadFailure(w io.Writer, err error) error {
	var ferr *flags.Error
	if errors.As(err, &ferr) {
		if ferr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	fmt.Fprintln(w, err)
	return err
}

func marshalSummary(s chaincfg.Summary, format string) ([]byte, error) {
	if format == "json" {
		return json.MarshalIndent(s, "", "  ")
	}
	return yaml.Marshal(s)
}
