// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
	"github.com/magic53/go-chainparams/blockfile"
	"github.com/magic53/go-chainparams/chaincfg"
	"github.com/sirupsen/logrus"
)

const defaultLogFilename = "chainparams.log"

var (
	// backendLog is the logger every subsystem entry is created from.
	backendLog = logrus.New()

	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	mainLog = backendLog.WithField("subsystem", "MAIN")
	chcfLog = backendLog.WithField("subsystem", "CHCF")
	blkfLog = backendLog.WithField("subsystem", "BLKF")
)

func init() {
	backendLog.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	chaincfg.UseLogger(chcfLog)
	blockfile.UseLogger(blkfLog)
}

// initLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  Log output goes to stderr as well.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logRotator = r
	backendLog.SetOutput(io.MultiWriter(os.Stderr, r))
	return nil
}
