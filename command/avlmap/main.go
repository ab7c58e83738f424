// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--config-file=FILE]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file, or use the
	// built in data with logs in a temporary directory
	var masterConfiguration *Configuration
	if 1 == len(options["config-file"]) {
		configurationFile := options["config-file"][0]
		masterConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	} else {
		masterConfiguration = demoConfiguration(filepath.Join(os.TempDir(), filepath.Base(program)))
		if err := resolveLogDirectory(masterConfiguration); nil != err {
			exitwithstatus.Message("%s: log directory error: %s", program, err)
		}
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
		masterConfiguration.Logging.Levels = LoglevelMap{
			logger.DefaultTag: "debug",
		}
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	m, err := run(logger.New("avlmap"), masterConfiguration)
	if nil != err {
		log.Criticalf("run failed: %s", err)
		exitwithstatus.Message("%s: failed with error: %s", program, err)
	}

	for k, v := range m.All() {
		fmt.Printf("%d: %d\n", k, v)
	}
}
