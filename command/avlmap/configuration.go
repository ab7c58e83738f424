// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultLogDirectory  = "log"
	defaultLogFile       = "avlmap.log"
	defaultLogCount      = 10          //  number of log files retained
	defaultLogSize       = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Entry - one key/value pair to insert
type Entry struct {
	Key   int `gluamapper:"key" json:"key"`
	Value int `gluamapper:"value" json:"value"`
}

// Configuration - everything the command reads from its Lua file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	UsePool       bool                 `gluamapper:"use_pool" json:"use_pool"`
	PrintTree     bool                 `gluamapper:"print_tree" json:"print_tree"`
	Data          []Entry              `gluamapper:"data" json:"data"`
	Delete        []int                `gluamapper:"delete" json:"delete"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults applied before the configuration file is read
func defaultConfiguration(dataDirectory string) *Configuration {
	return &Configuration{
		DataDirectory: dataDirectory,
		UsePool:       false,
		PrintTree:     false,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// the built in run: insert six pairs then remove key 2
func demoConfiguration(dataDirectory string) *Configuration {
	options := defaultConfiguration(dataDirectory)
	options.PrintTree = true
	options.Data = []Entry{
		{Key: 0, Value: 0},
		{Key: 1, Value: -1},
		{Key: 2, Value: -101},
		{Key: 3, Value: 10},
		{Key: 4, Value: 10},
		{Key: 5, Value: 30},
	}
	options.Delete = []int{2}
	options.Logging.Console = true
	return options
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(defaultDataDirectory)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		options.DataDirectory = dataDirectory
	} else if !filepath.IsAbs(options.DataDirectory) {
		options.DataDirectory = filepath.Join(dataDirectory, options.DataDirectory)
	}

	if err := resolveLogDirectory(options); nil != err {
		return nil, err
	}
	return options, nil
}

// make the log directory absolute and create it if necessary
func resolveLogDirectory(options *Configuration) error {
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}
	return os.MkdirAll(options.Logging.Directory, 0700)
}
