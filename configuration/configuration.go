// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgertx/chain"
	"github.com/bitmark-inc/ledgertx/util"
)

const (
	defaultDatabaseDirectory = "data"

	defaultLogDirectory = "log"
	defaultLogFile      = "ledgertx.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultSubmitRate    = 10
	defaultSubmitBurst   = 5
	defaultDedupExpiry   = 600  // seconds
	defaultPartialExpiry = 3600 // seconds
)

// LoglevelMap - tag to level
type LoglevelMap map[string]string

// LoggingType - log file settings
type LoggingType struct {
	Directory string      `gluamapper:"directory" json:"directory"`
	File      string      `gluamapper:"file" json:"file"`
	Size      int         `gluamapper:"size" json:"size"`
	Count     int         `gluamapper:"count" json:"count"`
	Console   bool        `gluamapper:"console" json:"console"`
	Levels    LoglevelMap `gluamapper:"levels" json:"levels"`
}

// Configuration - top level settings
type Configuration struct {
	DataDirectory string      `gluamapper:"data_directory" json:"data_directory"`
	Chain         string      `gluamapper:"chain" json:"chain"`
	Database      string      `gluamapper:"database" json:"database"`
	Connect       string      `gluamapper:"connect" json:"connect"`
	SubmitRate    float64     `gluamapper:"submit_rate" json:"submit_rate"`
	SubmitBurst   int         `gluamapper:"submit_burst" json:"submit_burst"`
	DedupExpiry   int         `gluamapper:"dedup_expiry" json:"dedup_expiry"`
	PartialExpiry int         `gluamapper:"partial_expiry" json:"partial_expiry"`
	Logging       LoggingType `gluamapper:"logging" json:"logging"`
}

// Read - parse a configuration file, apply defaults and resolve paths
//
// relative paths are taken from the data directory, and "." as the
// data directory means the directory holding the configuration file
func Read(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: ".",
		Chain:         chain.Mainnet,
		Database:      "",
		SubmitRate:    defaultSubmitRate,
		SubmitBurst:   defaultSubmitBurst,
		DedupExpiry:   defaultDedupExpiry,
		PartialExpiry: defaultPartialExpiry,

		Logging: LoggingType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	name, ok := chain.Normalise(options.Chain)
	if !ok {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}
	options.Chain = name

	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	if "" == options.Database {
		options.Database = filepath.Join(defaultDatabaseDirectory, options.Chain)
	}

	mustBeAbsolute := []*string{
		&options.Database,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	if filepath.Base(options.Logging.File) != options.Logging.File {
		return nil, fmt.Errorf("logging file: %q must be a plain file name", options.Logging.File)
	}

	if "" != options.Connect {
		connect, err := util.CanonicalIPandPort(options.Connect)
		if nil != err {
			return nil, fmt.Errorf("connect: %q: %w", options.Connect, err)
		}
		options.Connect = connect
	}

	if options.SubmitRate <= 0 || options.SubmitBurst <= 0 {
		return nil, fmt.Errorf("submit rate: %v  burst: %d must be positive", options.SubmitRate, options.SubmitBurst)
	}
	if options.DedupExpiry <= 0 || options.PartialExpiry <= 0 {
		return nil, fmt.Errorf("expiry times must be positive")
	}

	return options, nil
}

// LoggerConfiguration - settings in the form logger.Initialise expects
func (c *Configuration) LoggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: c.Logging.Directory,
		File:      c.Logging.File,
		Size:      c.Logging.Size,
		Count:     c.Logging.Count,
		Console:   c.Logging.Console,
		Levels:    c.Logging.Levels,
	}
}

// DedupWindow - how long a submitted transaction id is remembered
func (c *Configuration) DedupWindow() time.Duration {
	return time.Duration(c.DedupExpiry) * time.Second
}

// PartialWindow - how long a partial copy is kept while gathering
func (c *Configuration) PartialWindow() time.Duration {
	return time.Duration(c.PartialExpiry) * time.Second
}
