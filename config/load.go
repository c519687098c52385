// Copyright 2018-2020 The hw developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/btcsuite/btcd/txscript"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/hwallet/hw/version"
)

const (
	defaultCount     = 5
	defaultFee       = 10000
	defaultRPCServer = "127.0.0.1:18555"
)

func defaultConfig() *Config {
	return &Config{
		Count:     defaultCount,
		SigHash:   SigHashFlag(txscript.SigHashAll),
		Fee:       defaultFee,
		RPCServer: defaultRPCServer,
	}
}

// ParseArgs parses the given command line options into a Config and returns
// the remaining positional arguments (the command word and its arguments).
// Flags are applied left to right over the defaults, so a repeated option
// keeps its last value while booleans stay set once seen.
func ParseArgs(args []string) (*Config, []string, error) {
	cfg := defaultConfig()
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "[options] <command> [<args>]"
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	// The version option short-circuits before dispatch, so it must also
	// win over value validation: hw -v -c 0 still prints the version.
	if cfg.ShowVersion {
		return cfg, remaining, nil
	}
	if cfg.Count <= 0 {
		return nil, nil, errors.Errorf("count must be a positive integer: %d", cfg.Count)
	}
	if cfg.Fee < 0 {
		return nil, nil, errors.Errorf("fee must not be negative: %d", cfg.Fee)
	}
	return cfg, remaining, nil
}

// LoadConfig parses the process command line. The help and version options
// short-circuit here: both print and exit successfully without dispatching
// any command, regardless of whatever else was supplied.
func LoadConfig() (*Config, []string, error) {
	cfg, remaining, err := ParseArgs(os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		return nil, nil, err
	}

	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Printf("%s version %s (Go version %s)\n", appName, version.String(), runtime.Version())
		os.Exit(0)
	}

	return cfg, remaining, nil
}
