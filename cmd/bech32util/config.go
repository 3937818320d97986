// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/bech32util/bech32"
	"github.com/btcsuite/bech32util/segwit"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultInFormat   = "base64"
	defaultOutFormat  = "base64"
	defaultDebugLevel = "info"

	// variantAny accepts either checksum when decoding.
	variantAny = "any"
)

// config defines the configuration options for bech32util.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Encode         bool   `short:"e" long:"encode" description:"Encode the input as a bech32 string (default)"`
	Decode         bool   `short:"d" long:"decode" description:"Decode the input bech32 string"`
	Segwit         bool   `long:"segwit" description:"Treat the payload as a segwit witness program"`
	InFile         string `short:"i" long:"infile" description:"File containing the input (stdin by default)"`
	OutFile        string `short:"o" long:"outfile" description:"File to write the output to (stdout by default)"`
	InFormat       string `long:"in-format" description:"Format of the input payload when encoding {base64, hex, binary}"`
	OutFormat      string `long:"out-format" description:"Format of the output payload when decoding {base64, hex, binary}"`
	HRP            string `long:"hrp" description:"Human-readable part to encode with, or to expect when decoding a segwit address"`
	Net            string `long:"net" description:"Use the segwit human-readable part of a network {mainnet, testnet, signet, regtest, simnet}"`
	Variant        string `long:"variant" description:"Checksum variant {bech32, bech32m, any} -- any is only valid when decoding"`
	Base256        bool   `long:"base256" description:"Regroup 8-bit payload bytes to 5-bit values when encoding and back when decoding"`
	WitnessVersion uint8  `long:"witver" description:"Witness version to encode with --segwit {0-16}"`
	DebugLevel     string `long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile        string `long:"logfile" description:"Also write log output to this file"`
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`

	// Parsed forms of the string options above.
	inFormat  format
	outFormat format
	version   bech32.Version
	anyVer    bool
	input     *string
}

// loadConfig initializes and parses the config using the passed command line
// options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options
//  3. Resolve and validate the formats, variant, network and human-readable
//     part
//
// Errors are reported on stderr together with the usage message.
func loadConfig(args []string) (*config, error) {
	// Default config.
	cfg := config{
		InFormat:   defaultInFormat,
		OutFormat:  defaultOutFormat,
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [input]"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	// Nothing else matters when only the version is requested.
	if cfg.ShowVersion {
		return &cfg, nil
	}

	// usageErr prints the error along with the usage message.
	usageErr := func(str string, a ...interface{}) error {
		err := fmt.Errorf("loadConfig: "+str, a...)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return err
	}

	// Encoding and decoding can't be selected simultaneously.
	if cfg.Encode && cfg.Decode {
		return nil, usageErr("the encode and decode modes can't be used " +
			"together -- choose one of the two")
	}

	// At most one input may be given on the command line, and it can't be
	// combined with an input file.
	switch {
	case len(remainingArgs) > 1:
		return nil, usageErr("too many arguments %q -- only a single "+
			"input is accepted", remainingArgs)

	case len(remainingArgs) == 1 && cfg.InFile != "":
		return nil, usageErr("an input argument can't be used together " +
			"with --infile")

	case len(remainingArgs) == 1:
		cfg.input = &remainingArgs[0]
	}

	if cfg.inFormat, err = parseFormat(cfg.InFormat); err != nil {
		return nil, usageErr("--in-format: %v", err)
	}
	if cfg.outFormat, err = parseFormat(cfg.OutFormat); err != nil {
		return nil, usageErr("--out-format: %v", err)
	}

	// Validate debug log level.
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		return nil, usageErr("the specified debug level [%v] is invalid",
			cfg.DebugLevel)
	}

	// Encoding defaults to bech32m while decoding accepts either variant.
	if cfg.Variant == "" {
		cfg.Variant = bech32.VersionM.String()
		if cfg.Decode {
			cfg.Variant = variantAny
		}
	}
	if strings.EqualFold(cfg.Variant, variantAny) {
		if !cfg.Decode {
			return nil, usageErr("the variant %q is only valid when "+
				"decoding", variantAny)
		}
		cfg.anyVer = true
	} else {
		version, ok := bech32.ParseVersion(cfg.Variant)
		if !ok {
			return nil, usageErr("the specified variant [%v] is "+
				"invalid", cfg.Variant)
		}
		cfg.version = version
	}

	// The human-readable part may be given directly or through a network.
	if cfg.HRP != "" && cfg.Net != "" {
		return nil, usageErr("--hrp and --net can't be used together " +
			"-- choose one of the two")
	}
	if cfg.Net != "" {
		hrp, ok := segwit.HRPForNet(cfg.Net)
		if !ok {
			return nil, usageErr("the specified network [%v] is "+
				"unknown", cfg.Net)
		}
		cfg.HRP = hrp
	}
	if cfg.HRP == "" && (!cfg.Decode || cfg.Segwit) {
		return nil, usageErr("a human-readable part is required -- " +
			"use --hrp or --net")
	}

	if cfg.Segwit {
		if cfg.Base256 {
			return nil, usageErr("--base256 can't be used with " +
				"--segwit since witness programs are always bytes")
		}
		if cfg.WitnessVersion > segwit.MaxWitnessVersion {
			return nil, usageErr("the specified witness version "+
				"[%d] is invalid", cfg.WitnessVersion)
		}
	}

	return &cfg, nil
}
