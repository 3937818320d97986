// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/bech32util/bech32"
	"github.com/btcsuite/bech32util/internal/version"
	"github.com/btcsuite/bech32util/segwit"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"
)

// readInput returns the raw input given as the positional argument, read from
// the input file or, when neither is set, read from stdin.
func readInput(cfg *config, stdin io.Reader) ([]byte, error) {
	switch {
	case cfg.input != nil:
		return []byte(*cfg.input), nil

	case cfg.InFile != "":
		in, err := os.ReadFile(cfg.InFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return in, nil
	}

	in, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return in, nil
}

// isUpperHRP reports whether the human-readable part has letters and all of
// them are uppercase.
func isUpperHRP(hrp string) bool {
	return strings.ToUpper(hrp) == hrp && strings.ToLower(hrp) != hrp
}

// caseLike returns s uppercased when the hrp it was encoded with is
// uppercase.  The library always encodes in lowercase.
func caseLike(hrp, s string) string {
	if isUpperHRP(hrp) {
		return strings.ToUpper(s)
	}
	return s
}

// encodePayload encodes the input payload as a bech32 string.
func encodePayload(cfg *config, in []byte) ([]byte, error) {
	payload, err := cfg.inFormat.decode(in)
	if err != nil {
		return nil, err
	}
	if cfg.Base256 {
		payload, err = bech32.ConvertBits(payload, 8, 5, true)
		if err != nil {
			return nil, fmt.Errorf("failed to regroup payload: %w", err)
		}
	}
	log.Tracef("Payload values: %v", newLogClosure(func() string {
		return spew.Sdump(payload)
	}))

	encoded, err := bech32.EncodeWithVersion(cfg.HRP, payload, cfg.version)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	log.Debugf("Encoded %d values with hrp %q as %v", len(payload),
		cfg.HRP, cfg.version)

	return []byte(caseLike(cfg.HRP, encoded) + "\n"), nil
}

// decodePayload decodes the input bech32 string into its human-readable part
// and payload.
func decodePayload(cfg *config, in []byte) ([]byte, error) {
	s := strings.TrimSpace(string(in))

	var (
		hrp     string
		data    []byte
		bechVer = cfg.version
		err     error
	)
	if cfg.anyVer {
		hrp, data, bechVer, err = bech32.DecodeWithVersion(s)
	} else {
		hrp, data, err = bech32.DecodeVersion(s, cfg.version)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", s, err)
	}
	log.Debugf("Decoded %d values with hrp %q as %v", len(data), hrp,
		bechVer)

	if cfg.Base256 {
		data, err = bech32.ConvertBits(data, 5, 8, false)
		if err != nil {
			return nil, fmt.Errorf("failed to regroup payload: %w", err)
		}
	}
	log.Tracef("Payload: %v", newLogClosure(func() string {
		return spew.Sdump(data)
	}))

	var b bytes.Buffer
	b.WriteString(hrp)
	b.WriteByte('\n')
	b.Write(cfg.outFormat.encode(data))
	return b.Bytes(), nil
}

// encodeSegwit encodes the input witness program as a segwit address.
func encodeSegwit(cfg *config, in []byte) ([]byte, error) {
	program, err := cfg.inFormat.decode(in)
	if err != nil {
		return nil, err
	}

	addr, err := segwit.Encode(cfg.HRP, cfg.WitnessVersion, program)
	if err != nil {
		return nil, fmt.Errorf("failed to encode witness program: %w", err)
	}
	log.Debugf("Encoded %d byte version %d witness program for hrp %q",
		len(program), cfg.WitnessVersion, cfg.HRP)

	return []byte(caseLike(cfg.HRP, addr) + "\n"), nil
}

// decodeSegwit validates the input segwit address and returns its witness
// version and program.
func decodeSegwit(cfg *config, in []byte) ([]byte, error) {
	s := strings.TrimSpace(string(in))

	witnessVersion, program, err := segwit.Decode(cfg.HRP, s)
	if err != nil {
		return nil, fmt.Errorf("invalid segwit address %q: %w", s, err)
	}
	log.Debugf("Decoded version %d witness program of %d bytes",
		witnessVersion, len(program))

	var b bytes.Buffer
	fmt.Fprintf(&b, "%d\n", witnessVersion)
	b.Write(cfg.outFormat.encode(program))
	return b.Bytes(), nil
}

// writeOutput writes out to the output file or, when it is not set, to stdout.
func writeOutput(cfg *config, out []byte, stdout io.Writer) error {
	if cfg.OutFile == "" {
		_, err := stdout.Write(out)
		return err
	}

	if err := os.WriteFile(cfg.OutFile, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Infof("Wrote %d bytes to %s", len(out), cfg.OutFile)
	return nil
}

// run performs the operation selected by the config.
func run(cfg *config, stdin io.Reader, stdout io.Writer) error {
	in, err := readInput(cfg, stdin)
	if err != nil {
		return err
	}

	var out []byte
	switch {
	case cfg.Decode && cfg.Segwit:
		out, err = decodeSegwit(cfg, in)
	case cfg.Decode:
		out, err = decodePayload(cfg, in)
	case cfg.Segwit:
		out, err = encodeSegwit(cfg, in)
	default:
		out, err = encodePayload(cfg, in)
	}
	if err != nil {
		return err
	}

	return writeOutput(cfg, out, stdout)
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.String())
		return nil
	}

	// Setup logging.
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer logRotator.Close()
	}
	setLogLevel(cfg.DebugLevel)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}
