// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// format is a textual or raw representation of a payload on the command line
// or in a file.
type format int

const (
	formatBase64 format = iota
	formatHex
	formatBinary
)

// formatNames maps each format to its command line name.
var formatNames = map[format]string{
	formatBase64: "base64",
	formatHex:    "hex",
	formatBinary: "binary",
}

// String returns the command line name of the format.
func (f format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Unknown format (%d)", int(f))
}

// parseFormat returns the format with the given name.  Matching is case
// insensitive.
func parseFormat(name string) (format, error) {
	for f, s := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q -- supported formats are "+
		"base64, hex and binary", name)
}

// decode returns the payload represented by in.  Surrounding whitespace is
// ignored for the text formats, and a hex payload may carry a 0x prefix.
func (f format) decode(in []byte) ([]byte, error) {
	switch f {
	case formatBase64:
		s := string(bytes.TrimSpace(in))
		data, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 input: %w", err)
		}
		return data, nil

	case formatHex:
		s := string(bytes.TrimSpace(in))
		if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			s = s[2:]
		}
		data, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil

	case formatBinary:
		return append([]byte(nil), in...), nil
	}

	return nil, fmt.Errorf("unsupported input format %v", f)
}

// encode returns the representation of data in the format.  Text formats are
// terminated by a newline, binary output is the raw bytes.
func (f format) encode(data []byte) []byte {
	switch f {
	case formatBase64:
		return []byte(base64.StdEncoding.EncodeToString(data) + "\n")

	case formatHex:
		return []byte(hex.EncodeToString(data) + "\n")
	}

	return append([]byte(nil), data...)
}
