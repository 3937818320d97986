// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit

import (
	"fmt"

	"github.com/btcsuite/bech32util/bech32"
)

// ErrHRPMismatch is returned when a decoded address carries a human-readable
// part other than the one expected for the network.
type ErrHRPMismatch struct {
	Expected string
	Actual   string
}

func (e ErrHRPMismatch) Error() string {
	return fmt.Sprintf("address hrp %q does not match expected %q",
		e.Actual, e.Expected)
}

// ErrMissingWitnessVersion is returned when an address has an empty data
// part, so not even the witness version is present.
type ErrMissingWitnessVersion struct{}

func (e ErrMissingWitnessVersion) Error() string {
	return "no witness version in address"
}

// ErrInvalidWitnessVersion is returned for witness versions above 16.
type ErrInvalidWitnessVersion byte

func (e ErrInvalidWitnessVersion) Error() string {
	return fmt.Sprintf("invalid witness version: %d", byte(e))
}

// ErrInvalidProgramLength is returned when a witness program is shorter than
// 2 or longer than 40 bytes, or when a version 0 program is neither 20 nor 32
// bytes long.
type ErrInvalidProgramLength struct {
	Version byte
	Length  int
}

func (e ErrInvalidProgramLength) Error() string {
	return fmt.Sprintf("invalid witness program length %d for witness "+
		"version %d", e.Length, e.Version)
}

// ErrVariantMismatch is returned when the checksum variant of an address does
// not match the one required by its witness version.  Version 0 requires
// bech32 and every later version requires bech32m.
type ErrVariantMismatch struct {
	WitnessVersion byte
	Version        bech32.Version
}

func (e ErrVariantMismatch) Error() string {
	return fmt.Sprintf("witness version %d address encoded as %v",
		e.WitnessVersion, e.Version)
}
