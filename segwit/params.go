// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit

import "strings"

// Human-readable parts used for segwit addresses on the bitcoin networks.
const (
	MainNetHRP       = "bc"
	TestNetHRP       = "tb"
	SigNetHRP        = "tb"
	RegressionNetHRP = "bcrt"
	SimNetHRP        = "sb"
)

// netHRPs maps network names to the human-readable part of their segwit
// addresses.
var netHRPs = map[string]string{
	"mainnet":  MainNetHRP,
	"testnet":  TestNetHRP,
	"testnet3": TestNetHRP,
	"testnet4": TestNetHRP,
	"signet":   SigNetHRP,
	"regtest":  RegressionNetHRP,
	"simnet":   SimNetHRP,
}

// HRPForNet returns the segwit human-readable part of the named network.  The
// name is matched case insensitively.
func HRPForNet(name string) (string, bool) {
	hrp, ok := netHRPs[strings.ToLower(name)]
	return hrp, ok
}
