// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides a Go implementation of the bech32 format specified in
BIP 173 and its bech32m variant specified in BIP 350.

Bech32 strings consist of a human-readable part (hrp), followed by the
separator 1, then a checksummed data part encoded using the 32 characters
"qpzry9x8gf2tvdw0s3jn54khce6mua7l".

The data part is handled as 5-bit values.  ConvertBits regroups 8-bit data
into 5-bit groups and back, and EncodeFromBase256 and DecodeToBase256 wrap the
common case.

The two variants differ only by the constant the checksum is XORed with.
Encode and EncodeM select the variant when encoding.  Decode accepts either,
DecodeWithVersion reports which one matched and DecodeVersion insists on one.

More info: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
*/
package bech32
