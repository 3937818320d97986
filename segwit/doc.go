// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package segwit implements the segregated witness address format of BIP-173
and BIP-350 on top of package bech32.

A segwit address carries a witness version between 0 and 16 followed by a
witness program of 2 to 40 bytes.  Version 0 programs must be 20 or 32 bytes
long and are checksummed with bech32, while every later version is checksummed
with bech32m.  Decode and Encode enforce these rules, and the Address type
wraps a validated address for a given human-readable part.
*/
package segwit
