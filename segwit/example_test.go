// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit_test

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/bech32util/segwit"
)

// This example demonstrates how to decode a segwit address.
func ExampleDecode() {
	witnessVersion, program, err := segwit.Decode(segwit.MainNetHRP,
		"bc1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqzk5jj0")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Witness version:", witnessVersion)
	fmt.Println("Witness program:", hex.EncodeToString(program))

	// Output:
	// Witness version: 1
	// Witness program: 79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798
}

// This example demonstrates how to encode a version 0 witness program.
func ExampleEncode() {
	program, _ := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	addr, err := segwit.Encode(segwit.RegressionNetHRP, 0, program)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(addr)

	// Output:
	// bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080
}

// This example demonstrates the output script of a decoded address.
func ExampleAddress_PkScript() {
	addr, err := segwit.DecodeAddress(
		"BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4", segwit.MainNetHRP)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(addr)
	fmt.Printf("%x\n", addr.PkScript())

	// Output:
	// bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4
	// 0014751e76e8199196d454941c45d1b3a323f1433bd6
}
