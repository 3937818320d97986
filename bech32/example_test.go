// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32_test

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/bech32util/bech32"
)

// This example demonstrates how to decode a bech32 encoded string.
func ExampleDecode() {
	encoded := "bc1pw508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3zarvary0c5xw7k7grplx"
	hrp, decoded, err := bech32.Decode(encoded)
	if err != nil {
		fmt.Println("Error:", err)
	}

	// Show the decoded data.
	fmt.Println("Decoded human-readable part:", hrp)
	fmt.Println("Decoded Data:", hex.EncodeToString(decoded))

	// Output:
	// Decoded human-readable part: bc
	// Decoded Data: 010e140f070d1a001912060b0d081504140311021d030c1d03040f1814060e1e160e140f070d1a001912060b0d081504140311021d030c1d03040f1814060e1e16
}

// This example demonstrates how to encode data into a bech32 string.
func ExampleEncode() {
	data := []byte("Test data")
	// Convert test data to base32:
	conv, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		fmt.Println("Error:", err)
	}
	encoded, err := bech32.Encode("customhrp!11111q", conv)
	if err != nil {
		fmt.Println("Error:", err)
	}

	// Show the encoded data.
	fmt.Println("Encoded Data:", encoded)

	// Output:
	// Encoded Data: customhrp!11111q123jhxapqv3shgcgkxpuhe
}

// This example demonstrates how to encode data into a bech32m string.
func ExampleEncodeM() {
	conv, err := bech32.ConvertBits([]byte("Test data"), 8, 5, true)
	if err != nil {
		fmt.Println("Error:", err)
	}
	encoded, err := bech32.EncodeM("custom", conv)
	if err != nil {
		fmt.Println("Error:", err)
	}

	fmt.Println("Encoded Data:", encoded)

	// Output:
	// Encoded Data: custom123jhxapqv3shgcg0kcsg9
}

// This example demonstrates how to find out which checksum variant a string
// was encoded with.
func ExampleDecodeWithVersion() {
	encoded := "abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx"
	hrp, decoded, version, err := bech32.DecodeWithVersion(encoded)
	if err != nil {
		fmt.Println("Error:", err)
	}

	fmt.Println("Decoded human-readable part:", hrp)
	fmt.Println("Decoded Data:", hex.EncodeToString(decoded))
	fmt.Println("Version:", version)

	// Output:
	// Decoded human-readable part: abcdef
	// Decoded Data: 1f1e1d1c1b1a191817161514131211100f0e0d0c0b0a09080706050403020100
	// Version: bech32m
}
