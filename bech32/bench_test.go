// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32_test

import (
	"bytes"
	"testing"

	"github.com/btcsuite/bech32util/bech32"
)

func BenchmarkEncodeM(b *testing.B) {
	b.StopTimer()
	data := bytes.Repeat([]byte{0x1f}, 80)
	b.SetBytes(int64(len(data)))
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		bech32.EncodeM("bc", data)
	}
}

func BenchmarkDecode(b *testing.B) {
	b.StopTimer()
	encoded, err := bech32.EncodeM("bc", bytes.Repeat([]byte{0x1f}, 80))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(encoded)))
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		bech32.Decode(encoded)
	}
}

func BenchmarkConvertBits(b *testing.B) {
	b.StopTimer()
	data := bytes.Repeat([]byte{0xff}, 5000)
	b.SetBytes(int64(len(data)))
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		bech32.ConvertBits(data, 8, 5, true)
	}
}
