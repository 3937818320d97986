// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ConvertBits converts a byte slice where each byte is encoding fromBits bits,
// to a byte slice where each byte is encoding toBits bits.
//
// Every input value must fit in fromBits bits.  When pad is false the input
// must split cleanly: fewer than fromBits bits may be left over and all of
// them must be zero.  When pad is true any leftover bits are flushed as a
// final zero-padded group.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups{}
	}

	// Determine the maximum size the resulting array can have after base
	// conversion, so that we can size it a single time. This might be off
	// by a byte depending on whether padding is used or not and if the
	// input data is a multiple of both fromBits and toBits, but we ignore
	// that and just size it to the maximum possible.
	maxSize := len(data)*int(fromBits)/int(toBits) + 1

	// The final bytes, each byte encoding toBits bits.
	regrouped := make([]byte, 0, maxSize)

	// acc holds the bits that have been read but not yet written; nbits
	// is how many of its low bits are meaningful.  It never grows past
	// fromBits+toBits-1 bits, so a uint32 is plenty.
	var (
		acc   uint32
		nbits uint8
	)
	maxv := uint32(1)<<toBits - 1

	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, ErrInvalidDataRange{Value: b, FromBits: fromBits}
		}

		acc = acc<<fromBits | uint32(b)
		nbits += fromBits

		for nbits >= toBits {
			nbits -= toBits
			regrouped = append(regrouped, byte(acc>>nbits&maxv))
		}
		acc &= uint32(1)<<nbits - 1
	}

	switch {
	case pad:
		if nbits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-nbits)&maxv))
		}

	// Any incomplete group must be less than fromBits bits long and made
	// of zeros only.
	case nbits >= fromBits, acc<<(toBits-nbits)&maxv != 0:
		return nil, ErrInvalidIncompleteGroup{}
	}

	return regrouped, nil
}
