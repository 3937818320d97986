// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// checksumLength is the number of 5-bit groups appended to the data part.
const checksumLength = 6

// gen encodes the generator polynomial for the bech32 BCH checksum.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// expandHRP expands the human-readable part into the values fed to the
// checksum: the high bits of every character, a zero, then the low five bits
// of every character.
func expandHRP(hrp string) []byte {
	n := len(hrp)
	v := make([]byte, 2*n+1)
	for i := 0; i < n; i++ {
		c := hrp[i]
		v[i] = c >> 5
		v[i+n+1] = c & 31
	}
	return v
}

// polymod calculates the BCH checksum accumulator over the given values.
func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// checksumValues concatenates the expanded hrp, the data and, when pad is set,
// room for the checksum.
func checksumValues(hrp string, data []byte, pad bool) []byte {
	exp := expandHRP(hrp)
	n := len(exp) + len(data)
	if pad {
		n += checksumLength
	}
	values := make([]byte, n)
	copy(values, exp)
	copy(values[len(exp):], data)
	return values
}

// createChecksum returns the six 5-bit checksum values for the given hrp and
// data under the given checksum constant.  The hrp must already be lowercase.
func createChecksum(hrp string, data []byte, c ChecksumConst) [checksumLength]byte {
	mod := polymod(checksumValues(hrp, data, true)) ^ uint32(c)

	var res [checksumLength]byte
	for i := 0; i < checksumLength; i++ {
		res[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return res
}

// verifyChecksum reports whether data, which includes the trailing checksum,
// is valid for hrp under the given checksum constant.
func verifyChecksum(hrp string, data []byte, c ChecksumConst) bool {
	return polymod(checksumValues(hrp, data, false)) == uint32(c)
}

// checksumVersion returns the bech32 version whose checksum constant data
// verifies under.  The original bech32 constant is tried first.
// VersionUnknown is returned when neither matches.
func checksumVersion(hrp string, data []byte) Version {
	mod := polymod(checksumValues(hrp, data, false))
	for _, v := range []Version{Version0, VersionM} {
		if mod == uint32(VersionToConsts[v]) {
			return v
		}
	}
	return VersionUnknown
}
