// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"
)

// charset is the set of characters used in the data section of bech32 strings.
// Note that this is ordered, such that for a given charset[i], i is the binary
// value of the character.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	// MaxLengthBIP173 is the maximum length of bech32-encoded string
	// allowed by BIP-173.
	MaxLengthBIP173 = 90

	// MaxHRPLength is the maximum length of the human-readable part.
	MaxHRPLength = 83

	// separator splits the human-readable part from the data part.
	separator = '1'
)

// invalidCharVal marks characters that are not part of the charset in
// charsetRev.
const invalidCharVal = 0xff

// charsetRev maps a lowercase ASCII character to its 5-bit value.
var charsetRev = func() [128]byte {
	var rev [128]byte
	for i := range rev {
		rev[i] = invalidCharVal
	}
	for i := 0; i < len(charset); i++ {
		rev[charset[i]] = byte(i)
	}
	return rev
}()

// checkCase reports whether s contains lowercase and uppercase ASCII letters
// respectively.  Any other byte counts as neither.
func checkCase(s string) (hasLower, hasUpper bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
	}
	return hasLower, hasUpper
}

// checkCharRange returns an error for the first character of s outside the
// printable US-ASCII range [33, 126].
func checkCharRange(s string) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 33 || c > 126 {
			return ErrInvalidCharacter(c)
		}
	}
	return nil
}

// validateHRP checks the human-readable part against the BIP-173 rules for
// length, character range and case.  An hrp without letters is never mixed
// case.
func validateHRP(hrp string) error {
	if len(hrp) < 1 || len(hrp) > MaxHRPLength {
		return ErrInvalidHRPLength(len(hrp))
	}
	if err := checkCharRange(hrp); err != nil {
		return err
	}
	if hasLower, hasUpper := checkCase(hrp); hasLower && hasUpper {
		return ErrMixedCase{}
	}
	return nil
}

// toChars converts the byte slice 'data' to a string where each byte in 'data'
// encodes the index of a character in 'charset'.
func toChars(data []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if int(b) >= len(charset) {
			return "", ErrInvalidDataByte(b)
		}
		sb.WriteByte(charset[b])
	}
	return sb.String(), nil
}

// Encode encodes a byte slice into a bech32 string with the given
// human-readable part (HRP).  The HRP will be converted to lowercase if needed
// since mixed cased encodings are not permitted and lowercase is used for
// checksum purposes.  Note that the bytes must each encode 5 bits (base32).
func Encode(hrp string, data []byte) (string, error) {
	return EncodeWithVersion(hrp, data, Version0)
}

// EncodeM is the exactly same as the Encode method, but it uses the new
// bech32m constant instead.
func EncodeM(hrp string, data []byte) (string, error) {
	return EncodeWithVersion(hrp, data, VersionM)
}

// EncodeWithVersion encodes a byte slice into a bech32 string using the
// checksum constant of the given version.
func EncodeWithVersion(hrp string, data []byte, version Version) (string, error) {
	c, ok := VersionToConsts[version]
	if !ok {
		return "", ErrInvalidVersion(version)
	}
	if err := validateHRP(hrp); err != nil {
		return "", err
	}

	// The resulting string must decode again, so hold it to the same
	// length limit.
	total := len(hrp) + 1 + len(data) + checksumLength
	if total > MaxLengthBIP173 {
		return "", ErrInvalidLength(total)
	}

	// The resulting bech32 string is the concatenation of the lowercase
	// hrp, the separator 1, data and the 6-byte checksum.
	hrp = strings.ToLower(hrp)
	tail, err := toChars(data)
	if err != nil {
		return "", err
	}
	checksum := createChecksum(hrp, data, c)

	var sb strings.Builder
	sb.Grow(total)
	sb.WriteString(hrp)
	sb.WriteByte(separator)
	sb.WriteString(tail)
	for _, b := range checksum {
		sb.WriteByte(charset[b])
	}
	return sb.String(), nil
}

// EncodeFromBase256 converts a base256-encoded byte slice into a base32-encoded
// byte slice and then encodes it into a bech32 string with the given
// human-readable part (HRP).
func EncodeFromBase256(hrp string, data []byte) (string, error) {
	converted, err := ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return Encode(hrp, converted)
}

// decodeNoChecksum performs every check of the decoding process except the
// checksum verification.  When limit is set the string must also fit the
// BIP-173 length limit.  The returned data still includes the checksum.
func decodeNoChecksum(bech string, limit bool) (string, []byte, error) {
	if limit && len(bech) > MaxLengthBIP173 {
		return "", nil, ErrInvalidLength(len(bech))
	}

	// Only ASCII characters between 33 and 126 are allowed, and the string
	// must be either all lower or all upper case.
	if hasLower, hasUpper := checkCase(bech); hasLower && hasUpper {
		return "", nil, ErrMixedCase{}
	}
	if err := checkCharRange(bech); err != nil {
		return "", nil, err
	}

	// The string is invalid if the last '1' is non-existent, it is the
	// first character of the string (no human-readable part) or one of the
	// last 6 characters of the string (since checksum cannot contain '1').
	bech = strings.ToLower(bech)
	one := strings.LastIndexByte(bech, separator)
	if one < 1 || one+checksumLength+1 > len(bech) {
		return "", nil, ErrInvalidSeparatorIndex(one)
	}

	// The human-readable part is everything before the last '1'.
	hrp := bech[:one]
	tail := bech[one+1:]

	// Each character corresponds to the byte with value of the index in
	// 'charset'.  The range check above keeps every byte below 128.
	data := make([]byte, len(tail))
	for i := 0; i < len(tail); i++ {
		v := charsetRev[tail[i]]
		if v == invalidCharVal {
			return "", nil, ErrNonCharsetChar(tail[i])
		}
		data[i] = v
	}

	return hrp, data, nil
}

// decode decodes and verifies a bech32 string under either checksum constant.
func decode(bech string, limit bool) (string, []byte, Version, error) {
	hrp, data, err := decodeNoChecksum(bech, limit)
	if err != nil {
		return "", nil, VersionUnknown, err
	}

	version := checksumVersion(hrp, data)
	if version == VersionUnknown {
		return "", nil, VersionUnknown, checksumError(hrp, data)
	}

	// We exclude the last 6 bytes, which is the checksum.
	return hrp, data[:len(data)-checksumLength], version, nil
}

// checksumError builds the error reported for data whose trailing checksum
// does not verify.
func checksumError(hrp string, data []byte) ErrInvalidChecksum {
	payload := data[:len(data)-checksumLength]
	actual, _ := toChars(data[len(data)-checksumLength:])
	expected := createChecksum(hrp, payload, Version0Const)
	expectedM := createChecksum(hrp, payload, VersionMConst)
	exp, _ := toChars(expected[:])
	expM, _ := toChars(expectedM[:])
	return ErrInvalidChecksum{
		Expected:  exp,
		ExpectedM: expM,
		Actual:    actual,
	}
}

// Decode decodes a bech32 encoded string, returning the human-readable part
// and the data part excluding the checksum.  Both the original bech32 and the
// bech32m checksum are accepted.
//
// Note that the returned data is 5-bit (base32) encoded and the human-readable
// part will be lowercase.
func Decode(bech string) (string, []byte, error) {
	hrp, data, _, err := decode(bech, true)
	return hrp, data, err
}

// DecodeWithVersion is identical to Decode, but it also returns the bech32
// version the checksum matched.
func DecodeWithVersion(bech string) (string, []byte, Version, error) {
	return decode(bech, true)
}

// DecodeVersion decodes a bech32 encoded string which must carry the checksum
// of the given version.  A string that is valid only under the other version
// is rejected with ErrInvalidChecksum.
func DecodeVersion(bech string, version Version) (string, []byte, error) {
	c, ok := VersionToConsts[version]
	if !ok {
		return "", nil, ErrInvalidVersion(version)
	}
	hrp, data, err := decodeNoChecksum(bech, true)
	if err != nil {
		return "", nil, err
	}
	if !verifyChecksum(hrp, data, c) {
		return "", nil, checksumError(hrp, data)
	}
	return hrp, data[:len(data)-checksumLength], nil
}

// DecodeNoLimit is identical to Decode except it will not enforce the
// 90-character limit of BIP-173.  It is meant for payloads other than segwit
// addresses, whose checksum guarantees are weaker past that length.
func DecodeNoLimit(bech string) (string, []byte, error) {
	hrp, data, _, err := decode(bech, false)
	return hrp, data, err
}

// DecodeNoLimitWithVersion is identical to DecodeNoLimit, but it also returns
// the bech32 version the checksum matched.
func DecodeNoLimitWithVersion(bech string) (string, []byte, Version, error) {
	return decode(bech, false)
}

// DecodeToBase256 decodes a bech32-encoded string into its associated
// human-readable part (HRP) and base32-encoded data, converts that data to a
// base256-encoded byte slice and returns it along with the lowercase HRP.
func DecodeToBase256(bech string) (string, []byte, error) {
	hrp, data, err := Decode(bech)
	if err != nil {
		return "", nil, err
	}
	converted, err := ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, converted, nil
}
