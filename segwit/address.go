// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit

import (
	"fmt"
	"strings"

	"github.com/btcsuite/bech32util/bech32"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

const (
	// MaxWitnessVersion is the highest witness version an address can
	// carry.
	MaxWitnessVersion = 16

	// MinProgramLength and MaxProgramLength bound the size of a witness
	// program in bytes.
	MinProgramLength = 2
	MaxProgramLength = 40

	// WitnessV0PubKeyHashLen and WitnessV0ScriptHashLen are the only
	// program sizes allowed for witness version 0.
	WitnessV0PubKeyHashLen = 20
	WitnessV0ScriptHashLen = 32

	// TaprootKeyLen is the size of a serialized x-only taproot output key.
	TaprootKeyLen = 32
)

// bechVersion returns the bech32 checksum variant a witness version must be
// encoded with.
func bechVersion(witnessVersion byte) bech32.Version {
	if witnessVersion == 0 {
		return bech32.Version0
	}
	return bech32.VersionM
}

// checkProgram applies the witness version and program length policy shared by
// encoding and decoding.
func checkProgram(witnessVersion byte, program []byte) error {
	if witnessVersion > MaxWitnessVersion {
		return ErrInvalidWitnessVersion(witnessVersion)
	}

	n := len(program)
	if n < MinProgramLength || n > MaxProgramLength {
		return ErrInvalidProgramLength{witnessVersion, n}
	}
	if witnessVersion == 0 && n != WitnessV0PubKeyHashLen &&
		n != WitnessV0ScriptHashLen {

		return ErrInvalidProgramLength{witnessVersion, n}
	}
	return nil
}

// Decode decodes a segwit address and checks it against the expected
// human-readable part, returning the witness version and program.
func Decode(hrp, address string) (byte, []byte, error) {
	// Decode the bech32 encoded address.
	decodedHRP, data, version, err := bech32.DecodeWithVersion(address)
	if err != nil {
		return 0, nil, err
	}
	if !strings.EqualFold(decodedHRP, hrp) {
		return 0, nil, ErrHRPMismatch{Expected: hrp, Actual: decodedHRP}
	}

	// The first byte of the decoded address is the witness version, it
	// must exist.
	if len(data) < 1 {
		return 0, nil, ErrMissingWitnessVersion{}
	}
	witnessVersion := data[0]
	if witnessVersion > MaxWitnessVersion {
		return 0, nil, ErrInvalidWitnessVersion(witnessVersion)
	}

	// The remaining characters of the address returned are grouped into
	// words of 5 bits. In order to restore the original witness program
	// bytes, we'll need to regroup into 8 bit words.
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}
	if err := checkProgram(witnessVersion, program); err != nil {
		return 0, nil, err
	}

	// A checksum that verifies under the other constant is still an
	// invalid address.
	if version != bechVersion(witnessVersion) {
		return 0, nil, ErrVariantMismatch{witnessVersion, version}
	}

	return witnessVersion, program, nil
}

// Encode encodes a witness version and program as a segwit address with the
// given human-readable part.  Version 0 programs use bech32 and later versions
// use bech32m.
func Encode(hrp string, witnessVersion byte, program []byte) (string, error) {
	if err := checkProgram(witnessVersion, program); err != nil {
		return "", err
	}

	// Group the address bytes into 5 bit groups, as this is what is used to
	// encode each character in the address string.
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}

	// Concatenate the witness version and program, and encode the resulting
	// bytes using bech32 encoding.
	combined := make([]byte, len(converted)+1)
	combined[0] = witnessVersion
	copy(combined[1:], converted)

	return bech32.EncodeWithVersion(hrp, combined, bechVersion(witnessVersion))
}

// Address is a validated segwit address: a human-readable part together with
// a witness version and program.
type Address struct {
	hrp            string
	witnessVersion byte
	witnessProgram []byte
}

// NewAddress returns a new Address after checking the witness version and
// program.  The hrp is stored lowercase.
func NewAddress(hrp string, witnessVersion byte, program []byte) (*Address, error) {
	if err := checkProgram(witnessVersion, program); err != nil {
		return nil, err
	}

	// Make sure the hrp encodes at all before handing out the address.
	if _, err := Encode(hrp, witnessVersion, program); err != nil {
		return nil, err
	}

	return &Address{
		hrp:            strings.ToLower(hrp),
		witnessVersion: witnessVersion,
		witnessProgram: append([]byte(nil), program...),
	}, nil
}

// DecodeAddress decodes the string encoding of a segwit address for the
// network identified by hrp.
func DecodeAddress(address, hrp string) (*Address, error) {
	witnessVersion, program, err := Decode(hrp, address)
	if err != nil {
		return nil, err
	}
	return &Address{
		hrp:            strings.ToLower(hrp),
		witnessVersion: witnessVersion,
		witnessProgram: program,
	}, nil
}

// NewAddressWitnessPubKeyHash returns a version 0 pay-to-witness-pubkey-hash
// address for the serialized secp256k1 public key.  The key may be given in
// any serialization btcec accepts, its compressed form is hashed.
func NewAddressWitnessPubKeyHash(serializedPubKey []byte, hrp string) (*Address, error) {
	pubKey, err := btcec.ParsePubKey(serializedPubKey)
	if err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}
	return NewAddress(hrp, 0, hash160(pubKey.SerializeCompressed()))
}

// NewAddressWitnessScriptHash returns a version 0 pay-to-witness-script-hash
// address committing to the given witness script.
func NewAddressWitnessScriptHash(witnessScript []byte, hrp string) (*Address, error) {
	return NewAddress(hrp, 0, chainhash.HashB(witnessScript))
}

// NewAddressTaproot returns a version 1 taproot address for the given x-only
// output key.  The key must be a valid point on the secp256k1 curve.
func NewAddressTaproot(outputKey []byte, hrp string) (*Address, error) {
	if len(outputKey) != TaprootKeyLen {
		return nil, ErrInvalidProgramLength{1, len(outputKey)}
	}
	pubKey, err := schnorr.ParsePubKey(outputKey)
	if err != nil {
		return nil, fmt.Errorf("invalid taproot output key: %w", err)
	}
	return NewAddress(hrp, 1, schnorr.SerializePubKey(pubKey))
}

// hash160 calculates RIPEMD160(SHA256(b)).
func hash160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(chainhash.HashB(b))
	return h.Sum(nil)
}

// EncodeAddress returns the bech32 (or bech32m for witness versions above 0)
// string encoding of the address.
func (a *Address) EncodeAddress() string {
	str, err := Encode(a.hrp, a.witnessVersion, a.witnessProgram)
	if err != nil {
		return ""
	}
	return str
}

// String returns a human-readable string for the address.  This is equivalent
// to calling EncodeAddress, but is provided so the type can be used as a
// fmt.Stringer.
func (a *Address) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the address.
func (a *Address) Hrp() string {
	return a.hrp
}

// WitnessVersion returns the witness version of the address.
func (a *Address) WitnessVersion() byte {
	return a.witnessVersion
}

// WitnessProgram returns a copy of the witness program of the address.
func (a *Address) WitnessProgram() []byte {
	return append([]byte(nil), a.witnessProgram...)
}

// IsForNet returns whether or not the address belongs to the network using
// the given human-readable part.
func (a *Address) IsForNet(hrp string) bool {
	return strings.EqualFold(a.hrp, hrp)
}

// PkScript returns the witness output script paying to the address: the
// version opcode followed by a push of the program.
func (a *Address) PkScript() []byte {
	script := make([]byte, 0, 2+len(a.witnessProgram))
	if a.witnessVersion == 0 {
		script = append(script, 0x00)
	} else {
		// OP_1 through OP_16.
		script = append(script, 0x50+a.witnessVersion)
	}
	script = append(script, byte(len(a.witnessProgram)))
	return append(script, a.witnessProgram...)
}
