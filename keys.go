package ethbls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SecretKey is a scalar modulo the curve order r. The zero scalar and values
// at or above r are invalid and rejected at deserialization.
//
// Secret protection: a valid secret key only leaks that it is valid. An
// invalid one leaks whether it was zero or out of range, both of which are
// by definition already invalid inputs.
type SecretKey struct {
	scalar fr.Element
}

// PublicKey is a point on G1, assumed curve- and subgroup-checked once it has
// been validated or deserialized through the checked codec. The point at
// infinity is a distinguished invalid value for signing purposes.
type PublicKey struct {
	p bls12381.G1Affine
}

// Signature is a point on G2, with the same validity rules as PublicKey
// mirrored across groups.
type Signature struct {
	p bls12381.G2Affine
}

// Deserialize decodes a 32-byte big-endian scalar and validates it.
func (sec *SecretKey) Deserialize(src [SecretKeyLength]byte) Status {
	var s fr.Element
	if err := s.SetBytesCanonical(src[:]); err != nil {
		return StatusSecretKeyLargerThanCurveOrder
	}
	if s.IsZero() {
		return StatusZeroSecretKey
	}
	sec.scalar = s
	return StatusSuccess
}

// Serialize encodes the secret key as a 32-byte big-endian scalar.
func (sec *SecretKey) Serialize() [SecretKeyLength]byte {
	return sec.scalar.Bytes()
}

// Validate checks the secret key. A zero-value SecretKey (never deserialized
// or derived) is invalid.
func (sec *SecretKey) Validate() Status {
	if sec.scalar.IsZero() {
		return StatusZeroSecretKey
	}
	return StatusSuccess
}

// DerivePublicKey sets pub to the public key matching sec.
func (pub *PublicKey) DerivePublicKey(sec *SecretKey) Status {
	if status := sec.Validate(); status != StatusSuccess {
		return status
	}
	var s big.Int
	sec.scalar.BigInt(&s)
	pub.p.ScalarMultiplicationBase(&s)
	return StatusSuccess
}

// IsZero reports whether the public key is the point at infinity.
func (pub *PublicKey) IsZero() bool {
	return pub.p.IsInfinity()
}

// Equal reports whether two public keys are the same point.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	return pub.p.Equal(&other.p)
}

// IsZero reports whether the signature is the point at infinity.
func (sig *Signature) IsZero() bool {
	return sig.p.IsInfinity()
}

// Equal reports whether two signatures are the same point.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.p.Equal(&other.p)
}
