package ethbls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// Compressed points use ZCash-style sign-bit compression: the three most
// significant bits of the first byte carry the compression flag, the infinity
// flag and the sign of the y coordinate.
const (
	flagMask         byte = 0b111 << 5
	flagCompSmallest byte = 0b100 << 5
	flagCompLargest  byte = 0b101 << 5
	flagCompInfinity byte = 0b110 << 5
)

// SerializeCompressed encodes the public key in compressed (ZCash) format.
func (pub *PublicKey) SerializeCompressed() [PublicKeyCompressedLength]byte {
	return pub.p.Bytes()
}

// SerializeCompressed encodes the signature in compressed (ZCash) format.
func (sig *Signature) SerializeCompressed() [SignatureCompressedLength]byte {
	return sig.p.Bytes()
}

// DeserializeCompressed decodes and fully validates a compressed public key,
// including the expensive subgroup check. The result of that check can be
// cached: a key deserialized here never needs re-validation on the hot path.
//
// A canonical infinity encoding decodes successfully but is reported as
// StatusPointAtInfinity so that callers can decide whether the identity
// element is acceptable in their context.
func (pub *PublicKey) DeserializeCompressed(src [PublicKeyCompressedLength]byte) Status {
	return pub.setBytes(&src, true)
}

// DeserializeCompressedUnchecked decodes a compressed public key without the
// expensive subgroup check. Encoding and on-curve validation still apply.
//
// Warning: skipping the subgroup check exposes a protocol to small-subgroup
// attacks. Only use this form for keys whose validation has been performed
// and cached separately.
func (pub *PublicKey) DeserializeCompressedUnchecked(src [PublicKeyCompressedLength]byte) Status {
	return pub.setBytes(&src, false)
}

func (pub *PublicKey) setBytes(src *[PublicKeyCompressedLength]byte, subgroupCheck bool) Status {
	flags := src[0] & flagMask
	switch flags {
	case flagCompSmallest, flagCompLargest:
	case flagCompInfinity:
		if src[0] != flagCompInfinity {
			return StatusInvalidEncoding
		}
		for _, b := range src[1:] {
			if b != 0 {
				return StatusInvalidEncoding
			}
		}
		pub.p = bls12381.G1Affine{}
		return StatusPointAtInfinity
	default:
		return StatusInvalidEncoding
	}

	var xBytes [PublicKeyCompressedLength]byte
	copy(xBytes[:], src[:])
	xBytes[0] &^= flagMask

	var x fp.Element
	if err := x.SetBytesCanonical(xBytes[:]); err != nil {
		return StatusCoordinateGreaterOrEqualThanModulus
	}

	// y² = x³ + 4
	var ySquared, b fp.Element
	ySquared.Square(&x).Mul(&ySquared, &x)
	b.SetUint64(4)
	ySquared.Add(&ySquared, &b)

	var y fp.Element
	if y.Sqrt(&ySquared) == nil {
		return StatusPointNotOnCurve
	}
	if y.LexicographicallyLargest() != (flags == flagCompLargest) {
		y.Neg(&y)
	}

	pub.p.X = x
	pub.p.Y = y
	if subgroupCheck && !pub.p.IsInSubGroup() {
		return StatusPointNotInSubgroup
	}
	return StatusSuccess
}

// DeserializeCompressed decodes and fully validates a compressed signature,
// including the expensive subgroup check. See the PublicKey variant for the
// infinity-encoding convention.
func (sig *Signature) DeserializeCompressed(src [SignatureCompressedLength]byte) Status {
	return sig.setBytes(&src, true)
}

// DeserializeCompressedUnchecked decodes a compressed signature without the
// subgroup check. Same warning as the PublicKey variant.
func (sig *Signature) DeserializeCompressedUnchecked(src [SignatureCompressedLength]byte) Status {
	return sig.setBytes(&src, false)
}

func (sig *Signature) setBytes(src *[SignatureCompressedLength]byte, subgroupCheck bool) Status {
	flags := src[0] & flagMask
	switch flags {
	case flagCompSmallest, flagCompLargest:
	case flagCompInfinity:
		if src[0] != flagCompInfinity {
			return StatusInvalidEncoding
		}
		for _, b := range src[1:] {
			if b != 0 {
				return StatusInvalidEncoding
			}
		}
		sig.p = bls12381.G2Affine{}
		return StatusPointAtInfinity
	default:
		return StatusInvalidEncoding
	}

	// x is an Fp2 element serialized as x.A1 || x.A0, flags on the first byte.
	var xBytes [PublicKeyCompressedLength]byte
	copy(xBytes[:], src[:PublicKeyCompressedLength])
	xBytes[0] &^= flagMask

	if err := sig.p.X.A1.SetBytesCanonical(xBytes[:]); err != nil {
		return StatusCoordinateGreaterOrEqualThanModulus
	}
	if err := sig.p.X.A0.SetBytesCanonical(src[PublicKeyCompressedLength:]); err != nil {
		return StatusCoordinateGreaterOrEqualThanModulus
	}

	// y² = x³ + 4(u+1) on the twist
	ySquared := sig.p.X
	ySquared.Square(&ySquared).Mul(&ySquared, &sig.p.X)
	bTwist := sig.p.X
	bTwist.A0.SetUint64(4)
	bTwist.A1.SetUint64(4)
	ySquared.Add(&ySquared, &bTwist)

	if ySquared.Legendre() == -1 {
		return StatusPointNotOnCurve
	}
	y := sig.p.X
	y.Sqrt(&ySquared)
	if y.LexicographicallyLargest() != (flags == flagCompLargest) {
		y.Neg(&y)
	}

	sig.p.Y = y
	if subgroupCheck && !sig.p.IsInSubGroup() {
		return StatusPointNotInSubgroup
	}
	return StatusSuccess
}

// Validate checks that the public key is a valid, non-infinite point of the
// G1 subgroup. This is an expensive operation whose result can be cached.
func (pub *PublicKey) Validate() Status {
	if pub.p.IsInfinity() {
		return StatusPointAtInfinity
	}
	if !pub.p.IsOnCurve() {
		return StatusPointNotOnCurve
	}
	if !pub.p.IsInSubGroup() {
		return StatusPointNotInSubgroup
	}
	return StatusSuccess
}

// Validate checks that the signature is a valid, non-infinite point of the
// G2 subgroup. This is an expensive operation whose result can be cached.
func (sig *Signature) Validate() Status {
	if sig.p.IsInfinity() {
		return StatusPointAtInfinity
	}
	if !sig.p.IsOnCurve() {
		return StatusPointNotOnCurve
	}
	if !sig.p.IsInSubGroup() {
		return StatusPointNotInSubgroup
	}
	return StatusSuccess
}
