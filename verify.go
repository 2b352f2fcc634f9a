package ethbls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Verify checks that the signature is valid for the message under the public
// key.
//
// The public key and signature are assumed to be on-curve and
// subgroup-checked (the checked codec or Validate does this, and the result
// is cacheable); this routine does not re-validate them. Infinite keys and
// signatures are rejected explicitly since the identity element trivially
// satisfies the pairing equation.
func (pub *PublicKey) Verify(message []byte, sig *Signature) Status {
	if pub.p.IsInfinity() || sig.p.IsInfinity() {
		return StatusPointAtInfinity
	}
	return coreVerify(&pub.p, message, &sig.p)
}

// coreVerify checks e(pub, H(msg)) · e(generator, -sig) == 1 as a single
// 2-pair multi-pairing, sharing one final exponentiation instead of
// comparing two independent pairings.
func coreVerify(pub *bls12381.G1Affine, message []byte, sig *bls12381.G2Affine) Status {
	h := hashToG2(message)

	var negSig bls12381.G2Affine
	negSig.Neg(sig)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{*pub, g1Gen},
		[]bls12381.G2Affine{h, negSig},
	)
	if err != nil || !ok {
		return StatusVerificationFailure
	}
	return StatusSuccess
}
