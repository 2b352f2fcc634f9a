package ethbls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// AggregatePublicKeys sums the public keys into agg by G1 point addition.
// Returns StatusZeroLengthAggregation for an empty input and
// StatusPointAtInfinity if the sum degenerates to the identity element
// (possible when maliciously related keys cancel).
func (pub *PublicKey) AggregatePublicKeys(pubkeys []PublicKey) Status {
	if len(pubkeys) == 0 {
		return StatusZeroLengthAggregation
	}
	var acc bls12381.G1Jac
	acc.FromAffine(&pubkeys[0].p)
	for i := 1; i < len(pubkeys); i++ {
		acc.AddMixed(&pubkeys[i].p)
	}
	pub.p.FromJacobian(&acc)
	if pub.p.IsInfinity() {
		return StatusPointAtInfinity
	}
	return StatusSuccess
}

// AggregateSignatures sums the signatures into sig by G2 point addition.
// Same degenerate-input statuses as AggregatePublicKeys.
func (sig *Signature) AggregateSignatures(signatures []Signature) Status {
	if len(signatures) == 0 {
		return StatusZeroLengthAggregation
	}
	var acc bls12381.G2Jac
	acc.FromAffine(&signatures[0].p)
	for i := 1; i < len(signatures); i++ {
		acc.AddMixed(&signatures[i].p)
	}
	sig.p.FromJacobian(&acc)
	if sig.p.IsInfinity() {
		return StatusPointAtInfinity
	}
	return StatusSuccess
}

// FastAggregateVerify checks an aggregate signature over one message signed
// by every public key in the set.
//
// Callers are responsible for having verified proof-of-possession for each
// key beforehand; without it an adversary can craft rogue keys that cancel
// honest ones. A key set summing to the point at infinity is rejected with
// StatusPointAtInfinity instead of silently verifying.
func FastAggregateVerify(pubkeys []PublicKey, message []byte, aggregateSig *Signature) Status {
	if len(pubkeys) == 0 {
		return StatusZeroLengthAggregation
	}
	if aggregateSig.p.IsInfinity() {
		return StatusPointAtInfinity
	}
	var agg PublicKey
	if status := agg.AggregatePublicKeys(pubkeys); status != StatusSuccess {
		return status
	}
	return coreVerify(&agg.p, message, &aggregateSig.p)
}

// AggregateVerify checks an aggregate signature over n (pubkey, message)
// pairs: Π e(pubkey_i, H(message_i)) == e(generator, aggregateSig). All n+1
// Miller-loop contributions are accumulated into one product sharing a
// single final exponentiation, which is the dominant cost reduction over n
// separate pairings.
//
// Callers whose message sets contain duplicates signed by several keys must
// pre-aggregate those keys (AggregatePublicKeys rejects a degenerate sum) to
// block splitting-zero attacks; this routine does not replay that check.
func AggregateVerify(pubkeys []PublicKey, messages [][]byte, aggregateSig *Signature) Status {
	if len(pubkeys) != len(messages) {
		return StatusInputsLengthsMismatch
	}
	if len(pubkeys) == 0 {
		return StatusZeroLengthAggregation
	}
	if aggregateSig.p.IsInfinity() {
		return StatusPointAtInfinity
	}

	n := len(pubkeys)
	g1Points := make([]bls12381.G1Affine, 0, n+1)
	g2Points := make([]bls12381.G2Affine, 0, n+1)
	for i := 0; i < n; i++ {
		if pubkeys[i].p.IsInfinity() {
			return StatusPointAtInfinity
		}
		g1Points = append(g1Points, pubkeys[i].p)
		g2Points = append(g2Points, hashToG2(messages[i]))
	}
	g1Points = append(g1Points, g1GenNeg)
	g2Points = append(g2Points, aggregateSig.p)

	ok, err := bls12381.PairingCheck(g1Points, g2Points)
	if err != nil || !ok {
		return StatusVerificationFailure
	}
	return StatusSuccess
}
