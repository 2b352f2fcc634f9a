package ethbls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// hashToG2 maps a message to G2 under the package's fixed domain separation
// tag.
func hashToG2(message []byte) bls12381.G2Affine {
	h, err := bls12381.HashToG2(message, []byte(DomainSeparationTag))
	if err != nil {
		// hash-to-curve only fails for tags longer than 255 bytes; the tag
		// here is a short package constant.
		panic(err)
	}
	return h
}

// Sign produces a signature for the message under the secret key. The
// message is hashed to G2 with the fixed domain separation tag and never
// retained beyond the call.
func (sig *Signature) Sign(sec *SecretKey, message []byte) Status {
	if status := sec.Validate(); status != StatusSuccess {
		return status
	}
	h := hashToG2(message)
	var s big.Int
	sec.scalar.BigInt(&s)
	sig.p.ScalarMultiplication(&h, &s)
	return StatusSuccess
}
