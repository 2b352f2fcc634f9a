package ethbls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// BatchSigAccumulator verifies a stream of independent (pubkey, message,
// signature) triples in O(1) target-group memory. Each triple is blinded by
// an unpredictable scalar derived from the seed passed to Init, its
// Miller-loop contribution is buffered and periodically folded into a running
// product, and FinalVerify applies a single final exponentiation over the
// whole stream.
//
// The state machine is single-pass and single-use: Init, any number of
// Updates, then exactly one FinalVerify. Reusing a finalized accumulator is a
// usage error; FinalVerify reports false on any further call rather than
// corrupt state. The struct is an opaque handle; construct it with
// NewBatchSigAccumulator.
type BatchSigAccumulator struct {
	// Running product of batched Miller-loop contributions.
	millerAcc bls12381.GT

	// Ring of blinded (r·pubkey, H(message)) pairs awaiting a fold. A fixed
	// width amortizes extension-field multiplication across pairs without
	// allocating on the hot path.
	g1Buf    [millerFoldWidth]bls12381.G1Affine
	g2Buf    [millerFoldWidth]bls12381.G2Affine
	buffered int

	// Aggregate of blinded signatures Σ r_k·sig_k.
	aggSig bls12381.G2Jac

	seed   [32]byte
	sepTag []byte

	// Ordinal of the next accumulated triple; keys its blinding scalar.
	next uint64

	accumulated bool
	finalized   bool
}

// NewBatchSigAccumulator allocates an accumulator. Init must be called
// before the first Update.
func NewBatchSigAccumulator() *BatchSigAccumulator {
	return new(BatchSigAccumulator)
}

// Init resets the accumulator to its empty state and seeds its blinding
// material. secureRandomBytes must come from a CSPRNG or a Fiat-Shamir
// transcript; it is kept only for the lifetime of this accumulator.
//
// sepTag may be nil. When several accumulators are fed from one randomness
// source (for example one per shard of a parallel batch), distinct tags keep
// their blinding-scalar streams disjoint.
func (acc *BatchSigAccumulator) Init(secureRandomBytes [32]byte, sepTag []byte) {
	acc.millerAcc.SetOne()
	acc.buffered = 0
	acc.aggSig = bls12381.G2Jac{}
	acc.seed = secureRandomBytes
	acc.sepTag = append([]byte(nil), sepTag...)
	acc.next = 0
	acc.accumulated = false
	acc.finalized = false
}

// Update accumulates one triple. It returns false without mutating state if
// the public key or signature is the point at infinity, or if the
// accumulator was already finalized.
func (acc *BatchSigAccumulator) Update(pub *PublicKey, message []byte, sig *Signature) bool {
	if acc.finalized {
		return false
	}
	if pub.p.IsInfinity() || sig.p.IsInfinity() {
		return false
	}

	r := blindingScalar(&acc.seed, acc.sepTag, acc.next)
	var rBig big.Int
	r.BigInt(&rBig)

	var blindedPub bls12381.G1Affine
	blindedPub.ScalarMultiplication(&pub.p, &rBig)

	var blindedSig bls12381.G2Jac
	blindedSig.FromAffine(&sig.p)
	blindedSig.ScalarMultiplication(&blindedSig, &rBig)
	acc.aggSig.AddAssign(&blindedSig)

	acc.g1Buf[acc.buffered] = blindedPub
	acc.g2Buf[acc.buffered] = hashToG2(message)
	acc.buffered++
	if acc.buffered == millerFoldWidth {
		acc.fold()
	}

	acc.next++
	acc.accumulated = true
	return true
}

// fold flushes the buffered pairs into the running product with one batched
// Miller-loop call.
func (acc *BatchSigAccumulator) fold() {
	if acc.buffered == 0 {
		return
	}
	// Lengths match by construction and no buffered point is infinite, so
	// the Miller loop cannot fail.
	ml, _ := bls12381.MillerLoop(acc.g1Buf[:acc.buffered], acc.g2Buf[:acc.buffered])
	acc.millerAcc.Mul(&acc.millerAcc, &ml)
	acc.buffered = 0
}

// merge absorbs a partial accumulator produced over a disjoint shard of the
// same batch: its pending pairs are folded, its partial target-group product
// multiplied in and its partial aggregate signature added. Both combination
// steps are commutative, so shard completion order is irrelevant.
func (acc *BatchSigAccumulator) merge(other *BatchSigAccumulator) {
	other.fold()
	acc.millerAcc.Mul(&acc.millerAcc, &other.millerAcc)
	acc.aggSig.AddAssign(&other.aggSig)
	acc.accumulated = acc.accumulated || other.accumulated
}

// FinalVerify consumes the accumulator and reports whether every accumulated
// triple carries a valid signature. It returns false if nothing was ever
// accumulated.
func (acc *BatchSigAccumulator) FinalVerify() bool {
	if acc.finalized || !acc.accumulated {
		return false
	}
	acc.finalized = true
	acc.fold()

	// Fold in (generator, -Σ r_k·sig_k) and close the pairing equation with
	// the stream's single final exponentiation. A degenerate aggregate
	// signature contributes e(g, O) = 1 and is skipped.
	var negAggSig bls12381.G2Affine
	negAggSig.FromJacobian(&acc.aggSig)
	negAggSig.Neg(&negAggSig)
	if !negAggSig.IsInfinity() {
		ml, _ := bls12381.MillerLoop(
			[]bls12381.G1Affine{g1Gen},
			[]bls12381.G2Affine{negAggSig},
		)
		acc.millerAcc.Mul(&acc.millerAcc, &ml)
	}

	result := bls12381.FinalExponentiation(&acc.millerAcc)
	return result.IsOne()
}
