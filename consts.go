// Package ethbls implements BLS signatures over BLS12-381 for Ethereum-style
// validators: key derivation, signing, and single, aggregate and randomized
// batch verification, including a streaming batch accumulator and a parallel
// batch verifier.
//
// Public keys live on G1 (48-byte compressed), signatures on G2 (96-byte
// compressed), following the Ethereum proof-of-possession ciphersuite.
package ethbls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

const (
	// DomainSeparationTag is mixed into hash-to-curve for all signing and
	// verification in this package. It is protocol-wide and not
	// caller-configurable.
	DomainSeparationTag = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

	// Wire sizes of the serialized forms.
	SecretKeyLength           = 32
	PublicKeyCompressedLength = 48
	SignatureCompressedLength = 96

	// millerFoldWidth is the number of buffered (G1, G2) pairs folded into
	// the running target-group product per batched Miller loop call.
	millerFoldWidth = 8

	// blindingExpandLen is the number of SHAKE-256 output bytes expanded per
	// blinding scalar. 32 bytes reduced mod r gives full-width coefficients,
	// which strictly dominates the 64-bit floor assumed by the upstream
	// threat model for batch verification.
	blindingExpandLen = 32

	// batchSerialTag separates the single-threaded batch scalar stream from
	// the per-shard streams used by BatchVerifyParallel.
	batchSerialTag = "serial"
)

// Fetch the built-in generators once.
var (
	_, _, g1Gen, g2Gen = bls12381.Generators()

	g1GenNeg bls12381.G1Affine
)

func init() {
	g1GenNeg.Neg(&g1Gen)
}
