package ethbls

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/sha3"
)

// blindingScalar derives the index-th blinding coefficient of the stream
// keyed by (seed, sepTag). The derivation is a keyed SHAKE-256 expansion over
// seed ∥ index ∥ tag rather than a stateful PRNG, so shards can derive
// disjoint, collision-free streams from one seed by diverging on the tag
// alone.
//
// The returned scalar is never zero: a zero coefficient would erase its
// triple's contribution from the batched pairing equation.
func blindingScalar(seed *[32]byte, sepTag []byte, index uint64) fr.Element {
	var idxBytes [8]byte
	binary.BigEndian.PutUint64(idxBytes[:], index)

	// tagPrime = tag ∥ len(tag), so distinct tags can never collide through
	// boundary ambiguity with the fixed-width fields before them.
	tagPrime := append(append([]byte(nil), sepTag...), byte(len(sepTag)))

	var scalar fr.Element
	for retry := byte(0); ; retry++ {
		shake := sha3.NewShake256()
		shake.Write(seed[:])
		shake.Write(idxBytes[:])
		shake.Write(tagPrime)
		shake.Write([]byte{retry})

		var out [blindingExpandLen]byte
		shake.Read(out[:])
		scalar.SetBytes(out[:])
		if !scalar.IsZero() {
			return scalar
		}
	}
}
