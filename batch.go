package ethbls

// BatchVerify verifies n independent (pubkey, message, signature) triples
// together through one randomized linear combination and a single (n+1)-pair
// multi-pairing.
//
// secureRandomBytes must be 32 bytes of caller-supplied unpredictable
// randomness (CSPRNG or Fiat-Shamir transcript); the engine never generates
// its own. Each triple is weighted by a fresh scalar derived from the seed
// and the triple's index, which is what prevents an adversary from crafting
// individually-invalid signatures whose unweighted sum satisfies the
// aggregate equation. With the same seed and triples the result is
// deterministic.
func BatchVerify(pubkeys []PublicKey, messages [][]byte, signatures []Signature, secureRandomBytes [32]byte) Status {
	if len(pubkeys) != len(messages) || len(pubkeys) != len(signatures) {
		return StatusInputsLengthsMismatch
	}
	if len(pubkeys) == 0 {
		return StatusZeroLengthAggregation
	}

	// Catch keys or signatures that were mistakenly zero-initialized, for
	// example by a failed generic aggregation, before they silently weaken
	// the batch.
	for i := range pubkeys {
		if pubkeys[i].p.IsInfinity() {
			return StatusPointAtInfinity
		}
	}
	for i := range signatures {
		if signatures[i].p.IsInfinity() {
			return StatusPointAtInfinity
		}
	}

	acc := NewBatchSigAccumulator()
	acc.Init(secureRandomBytes, []byte(batchSerialTag))
	for i := range pubkeys {
		if !acc.Update(&pubkeys[i], messages[i], &signatures[i]) {
			return StatusVerificationFailure
		}
	}
	if !acc.FinalVerify() {
		return StatusVerificationFailure
	}
	return StatusSuccess
}
