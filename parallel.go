package ethbls

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/ellipticforge/ethbls/internal/logger"
)

// parallelShardTag derives the separation tag for one shard of a parallel
// batch, so that shards seeded from the same randomness produce disjoint
// blinding-scalar streams.
func parallelShardTag(shard int) []byte {
	tag := make([]byte, 0, len("parallel")+8)
	tag = append(tag, "parallel"...)
	tag = binary.BigEndian.AppendUint64(tag, uint64(shard))
	return tag
}

// BatchVerifyParallel is BatchVerify sharded across the caller-owned
// threadpool. The triples are partitioned into contiguous shards, one
// accumulator per worker task; each shard derives its blinding scalars from
// the same seed under a distinct per-shard tag. Partial target-group
// products are combined by multiplication and partial aggregate signatures
// by G2 addition on the calling goroutine, followed by a single final
// exponentiation for the whole batch.
//
// The call blocks until all shards complete; cancellation mid-batch is not
// supported. Outcome does not depend on shard scheduling order.
func BatchVerifyParallel(tp *Threadpool, pubkeys []PublicKey, messages [][]byte, signatures []Signature, secureRandomBytes [32]byte) Status {
	if len(pubkeys) != len(messages) || len(pubkeys) != len(signatures) {
		return StatusInputsLengthsMismatch
	}
	n := len(pubkeys)
	if n == 0 {
		return StatusZeroLengthAggregation
	}

	shards := 0
	if tp != nil {
		shards = tp.NumWorkers()
	}
	if shards > n {
		shards = n
	}
	if shards <= 1 {
		return BatchVerify(pubkeys, messages, signatures, secureRandomBytes)
	}

	for i := range pubkeys {
		if pubkeys[i].p.IsInfinity() || signatures[i].p.IsInfinity() {
			return StatusPointAtInfinity
		}
	}

	chunk := (n + shards - 1) / shards
	log := logger.Logger()
	log.Debug().
		Int("triples", n).
		Int("shards", shards).
		Int("chunk", chunk).
		Msg("sharding batch verification")

	accumulators := make([]*BatchSigAccumulator, 0, shards)
	var failed atomic.Bool
	var wg sync.WaitGroup

	for shard := 0; shard*chunk < n; shard++ {
		start := shard * chunk
		end := min(start+chunk, n)

		acc := NewBatchSigAccumulator()
		acc.Init(secureRandomBytes, parallelShardTag(shard))
		accumulators = append(accumulators, acc)

		wg.Add(1)
		tp.Submit(func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				if !acc.Update(&pubkeys[i], messages[i], &signatures[i]) {
					failed.Store(true)
					return
				}
			}
		})
	}
	wg.Wait()

	if failed.Load() {
		return StatusVerificationFailure
	}

	// Only the orchestrating goroutine touches the shared reduction state,
	// after every worker has joined.
	root := accumulators[0]
	for _, acc := range accumulators[1:] {
		root.merge(acc)
	}
	if !root.FinalVerify() {
		return StatusVerificationFailure
	}
	return StatusSuccess
}
