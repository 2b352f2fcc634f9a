package ethbls_test

import (
	"testing"

	ethbls "github.com/ellipticforge/ethbls"
	"github.com/stretchr/testify/assert"
)

func TestBatchVerifyParallel(t *testing.T) {
	tp := ethbls.NewThreadpool(4)
	defer tp.Shutdown()

	pubkeys, messages, signatures := testBatch(t, 10)

	assert.Equal(t, ethbls.StatusSuccess,
		ethbls.BatchVerifyParallel(tp, pubkeys, messages, signatures, testSeed))

	// Parallel and sequential agree on the outcome.
	assert.Equal(t,
		ethbls.BatchVerify(pubkeys, messages, signatures, testSeed),
		ethbls.BatchVerifyParallel(tp, pubkeys, messages, signatures, testSeed))
}

func TestBatchVerifyParallel_InvalidTriple(t *testing.T) {
	tp := ethbls.NewThreadpool(4)
	defer tp.Shutdown()

	pubkeys, messages, signatures := testBatch(t, 10)
	sec, _ := testKeypair(t, 1)
	signatures[7] = testSign(t, &sec, hashedMessage("forged"))

	assert.Equal(t, ethbls.StatusVerificationFailure,
		ethbls.BatchVerifyParallel(tp, pubkeys, messages, signatures, testSeed))
	assert.Equal(t, ethbls.StatusVerificationFailure,
		ethbls.BatchVerify(pubkeys, messages, signatures, testSeed))
}

// Without a pool, or with fewer triples than workers, the call degrades to
// the sequential path.
func TestBatchVerifyParallel_Fallback(t *testing.T) {
	pubkeys, messages, signatures := testBatch(t, 3)

	assert.Equal(t, ethbls.StatusSuccess,
		ethbls.BatchVerifyParallel(nil, pubkeys, messages, signatures, testSeed))

	tp := ethbls.NewThreadpool(8)
	defer tp.Shutdown()
	assert.Equal(t, ethbls.StatusSuccess,
		ethbls.BatchVerifyParallel(tp, pubkeys[:1], messages[:1], signatures[:1], testSeed))
}

func TestBatchVerifyParallel_InputGuards(t *testing.T) {
	tp := ethbls.NewThreadpool(2)
	defer tp.Shutdown()

	pubkeys, messages, signatures := testBatch(t, 4)

	assert.Equal(t, ethbls.StatusInputsLengthsMismatch,
		ethbls.BatchVerifyParallel(tp, pubkeys, messages[:2], signatures, testSeed))
	assert.Equal(t, ethbls.StatusZeroLengthAggregation,
		ethbls.BatchVerifyParallel(tp, nil, nil, nil, testSeed))

	signatures[3] = infinitySignature(t)
	assert.Equal(t, ethbls.StatusPointAtInfinity,
		ethbls.BatchVerifyParallel(tp, pubkeys, messages, signatures, testSeed))
}

// A pool is created and shut down by its owner; a new pool may follow a
// drained one.
func TestThreadpoolLifecycle(t *testing.T) {
	tp := ethbls.NewThreadpool(2)
	assert.Equal(t, 2, tp.NumWorkers())

	done := make(chan struct{})
	tp.Submit(func() { close(done) })
	<-done
	tp.Shutdown()

	tp2 := ethbls.NewThreadpool(1)
	tp2.Shutdown()
}
