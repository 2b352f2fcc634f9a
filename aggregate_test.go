package ethbls_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	ethbls "github.com/ellipticforge/ethbls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastAggregateVerify(t *testing.T) {
	message := hashedMessage("attestation data root")

	pubkeys := make([]ethbls.PublicKey, 3)
	signatures := make([]ethbls.Signature, 3)
	for i := range pubkeys {
		sec, pub := testKeypair(t, byte(i+1))
		pubkeys[i] = pub
		signatures[i] = testSign(t, &sec, message)
	}

	var aggSig ethbls.Signature
	require.Equal(t, ethbls.StatusSuccess, aggSig.AggregateSignatures(signatures))

	assert.Equal(t, ethbls.StatusSuccess, ethbls.FastAggregateVerify(pubkeys, message, &aggSig))
	assert.Equal(t, ethbls.StatusVerificationFailure,
		ethbls.FastAggregateVerify(pubkeys, hashedMessage("other root"), &aggSig))
}

func TestFastAggregateVerify_Singleton(t *testing.T) {
	sec, pub := testKeypair(t, 4)
	message := hashedMessage("single signer")
	sig := testSign(t, &sec, message)

	// Aggregation over one key degenerates to single verification.
	assert.Equal(t,
		pub.Verify(message, &sig),
		ethbls.FastAggregateVerify([]ethbls.PublicKey{pub}, message, &sig),
	)
}

func TestFastAggregateVerify_Empty(t *testing.T) {
	sec, _ := testKeypair(t, 4)
	sig := testSign(t, &sec, hashedMessage("m"))
	assert.Equal(t, ethbls.StatusZeroLengthAggregation,
		ethbls.FastAggregateVerify(nil, hashedMessage("m"), &sig))
}

// Two keys whose secret scalars sum to zero mod r aggregate to the point at
// infinity; without this check a rogue key could cancel an honest one.
func TestFastAggregateVerify_CancellingKeys(t *testing.T) {
	var raw1 [ethbls.SecretKeyLength]byte
	raw1[31] = 5
	var sec1 ethbls.SecretKey
	require.Equal(t, ethbls.StatusSuccess, sec1.Deserialize(raw1))
	var pub1 ethbls.PublicKey
	require.Equal(t, ethbls.StatusSuccess, pub1.DerivePublicKey(&sec1))

	// sk2 = r - 5, so pk2 = -pk1.
	order := fr.Modulus()
	order.Sub(order, big.NewInt(5))
	var raw2 [ethbls.SecretKeyLength]byte
	order.FillBytes(raw2[:])
	var sec2 ethbls.SecretKey
	require.Equal(t, ethbls.StatusSuccess, sec2.Deserialize(raw2))
	var pub2 ethbls.PublicKey
	require.Equal(t, ethbls.StatusSuccess, pub2.DerivePublicKey(&sec2))

	message := hashedMessage("cancel")
	sig := testSign(t, &sec1, message)

	var agg ethbls.PublicKey
	assert.Equal(t, ethbls.StatusPointAtInfinity,
		agg.AggregatePublicKeys([]ethbls.PublicKey{pub1, pub2}))
	assert.Equal(t, ethbls.StatusPointAtInfinity,
		ethbls.FastAggregateVerify([]ethbls.PublicKey{pub1, pub2}, message, &sig))
}

func TestAggregateVerify(t *testing.T) {
	pubkeys, messages, signatures := testBatch(t, 3)

	var aggSig ethbls.Signature
	require.Equal(t, ethbls.StatusSuccess, aggSig.AggregateSignatures(signatures))

	assert.Equal(t, ethbls.StatusSuccess, ethbls.AggregateVerify(pubkeys, messages, &aggSig))

	// Swapping two messages breaks the pairing product.
	messages[0], messages[1] = messages[1], messages[0]
	assert.Equal(t, ethbls.StatusVerificationFailure, ethbls.AggregateVerify(pubkeys, messages, &aggSig))
}

func TestAggregateVerify_InputGuards(t *testing.T) {
	pubkeys, messages, signatures := testBatch(t, 2)
	var aggSig ethbls.Signature
	require.Equal(t, ethbls.StatusSuccess, aggSig.AggregateSignatures(signatures))

	assert.Equal(t, ethbls.StatusInputsLengthsMismatch,
		ethbls.AggregateVerify(pubkeys, messages[:1], &aggSig))
	assert.Equal(t, ethbls.StatusZeroLengthAggregation,
		ethbls.AggregateVerify(nil, nil, &aggSig))

	infSig := infinitySignature(t)
	assert.Equal(t, ethbls.StatusPointAtInfinity,
		ethbls.AggregateVerify(pubkeys, messages, &infSig))

	pubkeys[1] = infinityPublicKey(t)
	assert.Equal(t, ethbls.StatusPointAtInfinity,
		ethbls.AggregateVerify(pubkeys, messages, &aggSig))
}
