package ethbls_test

import (
	"crypto/sha256"
	"testing"

	ethbls "github.com/ellipticforge/ethbls"
	"github.com/stretchr/testify/require"
)

// testKeypair deterministically derives a keypair from a one-byte seed.
func testKeypair(t *testing.T, seed byte) (ethbls.SecretKey, ethbls.PublicKey) {
	t.Helper()
	var raw [ethbls.SecretKeyLength]byte
	raw[31] = seed
	var sec ethbls.SecretKey
	require.Equal(t, ethbls.StatusSuccess, sec.Deserialize(raw))
	var pub ethbls.PublicKey
	require.Equal(t, ethbls.StatusSuccess, pub.DerivePublicKey(&sec))
	return sec, pub
}

func testSign(t *testing.T, sec *ethbls.SecretKey, message []byte) ethbls.Signature {
	t.Helper()
	var sig ethbls.Signature
	require.Equal(t, ethbls.StatusSuccess, sig.Sign(sec, message))
	return sig
}

func hashedMessage(s string) []byte {
	h := sha256.Sum256([]byte(s))
	return h[:]
}

// testBatch builds n valid triples over distinct messages.
func testBatch(t *testing.T, n int) ([]ethbls.PublicKey, [][]byte, []ethbls.Signature) {
	t.Helper()
	pubkeys := make([]ethbls.PublicKey, n)
	messages := make([][]byte, n)
	signatures := make([]ethbls.Signature, n)
	for i := 0; i < n; i++ {
		sec, pub := testKeypair(t, byte(i+1))
		pubkeys[i] = pub
		messages[i] = hashedMessage(string(rune('a' + i)))
		signatures[i] = testSign(t, &sec, messages[i])
	}
	return pubkeys, messages, signatures
}

func infinityPublicKey(t *testing.T) ethbls.PublicKey {
	t.Helper()
	var raw [ethbls.PublicKeyCompressedLength]byte
	raw[0] = 0xC0
	var pub ethbls.PublicKey
	require.Equal(t, ethbls.StatusPointAtInfinity, pub.DeserializeCompressed(raw))
	return pub
}

func infinitySignature(t *testing.T) ethbls.Signature {
	t.Helper()
	var raw [ethbls.SignatureCompressedLength]byte
	raw[0] = 0xC0
	var sig ethbls.Signature
	require.Equal(t, ethbls.StatusPointAtInfinity, sig.DeserializeCompressed(raw))
	return sig
}
