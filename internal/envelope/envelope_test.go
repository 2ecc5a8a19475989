package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeFidelity(t *testing.T) {
	for _, kind := range []Kind{KindWalletKey, KindMasterSeed} {
		env := Encode(kind, "dGVzdC10b2tlbg==")

		gotKind, gotToken, err := Decode(env)
		require.NoError(t, err)
		assert.Equal(t, kind, gotKind)
		assert.Equal(t, "dGVzdC10b2tlbg==", gotToken)
	}
}

func TestDecodeTrimsWhitespace(t *testing.T) {
	env := "  \n" + Encode(KindMasterSeed, "token") + " \t\n"

	kind, token, err := Decode(env)
	require.NoError(t, err)
	assert.Equal(t, KindMasterSeed, kind)
	assert.Equal(t, "token", token)
}

func TestDecodeUnrecognized(t *testing.T) {
	for _, text := range []string{
		"",
		"garbage",
		"https://example.com",
		"vaultkey2:future-version",
		"VAULTKEY1:wrong-case",
	} {
		_, _, err := Decode(text)
		assert.ErrorIs(t, err, ErrNotRecognized, "text %q", text)
	}
}

func TestIsRecognized(t *testing.T) {
	assert.True(t, IsRecognized(Encode(KindWalletKey, "abc")))
	assert.True(t, IsRecognized(Encode(KindMasterSeed, "abc")))
	assert.False(t, IsRecognized("random tag contents"))
	assert.False(t, IsRecognized(""))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "wallet-key", KindWalletKey.String())
	assert.Equal(t, "master-seed", KindMasterSeed.String())
}
