package seed_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mnemo/mnemonic"
	"github.com/arloliu/mnemo/seed"
	"github.com/arloliu/mnemo/wordlist"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestFromString_KnownVector(t *testing.T) {
	// Published PBKDF2 vector for the zero-entropy English phrase with
	// password "TREZOR".
	want, err := hex.DecodeString(
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
	require.NoError(t, err)

	got := seed.FromString(zeroPhrase, []byte("TREZOR"), seed.StandardIterations, seed.StandardSize)
	require.Equal(t, want, got)
}

func TestDerive_MatchesRenderedPhrase(t *testing.T) {
	entropy := make(mnemonic.Entropy, 16)
	phrase, err := entropy.Phrase(12, 4)
	require.NoError(t, err)

	derived := seed.Derive(wordlist.English, phrase, []byte("TREZOR"), seed.StandardIterations, seed.StandardSize)
	rendered := seed.FromString(phrase.Render(wordlist.English), []byte("TREZOR"), seed.StandardIterations, seed.StandardSize)
	require.Equal(t, rendered, derived)
}

func TestFromString_Deterministic(t *testing.T) {
	first := seed.FromString(zeroPhrase, nil, seed.StandardIterations, seed.StandardSize)
	second := seed.FromString(zeroPhrase, nil, seed.StandardIterations, seed.StandardSize)
	require.Equal(t, first, second)
	require.Len(t, first, seed.StandardSize)
}

func TestFromString_PasswordChangesSeed(t *testing.T) {
	plain := seed.FromString(zeroPhrase, nil, seed.StandardIterations, seed.StandardSize)
	salted := seed.FromString(zeroPhrase, []byte("TREZOR"), seed.StandardIterations, seed.StandardSize)
	require.NotEqual(t, plain, salted)
}

func TestFromString_CustomSize(t *testing.T) {
	got := seed.FromString(zeroPhrase, nil, seed.StandardIterations, 32)
	require.Len(t, got, 32)

	full := seed.FromString(zeroPhrase, nil, seed.StandardIterations, seed.StandardSize)
	require.Equal(t, full[:32], got)
}
