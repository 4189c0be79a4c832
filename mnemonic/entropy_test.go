package mnemonic_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mnemo/errs"
	"github.com/arloliu/mnemo/mnemonic"
	"github.com/arloliu/mnemo/wordlist"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestEntropy_Phrase_ZeroEntropy(t *testing.T) {
	entropy := make(mnemonic.Entropy, 16)

	phrase, err := entropy.Phrase(12, 4)
	require.NoError(t, err)
	require.Len(t, phrase, 12)
	require.Equal(t, zeroPhrase, phrase.Render(wordlist.English))
}

func TestFromPhrase_ZeroEntropy(t *testing.T) {
	phrase, err := mnemonic.ParsePhrase(wordlist.English, zeroPhrase, 12)
	require.NoError(t, err)

	entropy, err := mnemonic.FromPhrase(phrase, 16, 4)
	require.NoError(t, err)
	require.Equal(t, make(mnemonic.Entropy, 16), entropy)
}

func TestFromPhrase_CorruptedLastWord(t *testing.T) {
	// Swapping "about" for "abandon" keeps the entropy bits zero but zeroes
	// the checksum bits too; the recomputed digest no longer matches.
	text := strings.Replace(zeroPhrase, "about", "abandon", 1)

	phrase, err := mnemonic.ParsePhrase(wordlist.English, text, 12)
	require.NoError(t, err)

	_, err = mnemonic.FromPhrase(phrase, 16, 4)
	require.ErrorIs(t, err, errs.ErrChecksumInvalid)
}

func TestFromPhrase_ChecksumBitSensitivity(t *testing.T) {
	// The last word of the zero phrase is index 3: seven zero entropy bits
	// followed by checksum bits 0011. Flipping any single checksum bit must
	// fail; the entropy, and therefore the expected digest, is unchanged.
	for _, last := range []mnemonic.Index{2, 1, 7, 11} {
		phrase, err := mnemonic.ParsePhrase(wordlist.English, zeroPhrase, 12)
		require.NoError(t, err)

		phrase[11] = last
		_, err = mnemonic.FromPhrase(phrase, 16, 4)
		require.ErrorIs(t, err, errs.ErrChecksumInvalid, "last word index %d", last)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		size         int
		words        int
		checksumBits int
	}{
		{name: "16 bytes, 12 words, 4 bits", size: 16, words: 12, checksumBits: 4},
		{name: "32 bytes, 24 words, 8 bits", size: 32, words: 24, checksumBits: 8},
		{name: "1 byte, 1 word, 3 bits", size: 1, words: 1, checksumBits: 3},
		{name: "2 bytes, 2 words, 6 bits", size: 2, words: 2, checksumBits: 6},
		{name: "2 bytes, 3 words, 17 bits", size: 2, words: 3, checksumBits: 17},
		{name: "11 bytes, 8 words, no checksum", size: 11, words: 8, checksumBits: 0},
		{name: "48 bytes, 36 words, 12 bits", size: 48, words: 36, checksumBits: 12},
	}

	rng := rand.New(rand.NewSource(7))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				entropy := make(mnemonic.Entropy, tt.size)
				rng.Read(entropy)

				phrase, err := entropy.Phrase(tt.words, tt.checksumBits)
				require.NoError(t, err)
				require.Len(t, phrase, tt.words)

				got, err := mnemonic.FromPhrase(phrase, tt.size, tt.checksumBits)
				require.NoError(t, err)
				require.Equal(t, entropy, got)
			}
		})
	}
}

func TestRoundTrip_ThroughText(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	entropy := make(mnemonic.Entropy, 16)
	rng.Read(entropy)

	phrase, err := entropy.Phrase(12, 4)
	require.NoError(t, err)

	for _, list := range []mnemonic.Wordlist{wordlist.English, wordlist.French} {
		parsed, err := mnemonic.ParsePhrase(list, phrase.Render(list), 12)
		require.NoError(t, err)
		require.Equal(t, phrase, parsed)

		got, err := mnemonic.FromPhrase(parsed, 16, 4)
		require.NoError(t, err)
		require.Equal(t, entropy, got)
	}
}

func TestSizeContract_Violations(t *testing.T) {
	tests := []struct {
		name         string
		size         int
		words        int
		checksumBits int
	}{
		{name: "checksum off by one", size: 16, words: 12, checksumBits: 5},
		{name: "word count off by one", size: 16, words: 11, checksumBits: 4},
		{name: "entropy off by one", size: 15, words: 12, checksumBits: 4},
		{name: "all zero", size: 0, words: 1, checksumBits: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entropy := make(mnemonic.Entropy, tt.size)
			_, err := entropy.Phrase(tt.words, tt.checksumBits)
			require.ErrorIs(t, err, errs.ErrInvalidParameters)

			_, err = mnemonic.FromPhrase(make(mnemonic.Phrase, tt.words), tt.size, tt.checksumBits)
			require.ErrorIs(t, err, errs.ErrInvalidParameters)
		})
	}
}

func TestChecksumWiderThanDigest(t *testing.T) {
	entropy := make(mnemonic.Entropy, 16)
	require.Panics(t, func() {
		_, _ = entropy.Phrase(12, mnemonic.DigestBits+1)
	})
	require.Panics(t, func() {
		_, _ = mnemonic.FromPhrase(make(mnemonic.Phrase, 12), 16, mnemonic.DigestBits+1)
	})
}

func TestNew_CopiesInput(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	entropy := mnemonic.New(buf)
	buf[0] = 0xFF

	require.Equal(t, mnemonic.Entropy{1, 2, 3, 4}, entropy)
}

func TestGenerate(t *testing.T) {
	src := bytes.NewReader([]byte{9, 8, 7, 6, 5, 4, 3, 2})
	entropy, err := mnemonic.Generate(src, 8)
	require.NoError(t, err)
	require.Equal(t, mnemonic.Entropy{9, 8, 7, 6, 5, 4, 3, 2}, entropy)
}

func TestGenerate_ShortSource(t *testing.T) {
	src := bytes.NewReader([]byte{1, 2, 3})
	_, err := mnemonic.Generate(src, 16)
	require.Error(t, err)
}
