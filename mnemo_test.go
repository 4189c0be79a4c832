package mnemo_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mnemo"
	"github.com/arloliu/mnemo/errs"
	"github.com/arloliu/mnemo/wordlist"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestProfile(t *testing.T) {
	tests := []struct {
		size         int
		words        int
		checksumBits int
	}{
		{size: 16, words: 12, checksumBits: 4},
		{size: 20, words: 15, checksumBits: 5},
		{size: 24, words: 18, checksumBits: 6},
		{size: 28, words: 21, checksumBits: 7},
		{size: 32, words: 24, checksumBits: 8},
	}
	for _, tt := range tests {
		words, checksumBits, err := mnemo.Profile(tt.size)
		require.NoError(t, err)
		require.Equal(t, tt.words, words)
		require.Equal(t, tt.checksumBits, checksumBits)
	}
}

func TestProfile_InvalidSizes(t *testing.T) {
	for _, size := range []int{0, 12, 15, 17, 33, 36} {
		_, _, err := mnemo.Profile(size)
		require.ErrorIs(t, err, errs.ErrInvalidEntropySize, "size %d", size)
	}
}

func TestEncode_ZeroEntropy(t *testing.T) {
	text, err := mnemo.Encode(wordlist.English, make([]byte, 16))
	require.NoError(t, err)
	require.Equal(t, zeroPhrase, text)
}

func TestEncode_NonStandardLength(t *testing.T) {
	_, err := mnemo.Encode(wordlist.English, make([]byte, 17))
	require.ErrorIs(t, err, errs.ErrInvalidEntropySize)
}

func TestDecode_ZeroPhrase(t *testing.T) {
	entropy, err := mnemo.Decode(wordlist.English, zeroPhrase)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 16), []byte(entropy))
}

func TestDecode_WrongWordCount(t *testing.T) {
	_, err := mnemo.Decode(wordlist.English, "abandon abandon about")
	require.ErrorIs(t, err, errs.ErrInvalidWordCount)
}

func TestDecode_UnknownWord(t *testing.T) {
	text := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon nonsense"
	_, err := mnemo.Decode(wordlist.English, text)
	require.ErrorIs(t, err, errs.ErrWordNotFound)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		for _, list := range []*wordlist.List{wordlist.English, wordlist.French} {
			entropy, err := mnemo.Generate(rand.Reader, size)
			require.NoError(t, err)

			text, err := mnemo.Encode(list, entropy)
			require.NoError(t, err)

			got, err := mnemo.Decode(list, text)
			require.NoError(t, err)
			require.Equal(t, entropy, got)
		}
	}
}

func TestGenerate(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0xAB}, 32))
	entropy, err := mnemo.Generate(src, 32)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0xAB}, 32), []byte(entropy))
}

func TestSeed_StandardProfile(t *testing.T) {
	got := mnemo.Seed(zeroPhrase, []byte("TREZOR"))
	require.Len(t, got, 64)

	again := mnemo.Seed(zeroPhrase, []byte("TREZOR"))
	require.Equal(t, got, again)
}
