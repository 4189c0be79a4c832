package mnemonic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mnemo/errs"
	"github.com/arloliu/mnemo/mnemonic"
	"github.com/arloliu/mnemo/wordlist"
)

func TestPhrase_Render(t *testing.T) {
	phrase := mnemonic.Phrase{0, 3, 2047}
	text := phrase.Render(wordlist.English)
	require.Equal(t, "abandon about zoo", text)
}

func TestPhrase_Render_Empty(t *testing.T) {
	require.Equal(t, "", mnemonic.Phrase{}.Render(wordlist.English))
}

func TestParsePhrase(t *testing.T) {
	phrase, err := mnemonic.ParsePhrase(wordlist.English, "abandon about zoo", 3)
	require.NoError(t, err)
	require.Equal(t, mnemonic.Phrase{0, 3, 2047}, phrase)
}

func TestParsePhrase_WrongWordCount(t *testing.T) {
	_, err := mnemonic.ParsePhrase(wordlist.English, "abandon about zoo", 12)
	require.ErrorIs(t, err, errs.ErrInvalidWordCount)
	require.ErrorContains(t, err, "expected 12, got 3")
}

func TestParsePhrase_UnknownWord(t *testing.T) {
	_, err := mnemonic.ParsePhrase(wordlist.English, "abandon nonsense zoo", 3)
	require.ErrorIs(t, err, errs.ErrWordNotFound)
	require.ErrorContains(t, err, "word 1")
}

func TestParsePhrase_RoundTrip(t *testing.T) {
	phrase := mnemonic.Phrase{0, 1, 2, 3, 1024, 2045, 2046, 2047}
	for _, list := range []mnemonic.Wordlist{wordlist.English, wordlist.French} {
		parsed, err := mnemonic.ParsePhrase(list, phrase.Render(list), len(phrase))
		require.NoError(t, err)
		require.Equal(t, phrase, parsed)
	}
}

func TestNewIndex(t *testing.T) {
	idx, err := mnemonic.NewIndex(0)
	require.NoError(t, err)
	require.Equal(t, mnemonic.Index(0), idx)

	idx, err = mnemonic.NewIndex(2047)
	require.NoError(t, err)
	require.Equal(t, mnemonic.MaxIndex, idx)

	_, err = mnemonic.NewIndex(2048)
	require.ErrorIs(t, err, errs.ErrIndexRange)
}
