package mnemonic

import (
	"fmt"
	"strings"

	"github.com/arloliu/mnemo/errs"
)

// Phrase is an ordered sequence of word indices, one per mnemonic word. It
// is wordlist-agnostic: the same Phrase renders to different text in
// different wordlists, while always decoding to the same entropy.
type Phrase []Index

// Render returns the phrase text in the given wordlist: each word joined by
// the wordlist separator, with no leading or trailing separator.
func (p Phrase) Render(list Wordlist) string {
	var sb strings.Builder
	for i, idx := range p {
		if i > 0 {
			sb.WriteString(list.Separator())
		}
		sb.WriteString(list.Word(idx))
	}

	return sb.String()
}

// ParsePhrase builds a Phrase from text containing exactly words words
// separated by the wordlist separator.
//
// Matching is exact and case-sensitive. A wrong token count returns
// errs.ErrInvalidWordCount with the expected and actual counts. The first
// token the wordlist cannot resolve returns errs.ErrWordNotFound tagged
// with the token position; parsing stops there rather than collecting
// further errors.
func ParsePhrase(list Wordlist, text string, words int) (Phrase, error) {
	tokens := strings.Split(text, list.Separator())
	if len(tokens) != words {
		return nil, fmt.Errorf("%w: expected %d, got %d", errs.ErrInvalidWordCount, words, len(tokens))
	}

	phrase := make(Phrase, len(tokens))
	for i, token := range tokens {
		idx, err := list.Lookup(token)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		phrase[i] = idx
	}

	return phrase, nil
}
