package mnemonic

// Wordlist is the lookup capability a phrase needs to render to and parse
// from text: a total bijection between the 2048 valid Index values and 2048
// distinct words, plus the separator used between words in phrase text.
//
// Word implementations must be total over all valid indices. Lookup returns
// an error wrapping errs.ErrWordNotFound for words outside the list; whether
// the lookup is logarithmic, linear or hash-based is the implementation's
// choice. The wordlist package provides the standard implementations.
type Wordlist interface {
	// Name identifies the wordlist, e.g. "english".
	Name() string

	// Separator is the string joining words in a rendered phrase.
	Separator() string

	// Word returns the word for a valid index.
	Word(idx Index) string

	// Lookup resolves a word back to its index.
	Lookup(word string) (Index, error)
}
