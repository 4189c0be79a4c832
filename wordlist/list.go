package wordlist

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/mnemo/errs"
	"github.com/arloliu/mnemo/mnemonic"
)

// List is a validated 2048-entry wordlist backed by a hash index.
//
// Construction verifies the bijection invariant once; after that, Word is a
// direct table access and Lookup is a single map probe. A List is immutable
// and safe for concurrent use.
type List struct {
	name   string
	sep    string
	words  []string
	byHash map[uint64]mnemonic.Index
}

var _ mnemonic.Wordlist = (*List)(nil)

// New builds a List from exactly 2048 distinct words.
//
// The word-to-index map is keyed by the xxHash64 of each word. Two words
// hashing to the same key, whether duplicates or a genuine collision, break
// the bijection the same way and are rejected with errs.ErrInvalidWordlist.
//
// Parameters:
//   - name: wordlist identifier, e.g. "english"
//   - separator: string joining words in rendered phrases, typically " "
//   - words: the 2048 words in index order
//
// Returns:
//   - *List: the validated wordlist
//   - error: errs.ErrInvalidWordlist if the table is the wrong size or has
//     duplicate entries
func New(name, separator string, words []string) (*List, error) {
	if len(words) != mnemonic.WordlistSize {
		return nil, fmt.Errorf("%w: %s has %d words, need %d",
			errs.ErrInvalidWordlist, name, len(words), mnemonic.WordlistSize)
	}

	byHash := make(map[uint64]mnemonic.Index, len(words))
	for i, word := range words {
		h := xxhash.Sum64String(word)
		if prev, ok := byHash[h]; ok {
			return nil, fmt.Errorf("%w: %s words %q (%d) and %q (%d) collide",
				errs.ErrInvalidWordlist, name, words[prev], prev, word, i)
		}
		byHash[h] = mnemonic.Index(i) //nolint:gosec // i < 2048
	}

	return &List{
		name:   name,
		sep:    separator,
		words:  words,
		byHash: byHash,
	}, nil
}

// mustNew backs the package-level standard lists; their tables are static
// and covered by tests, so a construction failure is a build defect.
func mustNew(name, separator string, words []string) *List {
	l, err := New(name, separator, words)
	if err != nil {
		panic(err)
	}

	return l
}

// Name returns the wordlist identifier.
func (l *List) Name() string {
	return l.name
}

// Separator returns the string joining words in rendered phrases.
func (l *List) Separator() string {
	return l.sep
}

// Word returns the word at idx.
func (l *List) Word(idx mnemonic.Index) string {
	return l.words[idx]
}

// Lookup resolves word to its index.
//
// The hash hit is verified against the table, so a non-member word that
// happens to share a member's hash is still rejected. Unknown words return
// errs.ErrWordNotFound carrying the word.
func (l *List) Lookup(word string) (mnemonic.Index, error) {
	idx, ok := l.byHash[xxhash.Sum64String(word)]
	if !ok || l.words[idx] != word {
		return 0, fmt.Errorf("%w: %q", errs.ErrWordNotFound, word)
	}

	return idx, nil
}
