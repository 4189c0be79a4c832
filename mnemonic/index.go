package mnemonic

import (
	"fmt"

	"github.com/arloliu/mnemo/bitpack"
	"github.com/arloliu/mnemo/errs"
)

const (
	// IndexBits is the number of bits one word index carries.
	IndexBits = bitpack.SymbolBits

	// MaxIndex is the highest valid word index.
	MaxIndex Index = bitpack.MaxSymbol

	// WordlistSize is the number of entries a wordlist must have: one word
	// per possible index.
	WordlistSize = int(MaxIndex) + 1
)

// Index identifies one word of a 2048-entry wordlist. A valid Index is
// always in [0, MaxIndex]; use NewIndex to construct one from untrusted
// input.
type Index uint16

// NewIndex validates v and returns it as an Index.
//
// Values above MaxIndex return errs.ErrIndexRange; they are never truncated
// or wrapped.
func NewIndex(v uint16) (Index, error) {
	if v > uint16(MaxIndex) {
		return 0, fmt.Errorf("%w: %d > %d", errs.ErrIndexRange, v, MaxIndex)
	}

	return Index(v), nil
}
