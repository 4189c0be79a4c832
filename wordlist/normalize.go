package wordlist

import (
	"github.com/arloliu/mnemo/mnemonic"
	"golang.org/x/text/unicode/norm"
)

// Normalized wraps list so that looked-up input and rendered output are
// NFKD-normalized.
//
// The core matches words byte-for-byte and the shipped tables store
// decomposed forms, so composed user input ("académie" typed with a
// precomposed é) would otherwise miss. The wrapper normalizes in both
// directions and passes everything else through unchanged.
func Normalized(list mnemonic.Wordlist) mnemonic.Wordlist {
	return &normalized{inner: list}
}

type normalized struct {
	inner mnemonic.Wordlist
}

func (n *normalized) Name() string {
	return n.inner.Name()
}

func (n *normalized) Separator() string {
	return n.inner.Separator()
}

func (n *normalized) Word(idx mnemonic.Index) string {
	return norm.NFKD.String(n.inner.Word(idx))
}

func (n *normalized) Lookup(word string) (mnemonic.Index, error) {
	return n.inner.Lookup(norm.NFKD.String(word))
}
