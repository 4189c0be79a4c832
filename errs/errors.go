// Package errs defines the sentinel errors shared across the mnemo packages.
//
// Callers match these errors with errors.Is; call sites wrap them with
// fmt.Errorf("%w: ...") to attach context.
package errs

import "errors"

var (
	// ErrInvalidParameters indicates that the entropy size, checksum bit
	// count and word count passed to a conversion do not satisfy the size
	// contract bytes*8 + checksumBits == words*11.
	ErrInvalidParameters = errors.New("mismatched entropy/checksum/word sizes")

	// ErrChecksumInvalid indicates that the checksum bits embedded in a
	// phrase do not match the digest of the recovered entropy. It signals a
	// corrupted or mistyped phrase.
	ErrChecksumInvalid = errors.New("invalid checksum")

	// ErrWordNotFound indicates that a phrase token is not part of the
	// wordlist used to parse it.
	ErrWordNotFound = errors.New("word not found in wordlist")

	// ErrInvalidWordCount indicates that a phrase contains a different
	// number of words than the parse call expects.
	ErrInvalidWordCount = errors.New("invalid number of words")

	// ErrIndexRange indicates an attempt to construct a word index outside
	// the valid range [0, 2047].
	ErrIndexRange = errors.New("word index out of range")

	// ErrInvalidWordlist indicates that a wordlist does not form a total
	// bijection over 2048 distinct words.
	ErrInvalidWordlist = errors.New("invalid wordlist")

	// ErrInvalidEntropySize indicates an entropy length outside the
	// standard profile table (16, 20, 24, 28 or 32 bytes).
	ErrInvalidEntropySize = errors.New("invalid entropy size")
)
