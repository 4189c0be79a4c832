// Package mnemo converts binary secrets to and from human-transcribable
// mnemonic phrases with an embedded checksum, and derives fixed-length
// seeds from the rendered phrase text.
//
// Each word of a phrase carries 11 bits drawn from a 2048-word table. An
// N-byte entropy block followed by CS checksum bits (the leading bits of
// its SHA-256 digest) maps to W words under the size contract
//
//	N*8 + CS = W*11
//
// so a mistyped or corrupted phrase fails checksum verification on decode.
//
// # Basic Usage
//
// Encoding a freshly generated 16-byte secret with the standard profile
// (12 words, 4 checksum bits):
//
//	import "github.com/arloliu/mnemo"
//
//	entropy, _ := mnemo.Generate(rand.Reader, 16)
//	phrase, _ := mnemo.Encode(wordlist.English, entropy)
//	// "limb capable ranch bird wet funny wing nature digital mixture box purpose"
//
// Recovering the secret, with checksum verification:
//
//	entropy, err := mnemo.Decode(wordlist.English, phrase)
//
// Deriving a 64-byte wallet seed from the phrase text:
//
//	secret := mnemo.Seed(phrase, []byte("my password"))
//
// # Package Structure
//
// This package provides the standard profiles (16 to 32 bytes of entropy,
// one checksum bit per four entropy bytes) as thin wrappers around the
// subpackages. For arbitrary entropy/checksum/word geometries, custom
// wordlists or non-standard seed parameters, use the mnemonic, wordlist
// and seed packages directly.
package mnemo

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/mnemo/errs"
	"github.com/arloliu/mnemo/mnemonic"
	"github.com/arloliu/mnemo/seed"
)

const (
	// MinEntropySize is the smallest entropy length of the standard
	// profiles, in bytes.
	MinEntropySize = 16

	// MaxEntropySize is the largest entropy length of the standard
	// profiles, in bytes.
	MaxEntropySize = 32
)

// Profile returns the standard word count and checksum bit count for an
// entropy length: one checksum bit per 32 entropy bits, so 16 bytes map to
// 12 words with 4 checksum bits, up to 32 bytes mapping to 24 words with 8.
//
// Lengths outside 16..32 bytes or not divisible by four return
// errs.ErrInvalidEntropySize.
func Profile(entropySize int) (words, checksumBits int, err error) {
	if entropySize < MinEntropySize || entropySize > MaxEntropySize || entropySize%4 != 0 {
		return 0, 0, fmt.Errorf("%w: %d bytes (want 16, 20, 24, 28 or 32)",
			errs.ErrInvalidEntropySize, entropySize)
	}

	checksumBits = entropySize * 8 / 32
	words = (entropySize*8 + checksumBits) / mnemonic.IndexBits

	return words, checksumBits, nil
}

// Generate reads size bytes of entropy from r. Pass crypto/rand.Reader for
// real secrets; the package never generates randomness on its own.
func Generate(r io.Reader, size int) (mnemonic.Entropy, error) {
	return mnemonic.Generate(r, size)
}

// Encode renders entropy as a phrase string in the given wordlist using the
// standard profile for its length.
func Encode(list mnemonic.Wordlist, entropy []byte) (string, error) {
	words, checksumBits, err := Profile(len(entropy))
	if err != nil {
		return "", err
	}

	phrase, err := mnemonic.Entropy(entropy).Phrase(words, checksumBits)
	if err != nil {
		return "", err
	}

	return phrase.Render(list), nil
}

// Decode parses a standard-profile phrase string and recovers its entropy,
// verifying the embedded checksum.
//
// The profile is inferred from the word count: 12, 15, 18, 21 or 24 words.
// Other counts return errs.ErrInvalidWordCount.
func Decode(list mnemonic.Wordlist, text string) (mnemonic.Entropy, error) {
	words := len(strings.Split(text, list.Separator()))

	size, checksumBits, err := profileForWords(words)
	if err != nil {
		return nil, err
	}

	phrase, err := mnemonic.ParsePhrase(list, text, words)
	if err != nil {
		return nil, err
	}

	return mnemonic.FromPhrase(phrase, size, checksumBits)
}

// Seed derives the standard 64-byte seed from a rendered phrase string and
// an optional password, using 2048 PBKDF2-HMAC-SHA512 iterations.
//
// The phrase is consumed as text and is not checksum-verified here; use
// Decode first to validate user input.
func Seed(phrase string, password []byte) []byte {
	return seed.FromString(phrase, password, seed.StandardIterations, seed.StandardSize)
}

// profileForWords inverts Profile: every standard profile has 33 phrase
// bits per 32 entropy bits, so the word count must be a multiple of three
// in 12..24.
func profileForWords(words int) (size, checksumBits int, err error) {
	if words < 12 || words > 24 || words%3 != 0 {
		return 0, 0, fmt.Errorf("%w: %d words (want 12, 15, 18, 21 or 24)",
			errs.ErrInvalidWordCount, words)
	}

	totalBits := words * mnemonic.IndexBits
	checksumBits = totalBits / 33
	size = (totalBits - checksumBits) / 8

	return size, checksumBits, nil
}
