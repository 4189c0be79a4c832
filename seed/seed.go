// Package seed derives fixed-length secrets from a rendered mnemonic
// phrase using PBKDF2-HMAC-SHA512.
//
// The derivation consumes the phrase text, not the underlying entropy: the
// same entropy rendered through two different wordlists produces two
// different seeds. The salt is the fixed prefix "mnemonic" followed by an
// optional caller-supplied password.
package seed

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"

	"github.com/arloliu/mnemo/mnemonic"
)

const saltPrefix = "mnemonic"

const (
	// StandardIterations is the iteration count of the standard profile.
	StandardIterations = 2048

	// StandardSize is the output length of the standard profile in bytes.
	StandardSize = 64
)

// Derive renders p in the given wordlist and stretches the resulting text
// into a size-byte secret.
//
// Parameters:
//   - list: wordlist used to render the phrase
//   - p: the phrase to derive from
//   - password: optional protection password, may be nil
//   - iterations: PBKDF2 iteration count
//   - size: output length in bytes
func Derive(list mnemonic.Wordlist, p mnemonic.Phrase, password []byte, iterations, size int) []byte {
	return FromString(p.Render(list), password, iterations, size)
}

// FromString stretches an already-rendered phrase string into a size-byte
// secret. The phrase must be in the canonical form produced by
// Phrase.Render; callers working with decomposed scripts are responsible
// for normalization.
func FromString(phrase string, password []byte, iterations, size int) []byte {
	salt := make([]byte, 0, len(saltPrefix)+len(password))
	salt = append(salt, saltPrefix...)
	salt = append(salt, password...)

	return pbkdf2.Key([]byte(phrase), salt, iterations, size, sha512.New)
}
