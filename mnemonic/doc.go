// Package mnemonic converts fixed-size entropy blocks to and from
// human-pronounceable word phrases with an embedded checksum.
//
// An Entropy block of N bytes, followed by the first CS bits of its SHA-256
// digest, is re-blocked into W symbols of 11 bits each (one symbol per
// word). The three sizes are tied together by the size contract
//
//	N*8 + CS = W*11
//
// which every conversion entry point validates before doing any work.
// Decoding recovers the entropy, recomputes the digest and compares the
// embedded checksum bits, so a mistyped or corrupted phrase is detected.
//
// # Basic Usage
//
// Encoding 16 bytes of entropy into 12 words with a 4-bit checksum:
//
//	entropy, _ := mnemonic.Generate(rand.Reader, 16)
//	phrase, _ := entropy.Phrase(12, 4)
//	text := phrase.Render(wordlist.English)
//
// Recovering the entropy from the phrase text:
//
//	phrase, _ := mnemonic.ParsePhrase(wordlist.English, text, 12)
//	entropy, _ := mnemonic.FromPhrase(phrase, 16, 4)
//
// Word tables are injected through the Wordlist interface; the package never
// inspects a wordlist beyond its two lookup operations and its separator.
// Word matching is exact and case-sensitive: no Unicode normalization is
// performed here. Callers working with decomposed scripts can wrap their
// wordlist with the wordlist package's Normalized wrapper.
//
// All operations are pure, synchronous transformations over caller-owned
// buffers; distinct conversions share no state and are safe to run
// concurrently.
package mnemonic
