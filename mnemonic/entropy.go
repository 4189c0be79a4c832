package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/arloliu/mnemo/bitpack"
	"github.com/arloliu/mnemo/errs"
)

// DigestBits is the width of the checksum digest. Checksum bit counts above
// this cannot be satisfied and are rejected as a programming error.
const DigestBits = sha256.Size * 8

// Entropy is a block of raw random bytes: the true secret a mnemonic phrase
// encodes. Treat it as immutable once created.
type Entropy []byte

// New copies b into a fresh Entropy block, detaching it from the caller's
// buffer.
func New(b []byte) Entropy {
	e := make(Entropy, len(b))
	copy(e, b)

	return e
}

// Generate reads size bytes from r into a new Entropy block. The randomness
// source is the caller's choice; pass crypto/rand.Reader for secrets.
func Generate(r io.Reader, size int) (Entropy, error) {
	e := make(Entropy, size)
	if _, err := io.ReadFull(r, e); err != nil {
		return nil, fmt.Errorf("failed to read entropy: %w", err)
	}

	return e, nil
}

// Phrase converts the entropy into a words-long phrase carrying a
// checksumBits-bit checksum.
//
// The entropy bytes, followed by the first checksumBits bits of their
// SHA-256 digest, are re-blocked into words symbols of 11 bits each. The
// size contract len(e)*8 + checksumBits == words*11 is validated first;
// violations return errs.ErrInvalidParameters and produce no output.
//
// checksumBits may be zero, in which case the phrase carries no checksum
// and decoding skips verification.
func (e Entropy) Phrase(words, checksumBits int) (Phrase, error) {
	if err := checkSizes(len(e), words, checksumBits); err != nil {
		return nil, err
	}

	digest := sha256.Sum256(e)

	// words*11 bits total; the source is the entropy plus however many
	// digest bytes cover checksumBits bits.
	src := make([]byte, 0, len(e)+(checksumBits+7)/8)
	src = append(src, e...)
	src = append(src, digest[:(checksumBits+7)/8]...)

	unpacker := bitpack.NewUnpacker(src)
	phrase := make(Phrase, words)
	for i := range phrase {
		// Unpacker symbols are masked to 11 bits, always a valid Index.
		phrase[i] = Index(unpacker.Read())
	}

	return phrase, nil
}

// FromPhrase recovers a size-byte Entropy block from p, verifying the
// embedded checksumBits-bit checksum.
//
// The phrase symbols are packed back into bytes: the first size bytes are
// the candidate entropy, the remainder the candidate checksum. The checksum
// is compared against a fresh SHA-256 digest of the candidate entropy, full
// bytes first and a final partial byte under a high-bits mask; any mismatch
// returns errs.ErrChecksumInvalid. A checksumBits of zero skips the
// comparison entirely.
func FromPhrase(p Phrase, size, checksumBits int) (Entropy, error) {
	if err := checkSizes(size, len(p), checksumBits); err != nil {
		return nil, err
	}

	buf := make([]byte, bitpack.PackedSize(len(p)))
	packer := bitpack.NewPacker(buf)
	for _, idx := range p {
		packer.Write(uint16(idx))
	}
	if n := packer.Finish(); n != len(buf) {
		panic(fmt.Sprintf("mnemonic: packed %d bytes, expected %d", n, len(buf)))
	}

	entropy := Entropy(buf[:size:size])

	if checksumBits > 0 {
		digest := sha256.Sum256(entropy)
		if err := compareChecksum(buf[size:], digest[:], checksumBits); err != nil {
			return nil, err
		}
	}

	return entropy, nil
}

// compareChecksum compares the leading bits of got and want: whole bytes for
// every complete 8-bit group, then the top rem bits of the final byte under
// the mask ((1<<rem)-1) << (8-rem). It short-circuits at the first mismatch.
func compareChecksum(got, want []byte, bits int) error {
	ofs := 0
	for rem := bits; rem > 0; ofs++ {
		if rem >= 8 {
			if got[ofs] != want[ofs] {
				return fmt.Errorf("%w: byte %d mismatch", errs.ErrChecksumInvalid, ofs)
			}
			rem -= 8

			continue
		}

		mask := byte(((1 << rem) - 1) << (8 - rem))
		if got[ofs]&mask != want[ofs]&mask {
			return fmt.Errorf("%w: %d trailing bits mismatch", errs.ErrChecksumInvalid, rem)
		}
		rem = 0
	}

	return nil
}

// checkSizes validates the size contract at a conversion boundary.
//
// A checksum wider than the digest is a caller bypassing the public entry
// points rather than a recoverable configuration error, so it panics.
func checkSizes(size, words, checksumBits int) error {
	if checksumBits < 0 || checksumBits > DigestBits {
		panic(fmt.Sprintf("mnemonic: checksum bits %d outside [0, %d]", checksumBits, DigestBits))
	}

	totalBits := size*8 + checksumBits
	if totalBits != words*IndexBits {
		return fmt.Errorf("%w: checksum-bits=%d total-bits=%d words=%d",
			errs.ErrInvalidParameters, checksumBits, totalBits, words)
	}

	return nil
}
