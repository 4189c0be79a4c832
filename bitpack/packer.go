package bitpack

const (
	// SymbolBits is the width of one symbol in bits. Each mnemonic word
	// maps to exactly one symbol.
	SymbolBits = 11

	// MaxSymbol is the largest value representable in SymbolBits bits.
	MaxSymbol = 1<<SymbolBits - 1
)

// PackedSize returns the number of bytes produced by packing count symbols,
// including the final partially-filled byte when count*11 is not a multiple
// of eight.
func PackedSize(count int) int {
	return (count*SymbolBits + 7) / 8
}

// Packer converts a stream of 11-bit symbols into a stream of bytes.
//
// Bits are emitted MSB-first: the high bits of the first symbol become the
// high bits of the first output byte. Pending bits are carried in a 32-bit
// accumulator between calls; each Write emits one or two bytes and leaves at
// most seven bits pending. Finish flushes any remainder as one final byte,
// left-justified and zero-padded.
type Packer struct {
	acc  uint32 // pending bits, valid in the low 'bits' positions
	bits int    // number of valid pending bits, always 0..7 between calls
	dst  []byte
	pos  int
}

// NewPacker creates a Packer that writes into dst. The caller sizes dst for
// the full output, typically with PackedSize; overflowing it panics.
func NewPacker(dst []byte) *Packer {
	return &Packer{dst: dst}
}

// Write appends one 11-bit symbol to the stream.
//
// With 0..7 bits pending before the call, appending 11 bits yields 11..18
// bits, so Write always emits at least one byte and at most two. Symbols
// above MaxSymbol panic; the valid range is enforced where symbols are
// constructed, so a wider value here is a programming error.
func (p *Packer) Write(sym uint16) {
	if sym > MaxSymbol {
		panic("bitpack: symbol exceeds 11 bits")
	}

	p.acc = p.acc<<SymbolBits | uint32(sym)
	p.bits += SymbolBits
	for p.bits >= 8 {
		p.bits -= 8
		p.emit(byte(p.acc >> p.bits))
	}
}

// Finish flushes pending bits, if any, as one final byte with the pending
// bits in the most-significant positions and zeros below. It returns the
// total number of bytes written. If no bits are pending, no byte is emitted.
//
// The flush is what carries a trailing checksum remainder that does not end
// on a byte boundary.
func (p *Packer) Finish() int {
	if p.bits > 0 {
		p.emit(byte(p.acc << (8 - p.bits)))
		p.acc = 0
		p.bits = 0
	}

	return p.pos
}

// Len returns the number of bytes written so far, excluding pending bits.
func (p *Packer) Len() int {
	return p.pos
}

func (p *Packer) emit(b byte) {
	if p.pos >= len(p.dst) {
		panic("bitpack: destination buffer full")
	}
	p.dst[p.pos] = b
	p.pos++
}
