package bitpack

// Unpacker converts a stream of bytes back into 11-bit symbols.
//
// Bits are consumed MSB-first, mirroring Packer. The accumulator is 32 bits
// wide: the deepest reachable state is 10 pending bits plus 8 new ones, and
// 18 bits would overflow a 16-bit accumulator when chained.
type Unpacker struct {
	acc  uint32 // pending bits, valid in the low 'bits' positions
	bits int    // number of valid pending bits, always 0..10 between calls
	src  []byte
	pos  int
}

// NewUnpacker creates an Unpacker that reads from src. The caller must
// supply exactly enough bytes for the symbols it reads; the unpacker buffers
// no message of its own, so running out of bytes panics.
func NewUnpacker(src []byte) *Unpacker {
	return &Unpacker{src: src}
}

// Read returns the next 11-bit symbol from the stream.
//
// A single input byte yields zero or one symbols, so Read consumes one or
// two bytes per call. Reading past the end of the source is a programming
// error and panics: the conversion entry points size the byte stream from
// the validated word count before unpacking starts.
func (u *Unpacker) Read() uint16 {
	for u.bits < SymbolBits {
		if u.pos >= len(u.src) {
			panic("bitpack: source buffer exhausted")
		}
		u.acc = u.acc<<8 | uint32(u.src[u.pos])
		u.pos++
		u.bits += 8
	}

	u.bits -= SymbolBits

	return uint16(u.acc>>u.bits) & MaxSymbol
}
