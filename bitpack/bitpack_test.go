package bitpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Known vector: eight symbols of 0b000_0000_0001 followed by eight symbols
// of 0b100_0000_0001, packed into 22 bytes (176 bits, no remainder).
var (
	knownSymbols = []uint16{
		0b000_0000_0001, 0b000_0000_0001, 0b000_0000_0001, 0b000_0000_0001,
		0b000_0000_0001, 0b000_0000_0001, 0b000_0000_0001, 0b000_0000_0001,
		0b100_0000_0001, 0b100_0000_0001, 0b100_0000_0001, 0b100_0000_0001,
		0b100_0000_0001, 0b100_0000_0001, 0b100_0000_0001, 0b100_0000_0001,
	}
	knownBytes = []byte{
		0b0000_0000, 0b0010_0000, 0b0000_0100, 0b0000_0000,
		0b1000_0000, 0b0001_0000, 0b0000_0010, 0b0000_0000,
		0b0100_0000, 0b0000_1000, 0b0000_0001, 0b1000_0000,
		0b0011_0000, 0b0000_0110, 0b0000_0000, 0b1100_0000,
		0b0001_1000, 0b0000_0011, 0b0000_0000, 0b0110_0000,
		0b0000_1100, 0b0000_0001,
	}
)

func TestPacker_KnownVector(t *testing.T) {
	dst := make([]byte, PackedSize(len(knownSymbols)))
	packer := NewPacker(dst)
	for _, sym := range knownSymbols {
		packer.Write(sym)
	}
	n := packer.Finish()

	require.Equal(t, len(knownBytes), n)
	require.Equal(t, knownBytes, dst)
}

func TestUnpacker_KnownVector(t *testing.T) {
	unpacker := NewUnpacker(knownBytes)
	for i, want := range knownSymbols {
		require.Equal(t, want, unpacker.Read(), "symbol %d", i)
	}
}

func TestPackedSize(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{count: 0, want: 0},
		{count: 1, want: 2},  // 11 bits
		{count: 2, want: 3},  // 22 bits
		{count: 3, want: 5},  // 33 bits
		{count: 8, want: 11}, // 88 bits, exact byte boundary
		{count: 12, want: 17},
		{count: 24, want: 33},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, PackedSize(tt.count), "count=%d", tt.count)
	}
}

func TestPacker_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for count := 1; count <= 64; count++ {
		symbols := make([]uint16, count)
		for i := range symbols {
			symbols[i] = uint16(rng.Intn(MaxSymbol + 1))
		}

		dst := make([]byte, PackedSize(count))
		packer := NewPacker(dst)
		for _, sym := range symbols {
			packer.Write(sym)
		}
		n := packer.Finish()
		require.Equal(t, PackedSize(count), n, "count=%d", count)

		unpacker := NewUnpacker(dst[:n])
		for i, want := range symbols {
			require.Equal(t, want, unpacker.Read(), "count=%d symbol=%d", count, i)
		}
	}
}

func TestPacker_FinishWithoutRemainder(t *testing.T) {
	// 8 symbols = 88 bits = exactly 11 bytes, nothing pending at Finish.
	dst := make([]byte, PackedSize(8))
	packer := NewPacker(dst)
	for i := 0; i < 8; i++ {
		packer.Write(MaxSymbol)
	}

	require.Equal(t, 11, packer.Len())
	require.Equal(t, 11, packer.Finish())
}

func TestPacker_FinishPadsRemainder(t *testing.T) {
	// One symbol leaves 3 pending bits; Finish left-justifies them.
	dst := make([]byte, PackedSize(1))
	packer := NewPacker(dst)
	packer.Write(0b111_1111_1111)

	require.Equal(t, 1, packer.Len())
	require.Equal(t, 2, packer.Finish())
	require.Equal(t, []byte{0xFF, 0b1110_0000}, dst)
}

func TestPacker_SymbolOutOfRange(t *testing.T) {
	packer := NewPacker(make([]byte, 2))
	require.Panics(t, func() { packer.Write(MaxSymbol + 1) })
}

func TestPacker_DestinationOverflow(t *testing.T) {
	packer := NewPacker(make([]byte, 1))
	packer.Write(0) // emits one byte, three bits pending
	require.Panics(t, func() { packer.Write(0) })
}

func TestUnpacker_SourceExhausted(t *testing.T) {
	unpacker := NewUnpacker([]byte{0xAB})
	require.Panics(t, func() { unpacker.Read() })
}
