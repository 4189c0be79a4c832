// Package bitpack provides lossless multiplexing between a stream of 8-bit
// bytes and a stream of 11-bit symbols.
//
// A mnemonic word carries 11 bits, so converting binary data to and from a
// word sequence requires re-blocking the bit stream between the two widths
// with exact carry handling at every boundary. This package implements both
// directions as small accumulator-based state machines:
//
//   - Packer consumes 11-bit symbols and emits 8-bit bytes, MSB-first.
//   - Unpacker consumes 8-bit bytes and emits 11-bit symbols, MSB-first.
//
// Both operate on caller-provided, exactly-sized buffers and perform no heap
// allocation of their own. A Packer or Unpacker instance is scoped to a
// single conversion; it carries leftover bits across calls but has no
// meaning outside an in-flight pack or unpack operation.
//
// # Usage Guidance
//
// This package is the low-level half of the mnemonic codec. Most users
// should use the mnemonic package instead, which wires the transcoder to
// checksum handling and wordlist rendering.
//
// Buffer sizing and symbol range are caller contracts, not runtime inputs:
// writing a symbol wider than 11 bits, overflowing the destination buffer,
// or reading past the source buffer panics. The higher-level conversion
// entry points validate all sizes before any transcoding starts, so these
// panics indicate a bypassed size contract.
package bitpack
