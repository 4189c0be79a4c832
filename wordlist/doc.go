// Package wordlist provides the standard word tables used to render and
// parse mnemonic phrases, and a constructor for custom 2048-word lists.
//
// A List is a validated total bijection between the 2048 word indices and
// 2048 distinct words. Word-to-index lookups go through an xxHash64-keyed
// map with verify-on-hit, so they are constant-time regardless of whether
// the underlying table is sorted.
//
// Lookups are exact and case-sensitive. The shipped tables store words in
// NFKD-decomposed form (visible in the accented French words); callers
// accepting composed user input can wrap any list with Normalized to get
// transparent NFKD normalization on both directions.
package wordlist
