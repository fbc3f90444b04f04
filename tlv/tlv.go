// Package tlv implements the syntactic layer of the tag-length-value format
// used by the Basic Encoding Rules (BER) and the Distinguished Encoding Rules
// (DER), as specified in [Rec. ITU-T X.690]. This package deals with
// decoding and encoding individual identifier and length octets; the
// semantic layer — building a tree of values from a sequence of TLVs and
// mediating with Go values — lives in [strix.dev/der/ber].
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package tlv

// RuleSet selects how strictly length octets are interpreted. The identifier
// octets are interpreted identically under both rule sets; only §8.1.3 of
// Rec. ITU-T X.690 (length) differs between BER and DER.
//
//go:generate stringer -type=RuleSet
type RuleSet uint8

const (
	// Distinguished enforces DER: no indefinite length, no non-minimal long
	// form, and no use of the long form where the short form suffices.
	Distinguished RuleSet = iota
	// Basic permits everything DER does plus indefinite-length constructed
	// encodings and non-minimal (but otherwise well-formed) length octets.
	Basic
)

// LengthIndefinite is returned by [DecodeLength] in place of a length when the
// constructed indefinite-length form (a lone 0x80 byte) was read. It is never
// produced by [EncodeLength].
const LengthIndefinite = -1

// maxBase128Tag bounds the decoded tag number from a long-form identifier so
// that a maliciously large tag cannot exhaust memory or overflow a uint; it
// is far above any tag number found in real-world use.
const maxBase128Tag = 1 << 32
