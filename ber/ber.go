// Package ber implements the semantic layer of the ASN.1 Basic Encoding
// Rules and Distinguished Encoding Rules, as defined in [Rec. ITU-T X.690].
// It builds a flat, pre-order vector of nodes from an input buffer using the
// tag/length syntax in strix.dev/der/tlv, and offers [Node] views and
// [Iterator]s over that vector without ever constructing an owning tree.
//
// A [Parser] is built once over a byte slice; [Parse] is the common entry
// point and returns the single root [Node]. From there, [Node.Children]
// walks direct children, and the per-type Decode functions (DecodeBoolean,
// DecodeInteger, DecodeObjectIdentifier, and so on) pull Go values out of a
// node's content. A [Serializer] does the reverse: it accumulates
// TLV-encoded content into a growing buffer.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package ber

import (
	"fmt"

	"strix.dev/der/asn1"
)

// MaxDepth is the maximum nesting depth a [Parser] accepts, counting the
// root node as depth 1. Input nested deeper than this fails with
// [asn1.ErrInvalidObject].
const MaxDepth = 50

// MaxNodes is the maximum number of flat nodes a [Parser] accepts across an
// entire parse. Input that would produce more fails with
// [asn1.ErrInvalidObject].
const MaxNodes = 100_000

// A RawValue represents an un-decoded ASN.1 object: its identifier, whether
// it is constructed, and its raw content octets. [Node.Raw] builds one from
// a parsed node; it is an escape hatch for callers that want to inspect or
// print a value — an unrecognized tag, a diagnostic dump — without
// committing to one of the typed Decode functions.
type RawValue struct {
	Tag         asn1.Tag
	Constructed bool
	Bytes       []byte
}

// String returns a string representation of rv. The byte contents of rv are
// only included if they are short enough.
func (rv RawValue) String() string {
	constructed := "primitive"
	if rv.Constructed {
		constructed = "constructed"
	}
	if len(rv.Bytes) > 24 {
		return fmt.Sprintf("RawValue{%s (%s) {%d bytes}}", rv.Tag.String(), constructed, len(rv.Bytes))
	}
	return fmt.Sprintf("RawValue{%s (%s) {% X}}", rv.Tag.String(), constructed, rv.Bytes)
}
