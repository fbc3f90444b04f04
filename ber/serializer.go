package ber

import (
	"strix.dev/der/asn1"
	"strix.dev/der/tlv"
)

// Serializer accumulates a BER/DER encoding into a growing byte buffer. The
// zero value is ready to use. The Append and Write methods that build a TLV
// never emit the indefinite length form; only [Serializer.WriteNode], which
// copies a parsed node verbatim, can reproduce one from BER input.
type Serializer struct {
	buf []byte
}

// NewSerializer returns an empty Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Bytes returns the accumulated output. The returned slice aliases s's
// internal buffer and must not be retained across further writes to s.
func (s *Serializer) Bytes() []byte {
	return s.buf
}

// Len returns the number of bytes written to s so far.
func (s *Serializer) Len() int {
	return len(s.buf)
}

// AppendPrimitive writes a primitive TLV with the given identifier, where
// content is the already-encoded content octets.
func (s *Serializer) AppendPrimitive(tag asn1.Tag, content []byte) {
	s.buf = tlv.EncodeIdentifier(s.buf, tag, false)
	s.buf = tlv.EncodeLength(s.buf, len(content))
	s.buf = append(s.buf, content...)
}

// AppendConstructed runs build on a fresh nested Serializer and writes the
// accumulated bytes as the content of a constructed TLV with the given
// identifier.
func (s *Serializer) AppendConstructed(tag asn1.Tag, build func(*Serializer)) {
	nested := NewSerializer()
	build(nested)
	s.buf = tlv.EncodeIdentifier(s.buf, tag, true)
	s.buf = tlv.EncodeLength(s.buf, nested.Len())
	s.buf = append(s.buf, nested.Bytes()...)
}

// WriteSequence writes a Universal SEQUENCE around the nodes build appends
// to the nested Serializer it receives.
func (s *Serializer) WriteSequence(build func(*Serializer)) {
	s.AppendConstructed(asn1.Tag{Class: asn1.ClassUniversal, Number: asn1.TagSequence}, build)
}

// WriteSet writes a Universal SET around the nodes build appends to the
// nested Serializer it receives.
func (s *Serializer) WriteSet(build func(*Serializer)) {
	s.AppendConstructed(asn1.Tag{Class: asn1.ClassUniversal, Number: asn1.TagSet}, build)
}

// WriteNode re-emits n's encoding verbatim. Since n was parsed from a
// well-formed TLV stream, its Bytes are already a valid encoding; WriteNode
// copies them rather than re-deriving identifier/length/content.
func (s *Serializer) WriteNode(n Node) {
	s.buf = append(s.buf, n.Bytes()...)
}
