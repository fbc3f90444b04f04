package ber

import (
	"math/big"

	"strix.dev/der/asn1"
)

// DefaultEnumeratedTag is the identifier [DecodeEnumerated] and
// [Serializer.AppendEnumerated] use.
var DefaultEnumeratedTag = universal(asn1.TagEnumerated)

// DecodeEnumerated decodes n as an ENUMERATED under [DefaultEnumeratedTag].
// ENUMERATED shares INTEGER's content encoding but is limited to the range
// of a Go int.
func DecodeEnumerated(n Node) (asn1.Enumerated, error) {
	return DecodeEnumeratedTag(n, DefaultEnumeratedTag)
}

// DecodeEnumeratedTag decodes n as an ENUMERATED tagged tag.
func DecodeEnumeratedTag(n Node, tag asn1.Tag) (asn1.Enumerated, error) {
	v, err := DecodeIntegerTag(n, tag)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, asn1.NewError(asn1.ErrorKindValueOutOfRange, "ENUMERATED does not fit in int")
	}
	return asn1.Enumerated(v.Int64()), nil
}

// AppendEnumerated appends v as an ENUMERATED under [DefaultEnumeratedTag].
func (s *Serializer) AppendEnumerated(v asn1.Enumerated) {
	s.AppendEnumeratedTag(v, DefaultEnumeratedTag)
}

// AppendEnumeratedTag appends v as an ENUMERATED tagged tag.
func (s *Serializer) AppendEnumeratedTag(v asn1.Enumerated, tag asn1.Tag) {
	s.AppendIntegerTag(big.NewInt(int64(v)), tag)
}
