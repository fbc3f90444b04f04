package ber

import "strix.dev/der/asn1"

// DefaultNullTag is the identifier [DecodeNull] and [Serializer.AppendNull]
// use.
var DefaultNullTag = universal(asn1.TagNull)

// DecodeNull decodes n as a NULL under [DefaultNullTag].
func DecodeNull(n Node) (asn1.Null, error) {
	return DecodeNullTag(n, DefaultNullTag)
}

// DecodeNullTag decodes n as a NULL tagged tag.
func DecodeNullTag(n Node, tag asn1.Tag) (asn1.Null, error) {
	if err := checkTag(n, tag); err != nil {
		return asn1.Null{}, err
	}
	if err := checkPrimitive(n); err != nil {
		return asn1.Null{}, err
	}
	if len(n.Data()) != 0 {
		return asn1.Null{}, asn1.NewError(asn1.ErrorKindInvalidObject, "NULL content must be empty")
	}
	return asn1.Null{}, nil
}

// AppendNull appends an empty NULL under [DefaultNullTag].
func (s *Serializer) AppendNull() {
	s.AppendNullTag(DefaultNullTag)
}

// AppendNullTag appends an empty NULL tagged tag.
func (s *Serializer) AppendNullTag(tag asn1.Tag) {
	s.AppendPrimitive(tag, nil)
}
